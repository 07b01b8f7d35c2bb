// Package style provides alternative registration surfaces over
// the suite core: feature/scenario specs and flat
// subject/verb specs. Each style is a naming layer only; every
// registration, duplicate-check, tagging, and execution
// invariant comes from pkg/suite.
package style

import (
	"fmt"

	"digital.vasic.spec/pkg/suite"
)

// FeatureSuite registers tests as scenarios grouped under named
// features. Scenario names take the form
// "Feature: <feature> Scenario: <scenario>".
type FeatureSuite struct {
	*suite.Suite
	feature string
}

// NewFeatureSuite creates an empty feature suite.
func NewFeatureSuite(name string, opts ...suite.Option) *FeatureSuite {
	return &FeatureSuite{Suite: suite.New(name, opts...)}
}

// Feature runs the register callback with the feature
// description applied to every scenario registered inside it.
func (f *FeatureSuite) Feature(desc string, register func()) {
	previous := f.feature
	f.feature = desc
	defer func() { f.feature = previous }()
	register()
}

// Scenario registers a test under the current feature.
func (f *FeatureSuite) Scenario(
	name string, body func(), tags ...string,
) {
	f.Suite.Test(f.scenarioName(name), body, tags...)
}

// IgnoreScenario registers an ignored scenario under the current
// feature. It shares the scenario namespace, so an ignored and a
// normal scenario with the same name still collide.
func (f *FeatureSuite) IgnoreScenario(
	name string, body func(), tags ...string,
) {
	f.Suite.Ignore(f.scenarioName(name), body, tags...)
}

func (f *FeatureSuite) scenarioName(name string) string {
	return fmt.Sprintf(
		"Feature: %s Scenario: %s", f.feature, name,
	)
}
