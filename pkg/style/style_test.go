package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.spec/pkg/event"
	"digital.vasic.spec/pkg/suite"
)

func TestFeatureSuiteNaming(t *testing.T) {
	f := NewFeatureSuite("checkout")
	f.Feature("applying a voucher", func() {
		f.Scenario("reduces the total", func() {})
		f.Scenario("rejects expired codes", func() {})
	})
	f.Feature("empty basket", func() {
		f.Scenario("shows a hint", func() {})
	})

	assert.Equal(t, []string{
		"Feature: applying a voucher Scenario: reduces the total",
		"Feature: applying a voucher Scenario: rejects expired codes",
		"Feature: empty basket Scenario: shows a hint",
	}, f.Names())
}

func TestFeatureSuiteDuplicateScenarioRejected(t *testing.T) {
	f := NewFeatureSuite("checkout")
	f.Feature("a feature", func() {
		f.Scenario("same name", func() {})

		assert.Panics(t, func() {
			f.IgnoreScenario("same name", func() {})
		})
	})
}

func TestFeatureSuiteIgnoredScenario(t *testing.T) {
	f := NewFeatureSuite("checkout")
	f.Feature("a feature", func() {
		f.Scenario("runs", func() {})
		f.IgnoreScenario("rests", func() {
			t.Fatal("ignored scenario must not execute")
		})
	})

	c := event.NewCollector()
	f.Run(c, suite.Filter{})

	assert.Equal(t, 1, c.Count(event.TestSucceeded))
	assert.Equal(t, 1, c.Count(event.TestIgnored))
}

func TestFlatSpecNaming(t *testing.T) {
	s := NewFlatSpec("stack")
	s.BehaviorOf("a stack")
	s.Should("pop values in last-in-first-out order", func() {})
	s.Should("report empty after the last pop", func() {})
	s.BehaviorOf("an empty stack")
	s.Should("reject pop", func() {})

	assert.Equal(t, []string{
		"a stack should pop values in last-in-first-out order",
		"a stack should report empty after the last pop",
		"an empty stack should reject pop",
	}, s.Names())
}

func TestFlatSpecIgnoreSharesNamespace(t *testing.T) {
	s := NewFlatSpec("stack")
	s.BehaviorOf("a stack")
	s.Should("do the thing", func() {})

	assert.Panics(t, func() {
		s.IgnoreShould("do the thing", func() {})
	})
}

func TestStylesRunThroughSuiteCore(t *testing.T) {
	slow := "com.example.SlowAsMolasses"

	f := NewFeatureSuite("filtered")
	f.Feature("speed", func() {
		f.Scenario("slow path", func() {}, slow)
		f.Scenario("fast path", func() {})
	})

	filter := suite.Filter{Include: []string{slow}}
	require.Equal(t, 1, f.ExpectedTestCount(filter))

	c := event.NewCollector()
	f.Run(c, filter)

	started := c.EventsOf(event.TestStarting)
	require.Len(t, started, 1)
	assert.Equal(
		t,
		"Feature: speed Scenario: slow path",
		started[0].TestName,
	)
}
