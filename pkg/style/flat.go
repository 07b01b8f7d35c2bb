package style

import (
	"fmt"

	"digital.vasic.spec/pkg/suite"
)

// FlatSpec registers tests as "<subject> should <verb>" clauses
// against the most recently declared subject.
type FlatSpec struct {
	*suite.Suite
	subject string
}

// NewFlatSpec creates an empty flat spec.
func NewFlatSpec(name string, opts ...suite.Option) *FlatSpec {
	return &FlatSpec{Suite: suite.New(name, opts...)}
}

// BehaviorOf declares the subject for subsequent Should clauses.
func (s *FlatSpec) BehaviorOf(subject string) {
	s.subject = subject
}

// Should registers a test named "<subject> should <verb>".
func (s *FlatSpec) Should(
	verb string, body func(), tags ...string,
) {
	s.Suite.Test(s.clauseName(verb), body, tags...)
}

// IgnoreShould registers an ignored clause in the same
// namespace as Should.
func (s *FlatSpec) IgnoreShould(
	verb string, body func(), tags ...string,
) {
	s.Suite.Ignore(s.clauseName(verb), body, tags...)
}

func (s *FlatSpec) clauseName(verb string) string {
	return fmt.Sprintf("%s should %s", s.subject, verb)
}
