// Package matcher provides composable, message-carrying matchers
// for the spec framework. A Matcher is a pure function from a
// subject value to a Result; the And, Or, and Not combinators
// compose matchers with short-circuit evaluation and fixed
// English-conjunction message composition. The package also ships
// a catalog of built-in matcher factories (Equal, HaveLength,
// Contain, comparison and tolerance matchers, and symbolic
// predicates resolved reflectively).
package matcher

import "fmt"

// Result captures the outcome of applying a matcher to a subject.
// Both messages are rendered eagerly when the matcher is applied,
// because composed matchers must reference the wording of both
// operands.
type Result struct {
	// Matched indicates whether the subject satisfied the
	// matcher.
	Matched bool

	// FailureMessage explains the outcome when the matcher was
	// expected to match but did not.
	FailureMessage string

	// NegatedFailureMessage explains the outcome when the
	// matcher was expected not to match but did. It doubles as
	// the positive phrasing of the check when composing with
	// And.
	NegatedFailureMessage string
}

// Matcher is a pure function from a subject value to a Result.
// Matchers are immutable values: they are created by factory
// functions or by combinator application, are never mutated, and
// may be shared and re-applied freely.
type Matcher[T any] func(subject T) Result

// Producer defers construction of a matcher so that And and Or
// can short-circuit without building the right-hand operand. The
// producer is invoked only when the left operand has not already
// decided the outcome; factories with side effects are therefore
// skipped entirely on the short-circuit path.
type Producer[T any] func() Matcher[T]

// Of wraps an already constructed matcher as a Producer, for use
// with And and Or when deferred construction is not needed.
func Of[T any](m Matcher[T]) Producer[T] {
	return func() Matcher[T] { return m }
}

// And composes two matchers conjunctively. If the left matcher
// fails, its result is returned unchanged and the right producer
// is never invoked. If the left matcher passes, the right matcher
// is constructed and applied to the same subject; a right-side
// failure reads "<left positive phrase>, but <right failure>",
// and a pass combines both positive phrasings with ", and" for
// use under a later negation.
func And[T any](left Matcher[T], right Producer[T]) Matcher[T] {
	return func(subject T) Result {
		lr := left(subject)
		if !lr.Matched {
			return lr
		}

		rr := right()(subject)
		return Result{
			Matched: rr.Matched,
			FailureMessage: fmt.Sprintf(
				"%s, but %s",
				lr.NegatedFailureMessage,
				rr.FailureMessage,
			),
			NegatedFailureMessage: fmt.Sprintf(
				"%s, and %s",
				lr.NegatedFailureMessage,
				rr.NegatedFailureMessage,
			),
		}
	}
}

// Or composes two matchers disjunctively. If the left matcher
// passes, its result is returned unchanged and the right producer
// is never invoked. If the left matcher fails, the right matcher
// is constructed and applied; an overall failure reads
// "<left failure>, and <right failure>".
func Or[T any](left Matcher[T], right Producer[T]) Matcher[T] {
	return func(subject T) Result {
		lr := left(subject)
		if lr.Matched {
			return lr
		}

		rr := right()(subject)
		return Result{
			Matched: rr.Matched,
			FailureMessage: fmt.Sprintf(
				"%s, and %s",
				lr.FailureMessage,
				rr.FailureMessage,
			),
			NegatedFailureMessage: fmt.Sprintf(
				"%s, and %s",
				lr.FailureMessage,
				rr.NegatedFailureMessage,
			),
		}
	}
}

// Not inverts a matcher. The pass/fail flag flips and the two
// messages swap roles: the negated-failure message of the wrapped
// matcher becomes the effective failure message and vice versa.
func Not[T any](m Matcher[T]) Matcher[T] {
	return func(subject T) Result {
		r := m(subject)
		return Result{
			Matched:               !r.Matched,
			FailureMessage:        r.NegatedFailureMessage,
			NegatedFailureMessage: r.FailureMessage,
		}
	}
}

// AndNot is And with a negated right operand. It is derived
// mechanically from And and Not; negation interacts with message
// composition in a way that is easy to get wrong when
// special-cased by hand.
func AndNot[T any](left Matcher[T], right Producer[T]) Matcher[T] {
	return And(left, func() Matcher[T] { return Not(right()) })
}

// OrNot is Or with a negated right operand, derived the same way
// as AndNot.
func OrNot[T any](left Matcher[T], right Producer[T]) Matcher[T] {
	return Or(left, func() Matcher[T] { return Not(right()) })
}

// And is the method form of the And combinator.
func (m Matcher[T]) And(right Producer[T]) Matcher[T] {
	return And(m, right)
}

// Or is the method form of the Or combinator.
func (m Matcher[T]) Or(right Producer[T]) Matcher[T] {
	return Or(m, right)
}

// AndNot is the method form of the AndNot combinator.
func (m Matcher[T]) AndNot(right Producer[T]) Matcher[T] {
	return AndNot(m, right)
}

// OrNot is the method form of the OrNot combinator.
func (m Matcher[T]) OrNot(right Producer[T]) Matcher[T] {
	return OrNot(m, right)
}
