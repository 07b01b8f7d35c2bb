package matcher

import (
	"cmp"
	"fmt"
)

// Relation words used in comparison matcher messages.
const (
	relLess           = "less than"
	relLessOrEqual    = "less than or equal to"
	relGreater        = "greater than"
	relGreaterOrEqual = "greater than or equal to"
)

// BeLessThan matches when the subject is strictly less than the
// right operand under the type's natural ordering.
func BeLessThan[T cmp.Ordered](right T) Matcher[T] {
	return comparison(right, relLess,
		func(s, r T) bool { return s < r })
}

// BeLessThanOrEqualTo matches when the subject is less than or
// equal to the right operand.
func BeLessThanOrEqualTo[T cmp.Ordered](right T) Matcher[T] {
	return comparison(right, relLessOrEqual,
		func(s, r T) bool { return s <= r })
}

// BeGreaterThan matches when the subject is strictly greater
// than the right operand.
func BeGreaterThan[T cmp.Ordered](right T) Matcher[T] {
	return comparison(right, relGreater,
		func(s, r T) bool { return s > r })
}

// BeGreaterThanOrEqualTo matches when the subject is greater
// than or equal to the right operand.
func BeGreaterThanOrEqualTo[T cmp.Ordered](right T) Matcher[T] {
	return comparison(right, relGreaterOrEqual,
		func(s, r T) bool { return s >= r })
}

func comparison[T cmp.Ordered](
	right T,
	relation string,
	holds func(subject, right T) bool,
) Matcher[T] {
	return func(subject T) Result {
		return Result{
			Matched: holds(subject, right),
			FailureMessage: fmt.Sprintf(
				"%s was not %s %s",
				Render(subject), relation, Render(right),
			),
			NegatedFailureMessage: fmt.Sprintf(
				"%s was %s %s",
				Render(subject), relation, Render(right),
			),
		}
	}
}

// Float constrains tolerance matchers to the floating-point
// precisions they support.
type Float interface {
	~float32 | ~float64
}

// PlusOrMinus matches when the subject is within tolerance of
// the target: abs(subject - target) <= tolerance.
func PlusOrMinus[F Float](target, tolerance F) Matcher[F] {
	return func(subject F) Result {
		diff := subject - target
		if diff < 0 {
			diff = -diff
		}

		return Result{
			Matched: diff <= tolerance,
			FailureMessage: fmt.Sprintf(
				"%s was not %s plus or minus %s",
				Render(subject), Render(target),
				Render(tolerance),
			),
			NegatedFailureMessage: fmt.Sprintf(
				"%s was %s plus or minus %s",
				Render(subject), Render(target),
				Render(tolerance),
			),
		}
	}
}

// BeExactly matches when the subject equals the target with no
// tolerance at all.
func BeExactly[F Float](target F) Matcher[F] {
	return func(subject F) Result {
		return Result{
			Matched: subject == target,
			FailureMessage: fmt.Sprintf(
				"%s was not exactly %s",
				Render(subject), Render(target),
			),
			NegatedFailureMessage: fmt.Sprintf(
				"%s was exactly %s",
				Render(subject), Render(target),
			),
		}
	}
}
