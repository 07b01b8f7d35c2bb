package matcher

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"digital.vasic.spec/pkg/predicate"
)

// Equal matches when the subject is structurally equal to the
// expected value (deep equality).
func Equal[T any](expected T) Matcher[T] {
	return func(subject T) Result {
		return Result{
			Matched: reflect.DeepEqual(subject, expected),
			FailureMessage: fmt.Sprintf(
				"%s did not equal %s",
				Render(subject), Render(expected),
			),
			NegatedFailureMessage: fmt.Sprintf(
				"%s equaled %s",
				Render(subject), Render(expected),
			),
		}
	}
}

// Be matches when the subject compares equal to the expected
// value under ==.
func Be[T comparable](expected T) Matcher[T] {
	return func(subject T) Result {
		return Result{
			Matched: subject == expected,
			FailureMessage: fmt.Sprintf(
				"%s was not %s",
				Render(subject), Render(expected),
			),
			NegatedFailureMessage: fmt.Sprintf(
				"%s was %s",
				Render(subject), Render(expected),
			),
		}
	}
}

// BeTheSameInstanceAs matches when the subject is the identical
// reference as the expected value. The type argument is expected
// to be a pointer (or other reference) type, for which == is
// identity.
func BeTheSameInstanceAs[T comparable](expected T) Matcher[T] {
	return func(subject T) Result {
		return Result{
			Matched: subject == expected,
			FailureMessage: fmt.Sprintf(
				"%s was not the same instance as %s",
				Render(subject), Render(expected),
			),
			NegatedFailureMessage: fmt.Sprintf(
				"%s was the same instance as %s",
				Render(subject), Render(expected),
			),
		}
	}
}

// HaveLength matches when the subject's length equals the
// expected length. Strings, slices, arrays, maps, and channels
// are measured with len; any other subject must expose a public
// Length field or zero-argument method, located through the
// predicate resolver. A resolution error escapes as a
// configuration panic rather than an assertion failure.
func HaveLength(expected int) Matcher[any] {
	return measureWith("length", "Length", expected)
}

// HaveSize is HaveLength with "size" wording, resolving a Size
// member on subjects that are not built-in collections.
func HaveSize(expected int) Matcher[any] {
	return measureWith("size", "Size", expected)
}

func measureWith(word, member string, expected int) Matcher[any] {
	return func(subject any) Result {
		actual, err := measure(subject, member)
		if err != nil {
			panic(err)
		}

		return Result{
			Matched: actual == expected,
			FailureMessage: fmt.Sprintf(
				"%s did not have %s %d",
				Render(subject), word, expected,
			),
			NegatedFailureMessage: fmt.Sprintf(
				"%s had %s %d",
				Render(subject), word, expected,
			),
		}
	}
}

// measure returns the length of a built-in collection, or the
// integer value of the named member on any other subject.
func measure(subject any, member string) (int, error) {
	if subject != nil {
		rv := reflect.ValueOf(subject)
		switch rv.Kind() {
		case reflect.String, reflect.Slice, reflect.Array,
			reflect.Map, reflect.Chan:
			return rv.Len(), nil
		}
	}

	v, err := predicate.ResolveMember(subject, member)
	if err != nil {
		return 0, err
	}

	n, ok := v.(int)
	if !ok {
		return 0, fmt.Errorf(
			"%w: member %s of %T is not an int",
			predicate.ErrConfiguration, member, subject,
		)
	}
	return n, nil
}

// HaveKey matches when the subject map contains the expected
// key. Non-map subjects must expose a public Key member, whose
// value is compared against the expected key.
func HaveKey(key any) Matcher[any] {
	return func(subject any) Result {
		return Result{
			Matched: containsKey(subject, key),
			FailureMessage: fmt.Sprintf(
				"%s did not contain key %s",
				Render(subject), Render(key),
			),
			NegatedFailureMessage: fmt.Sprintf(
				"%s contained key %s",
				Render(subject), Render(key),
			),
		}
	}
}

// HaveValue matches when the subject map contains the expected
// value under any key. Non-map subjects must expose a public
// Value member, compared against the expected value.
func HaveValue(value any) Matcher[any] {
	return func(subject any) Result {
		return Result{
			Matched: containsValue(subject, value),
			FailureMessage: fmt.Sprintf(
				"%s did not contain value %s",
				Render(subject), Render(value),
			),
			NegatedFailureMessage: fmt.Sprintf(
				"%s contained value %s",
				Render(subject), Render(value),
			),
		}
	}
}

func containsKey(subject, key any) bool {
	rv := reflect.ValueOf(subject)
	if rv.Kind() == reflect.Map {
		return rv.MapIndex(reflect.ValueOf(key)).IsValid()
	}

	member, err := predicate.ResolveMember(subject, "Key")
	if err != nil {
		panic(err)
	}
	return reflect.DeepEqual(member, key)
}

func containsValue(subject, value any) bool {
	rv := reflect.ValueOf(subject)
	if rv.Kind() == reflect.Map {
		iter := rv.MapRange()
		for iter.Next() {
			if reflect.DeepEqual(
				iter.Value().Interface(), value,
			) {
				return true
			}
		}
		return false
	}

	member, err := predicate.ResolveMember(subject, "Value")
	if err != nil {
		panic(err)
	}
	return reflect.DeepEqual(member, value)
}

// Contain matches when the subject sequence (slice or array)
// contains an element deep-equal to the expected element.
func Contain(element any) Matcher[any] {
	return func(subject any) Result {
		return Result{
			Matched: containsElement(subject, element),
			FailureMessage: fmt.Sprintf(
				"%s did not contain element %s",
				Render(subject), Render(element),
			),
			NegatedFailureMessage: fmt.Sprintf(
				"%s contained element %s",
				Render(subject), Render(element),
			),
		}
	}
}

func containsElement(subject, element any) bool {
	rv := reflect.ValueOf(subject)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if reflect.DeepEqual(
				rv.Index(i).Interface(), element,
			) {
				return true
			}
		}
		return false
	}

	panic(fmt.Errorf(
		"%w: contain element used with non-sequence value of type %T",
		predicate.ErrConfiguration, subject,
	))
}

// StartWith matches when the subject string starts with the
// expected prefix.
func StartWith(prefix string) Matcher[string] {
	return func(subject string) Result {
		return Result{
			Matched: strings.HasPrefix(subject, prefix),
			FailureMessage: fmt.Sprintf(
				"%s did not start with substring %s",
				Render(subject), Render(prefix),
			),
			NegatedFailureMessage: fmt.Sprintf(
				"%s started with substring %s",
				Render(subject), Render(prefix),
			),
		}
	}
}

// EndWith matches when the subject string ends with the expected
// suffix.
func EndWith(suffix string) Matcher[string] {
	return func(subject string) Result {
		return Result{
			Matched: strings.HasSuffix(subject, suffix),
			FailureMessage: fmt.Sprintf(
				"%s did not end with substring %s",
				Render(subject), Render(suffix),
			),
			NegatedFailureMessage: fmt.Sprintf(
				"%s ended with substring %s",
				Render(subject), Render(suffix),
			),
		}
	}
}

// Include matches when the subject string contains the expected
// substring anywhere.
func Include(substring string) Matcher[string] {
	return func(subject string) Result {
		return Result{
			Matched: strings.Contains(subject, substring),
			FailureMessage: fmt.Sprintf(
				"%s did not include substring %s",
				Render(subject), Render(substring),
			),
			NegatedFailureMessage: fmt.Sprintf(
				"%s included substring %s",
				Render(subject), Render(substring),
			),
		}
	}
}

// FullyMatch matches when the whole subject string matches the
// regular expression.
func FullyMatch(re *regexp.Regexp) Matcher[string] {
	return func(subject string) Result {
		loc := re.FindStringIndex(subject)
		whole := loc != nil &&
			loc[0] == 0 && loc[1] == len(subject)

		return Result{
			Matched: whole,
			FailureMessage: fmt.Sprintf(
				"%s did not fully match the regular expression %s",
				Render(subject), re.String(),
			),
			NegatedFailureMessage: fmt.Sprintf(
				"%s fully matched the regular expression %s",
				Render(subject), re.String(),
			),
		}
	}
}

// BeEmpty matches when the subject is an empty string or
// collection. Any other subject must expose an Empty/IsEmpty
// predicate member, located through the predicate resolver.
func BeEmpty() Matcher[any] {
	return func(subject any) Result {
		var empty bool
		rv := reflect.ValueOf(subject)
		switch rv.Kind() {
		case reflect.String, reflect.Slice, reflect.Array,
			reflect.Map, reflect.Chan:
			empty = rv.Len() == 0
		default:
			b, err := predicate.ResolveBool(subject, "empty")
			if err != nil {
				panic(err)
			}
			empty = b
		}

		return Result{
			Matched: empty,
			FailureMessage: fmt.Sprintf(
				"%s was not empty", Render(subject),
			),
			NegatedFailureMessage: fmt.Sprintf(
				"%s was empty", Render(subject),
			),
		}
	}
}

// BeNil matches when the subject is nil, including typed nil
// pointers, slices, maps, channels, and functions.
func BeNil() Matcher[any] {
	return func(subject any) Result {
		return Result{
			Matched: isNil(subject),
			FailureMessage: fmt.Sprintf(
				"%s was not nil", Render(subject),
			),
			NegatedFailureMessage: fmt.Sprintf(
				"%s was nil", Render(subject),
			),
		}
	}
}

// BeDefined matches when the subject is non-nil. Subjects that
// are neither nil nor nil-able kinds must expose a
// Defined/IsDefined predicate member.
func BeDefined() Matcher[any] {
	return func(subject any) Result {
		var defined bool
		switch {
		case subject == nil:
			defined = false
		case isNilable(subject):
			defined = !isNil(subject)
		default:
			if reflect.ValueOf(subject).Kind() == reflect.Struct {
				b, err := predicate.ResolveBool(
					subject, "defined",
				)
				if err != nil {
					panic(err)
				}
				defined = b
			} else {
				defined = true
			}
		}

		return Result{
			Matched: defined,
			FailureMessage: fmt.Sprintf(
				"%s was not defined", Render(subject),
			),
			NegatedFailureMessage: fmt.Sprintf(
				"%s was defined", Render(subject),
			),
		}
	}
}

// BeSymbol matches when the named boolean predicate holds on the
// subject. The name is resolved reflectively to an exported
// member in either the plain or the "is"-prefixed form; a
// resolution error escapes as a configuration panic.
func BeSymbol(name string) Matcher[any] {
	return func(subject any) Result {
		b, err := predicate.ResolveBool(subject, name)
		if err != nil {
			panic(err)
		}

		return Result{
			Matched: b,
			FailureMessage: fmt.Sprintf(
				"%s was not %s", Render(subject), name,
			),
			NegatedFailureMessage: fmt.Sprintf(
				"%s was %s", Render(subject), name,
			),
		}
	}
}

func isNil(subject any) bool {
	if subject == nil {
		return true
	}
	rv := reflect.ValueOf(subject)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice,
		reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}

func isNilable(subject any) bool {
	switch reflect.ValueOf(subject).Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice,
		reflect.Map, reflect.Chan, reflect.Func:
		return true
	}
	return false
}
