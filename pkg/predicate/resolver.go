// Package predicate resolves symbolic predicate names (such as
// "empty" or "file") to exported boolean-valued methods or
// fields on arbitrary values, using reflection. A predicate name
// resolves through two accepted member forms — the capitalized
// name itself and its "Is"-prefixed variant — with fields and
// methods at equal precedence. Resolution fails loudly with a
// typed configuration error when neither form exists or when
// both do.
package predicate

import (
	"errors"
	"fmt"
	"reflect"
	"unicode"
)

// ErrConfiguration is the sentinel for every resolver-level
// error. Configuration errors indicate a test-authoring mistake
// (the subject does not support the requested member) and are a
// distinct class from ordinary assertion failures.
var ErrConfiguration = errors.New("predicate configuration error")

// NoSuchMemberError reports that a subject exposes neither
// accepted form of a predicate member.
type NoSuchMemberError struct {
	// TypeName is the subject's type name.
	TypeName string

	// Name is the predicate name as requested, e.g. "empty".
	Name string

	// IsForm is the "is"-prefixed form, e.g. "isEmpty".
	IsForm string
}

// Error renders the fixed message, e.g.
// `NonEmptyMock has neither a(n) empty or an isEmpty method.`
// with the article chosen by the lexical a/an rule.
func (e *NoSuchMemberError) Error() string {
	return fmt.Sprintf(
		"%s has neither %s %s or an %s method.",
		e.TypeName, article(e.Name), e.Name, e.IsForm,
	)
}

// Unwrap marks the error as a configuration error for errors.Is.
func (e *NoSuchMemberError) Unwrap() error {
	return ErrConfiguration
}

// AmbiguousMemberError reports that a subject exposes both
// accepted forms of a predicate member at once.
type AmbiguousMemberError struct {
	TypeName string
	Name     string
	IsForm   string
}

func (e *AmbiguousMemberError) Error() string {
	return fmt.Sprintf(
		"%s has both %s %s and an %s method.",
		e.TypeName, article(e.Name), e.Name, e.IsForm,
	)
}

// Unwrap marks the error as a configuration error for errors.Is.
func (e *AmbiguousMemberError) Unwrap() error {
	return ErrConfiguration
}

// NoSuchNamedMemberError reports that a subject exposes no
// public field or method for a named (non-predicate) member such
// as "length" or "size".
type NoSuchNamedMemberError struct {
	TypeName string
	Name     string
}

func (e *NoSuchNamedMemberError) Error() string {
	return fmt.Sprintf(
		"%s has neither a public field or method named '%s'.",
		e.TypeName, e.Name,
	)
}

// Unwrap marks the error as a configuration error for errors.Is.
func (e *NoSuchNamedMemberError) Unwrap() error {
	return ErrConfiguration
}

// AmbiguousNamedMemberError reports that a subject exposes both
// a public field and a method for a named member.
type AmbiguousNamedMemberError struct {
	TypeName string
	Name     string
}

func (e *AmbiguousNamedMemberError) Error() string {
	return fmt.Sprintf(
		"%s has both a public field and a method named '%s'.",
		e.TypeName, e.Name,
	)
}

// Unwrap marks the error as a configuration error for errors.Is.
func (e *AmbiguousNamedMemberError) Unwrap() error {
	return ErrConfiguration
}

// candidate is a resolved member ready to be read or invoked.
type candidate struct {
	field  reflect.Value // valid when the member is a field
	method reflect.Value // valid when the member is a method
}

func (c candidate) call() reflect.Value {
	if c.field.IsValid() {
		return c.field
	}
	return c.method.Call(nil)[0]
}

// ResolveBool resolves a symbolic predicate name against a
// subject and returns the member's boolean value. The accepted
// member names for a predicate "empty" are Empty and IsEmpty
// (Go's export rule maps the lower-case source forms onto
// exported identifiers); zero-argument boolean methods and
// boolean fields both qualify, at equal precedence. Exactly one
// candidate must exist across both forms.
func ResolveBool(subject any, name string) (bool, error) {
	capitalized := capitalize(name)
	isForm := "is" + capitalized

	if subject == nil {
		return false, &NoSuchMemberError{
			TypeName: "nil",
			Name:     name,
			IsForm:   isForm,
		}
	}

	var found []candidate
	for _, member := range []string{capitalized, "Is" + capitalized} {
		found = append(found,
			boolCandidates(subject, member)...)
	}

	switch len(found) {
	case 0:
		return false, &NoSuchMemberError{
			TypeName: typeName(subject),
			Name:     name,
			IsForm:   isForm,
		}
	case 1:
		return found[0].call().Bool(), nil
	default:
		return false, &AmbiguousMemberError{
			TypeName: typeName(subject),
			Name:     name,
			IsForm:   isForm,
		}
	}
}

// ResolveMember resolves a named member such as "Length" or
// "Size" against a subject and returns its value. Public fields
// and zero-argument methods of any result type qualify, at equal
// precedence. The rendered error messages quote the member name
// in its lower-case form.
func ResolveMember(subject any, name string) (any, error) {
	lower := decapitalize(name)

	if subject == nil {
		return nil, &NoSuchNamedMemberError{
			TypeName: "nil",
			Name:     lower,
		}
	}

	var found []candidate
	for _, member := range []string{
		capitalize(name), "Get" + capitalize(name),
	} {
		found = append(found,
			anyCandidates(subject, member)...)
	}

	switch len(found) {
	case 0:
		return nil, &NoSuchNamedMemberError{
			TypeName: typeName(subject),
			Name:     lower,
		}
	case 1:
		return found[0].call().Interface(), nil
	default:
		return nil, &AmbiguousNamedMemberError{
			TypeName: typeName(subject),
			Name:     lower,
		}
	}
}

// boolCandidates collects the boolean field and zero-argument
// boolean method candidates with the given exported name.
func boolCandidates(subject any, member string) []candidate {
	var out []candidate

	rv := reflect.ValueOf(subject)
	if m := rv.MethodByName(member); m.IsValid() {
		mt := m.Type()
		if mt.NumIn() == 0 && mt.NumOut() == 1 &&
			mt.Out(0).Kind() == reflect.Bool {
			out = append(out, candidate{method: m})
		}
	}

	if f := structField(rv, member); f.IsValid() &&
		f.Kind() == reflect.Bool {
		out = append(out, candidate{field: f})
	}

	return out
}

// anyCandidates collects field and zero-argument method
// candidates of any result type with the given exported name.
func anyCandidates(subject any, member string) []candidate {
	var out []candidate

	rv := reflect.ValueOf(subject)
	if m := rv.MethodByName(member); m.IsValid() {
		mt := m.Type()
		if mt.NumIn() == 0 && mt.NumOut() == 1 {
			out = append(out, candidate{method: m})
		}
	}

	if f := structField(rv, member); f.IsValid() {
		out = append(out, candidate{field: f})
	}

	return out
}

// structField returns the named exported field of a struct
// subject, following pointers.
func structField(rv reflect.Value, member string) reflect.Value {
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}
	}

	sf, ok := rv.Type().FieldByName(member)
	if !ok || !sf.IsExported() {
		return reflect.Value{}
	}
	return rv.FieldByName(member)
}

// typeName returns the bare type name of a subject, following
// pointers, falling back to the full type string for unnamed
// types.
func typeName(subject any) string {
	t := reflect.TypeOf(subject)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}

func capitalize(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func decapitalize(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// article chooses between "a" and "an" for a predicate word.
// The selection is a fixed lexical rule, not phonetics: words
// starting with a, e, i, or o take "an" ("an empty", "an
// apple"), everything else takes "a" ("a file", and "a" for
// u-words such as "a user").
func article(word string) string {
	if word == "" {
		return "a"
	}
	switch unicode.ToLower(rune(word[0])) {
	case 'a', 'e', 'i', 'o':
		return "an"
	}
	return "a"
}
