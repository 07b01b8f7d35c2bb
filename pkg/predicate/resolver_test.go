package predicate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// onlyIsForm exposes only the "is"-prefixed member form.
type onlyIsForm struct{}

func (onlyIsForm) IsEmpty() bool { return true }

// onlyPlainForm exposes only the plain member form, as a method.
type onlyPlainForm struct{}

func (onlyPlainForm) Empty() bool { return false }

// onlyField exposes the plain form as a boolean field.
type onlyField struct {
	Empty bool
}

// bothForms exposes a field for the plain form and a method for
// the is-form at once.
type bothForms struct {
	Empty bool
}

func (bothForms) IsEmpty() bool { return true }

// neitherForm exposes nothing relevant.
type neitherForm struct{}

func TestResolveBoolSingleCandidate(t *testing.T) {
	tests := []struct {
		name    string
		subject any
		want    bool
	}{
		{"is-form method", onlyIsForm{}, true},
		{"plain-form method", onlyPlainForm{}, false},
		{"field true", onlyField{Empty: true}, true},
		{"field false", onlyField{Empty: false}, false},
		{"pointer subject", &onlyIsForm{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveBool(tt.subject, "empty")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveBoolAmbiguous(t *testing.T) {
	_, err := ResolveBool(bothForms{}, "empty")
	require.Error(t, err)

	var ambiguous *AmbiguousMemberError
	require.ErrorAs(t, err, &ambiguous)
	assert.True(t, errors.Is(err, ErrConfiguration))
	assert.Equal(
		t,
		"bothForms has both an empty and an isEmpty method.",
		err.Error(),
	)
}

func TestResolveBoolNoSuchMember(t *testing.T) {
	_, err := ResolveBool(neitherForm{}, "empty")
	require.Error(t, err)

	var missing *NoSuchMemberError
	require.ErrorAs(t, err, &missing)
	assert.True(t, errors.Is(err, ErrConfiguration))
	assert.Equal(
		t,
		"neitherForm has neither an empty or an isEmpty method.",
		err.Error(),
	)
}

func TestResolveBoolArticleSelection(t *testing.T) {
	type fileMock struct{}

	_, err := ResolveBool(fileMock{}, "file")
	require.Error(t, err)
	assert.Equal(
		t,
		"fileMock has neither a file or an isFile method.",
		err.Error(),
	)

	_, err = ResolveBool(fileMock{}, "apple")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neither an apple or an isApple")

	_, err = ResolveBool(fileMock{}, "usable")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neither a usable or an isUsable")
}

func TestResolveBoolNilSubject(t *testing.T) {
	_, err := ResolveBool(nil, "empty")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))
}

type withLengthMethod struct{}

func (withLengthMethod) Length() int { return 5 }

type withLengthField struct {
	Length int
}

type withGetter struct{}

func (withGetter) GetLength() int { return 9 }

func TestResolveMember(t *testing.T) {
	tests := []struct {
		name    string
		subject any
		member  string
		want    any
	}{
		{"method", withLengthMethod{}, "Length", 5},
		{"field", withLengthField{Length: 3}, "Length", 3},
		{"getter method", withGetter{}, "Length", 9},
		{
			"pointer to field",
			&withLengthField{Length: 8}, "Length", 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveMember(tt.subject, tt.member)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveMemberNoSuch(t *testing.T) {
	_, err := ResolveMember(neitherForm{}, "Length")
	require.Error(t, err)

	var missing *NoSuchNamedMemberError
	require.ErrorAs(t, err, &missing)
	assert.Equal(
		t,
		"neitherForm has neither a public field or method named 'length'.",
		err.Error(),
	)
}

type lengthBothWays struct {
	Length int
}

func (lengthBothWays) GetLength() int { return 0 }

func TestResolveMemberAmbiguous(t *testing.T) {
	_, err := ResolveMember(lengthBothWays{}, "Length")
	require.Error(t, err)

	var ambiguous *AmbiguousNamedMemberError
	require.ErrorAs(t, err, &ambiguous)
	assert.True(t, errors.Is(err, ErrConfiguration))
	assert.Equal(
		t,
		"lengthBothWays has both a public field and a method named 'length'.",
		err.Error(),
	)
}

func TestArticle(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"empty", "an"},
		{"apple", "an"},
		{"open", "an"},
		{"input", "an"},
		{"file", "a"},
		{"user", "a"},
		{"symbol", "a"},
		{"", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, article(tt.word))
		})
	}
}
