package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAndShortCircuitsConstruction(t *testing.T) {
	constructed := false

	m := And(Be(1), func() Matcher[int] {
		constructed = true
		return Be(2)
	})

	r := m(7)
	assert.False(t, r.Matched)
	assert.Equal(t, "7 was not 1", r.FailureMessage)
	assert.False(
		t, constructed,
		"right operand must not be constructed when the left fails",
	)
}

func TestOrShortCircuitsConstruction(t *testing.T) {
	constructed := false

	m := Or(Be(1), func() Matcher[int] {
		constructed = true
		return Be(2)
	})

	r := m(1)
	assert.True(t, r.Matched)
	assert.Equal(t, "1 was 1", r.NegatedFailureMessage)
	assert.False(
		t, constructed,
		"right operand must not be constructed when the left passes",
	)
}

func TestAndMessageComposition(t *testing.T) {
	tests := []struct {
		name    string
		subject int
		left    Matcher[int]
		right   Matcher[int]
		matched bool
		failure string
		negated string
	}{
		{
			name:    "right fails",
			subject: 1,
			left:    Be(1),
			right:   Be(2),
			matched: false,
			failure: "1 was 1, but 1 was not 2",
			negated: "1 was 1, and 1 was 2",
		},
		{
			name:    "both pass",
			subject: 1,
			left:    Be(1),
			right:   BeLessThan(5),
			matched: true,
			failure: "1 was 1, but 1 was not less than 5",
			negated: "1 was 1, and 1 was less than 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := And(tt.left, Of(tt.right))(tt.subject)
			assert.Equal(t, tt.matched, r.Matched)
			assert.Equal(t, tt.failure, r.FailureMessage)
			assert.Equal(t, tt.negated, r.NegatedFailureMessage)
		})
	}
}

func TestOrMessageComposition(t *testing.T) {
	tests := []struct {
		name    string
		subject int
		left    Matcher[int]
		right   Matcher[int]
		matched bool
		failure string
	}{
		{
			name:    "both fail",
			subject: 1,
			left:    Be(2),
			right:   Be(3),
			matched: false,
			failure: "1 was not 2, and 1 was not 3",
		},
		{
			name:    "right passes",
			subject: 1,
			left:    Be(2),
			right:   Be(1),
			matched: true,
			failure: "1 was not 2, and 1 was not 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Or(tt.left, Of(tt.right))(tt.subject)
			assert.Equal(t, tt.matched, r.Matched)
			assert.Equal(t, tt.failure, r.FailureMessage)
		})
	}
}

func TestNotSwapsMessages(t *testing.T) {
	r := Not(Be(1))(1)
	assert.False(t, r.Matched)
	assert.Equal(t, "1 was 1", r.FailureMessage)
	assert.Equal(t, "1 was not 1", r.NegatedFailureMessage)
}

func TestDoubleNegationIsFlagInvolutive(t *testing.T) {
	tests := []struct {
		name    string
		subject int
		m       Matcher[int]
	}{
		{"passing equal", 3, Equal(3)},
		{"failing equal", 3, Equal(4)},
		{"passing comparison", 3, BeLessThan(9)},
		{"failing comparison", 3, BeGreaterThan(9)},
		{"composed", 3, And(Be(3), Of(BeLessThan(9)))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			direct := tt.m(tt.subject)
			doubled := Not(Not(tt.m))(tt.subject)
			assert.Equal(
				t, direct.Matched, doubled.Matched,
			)
		})
	}
}

func TestAndNotDerivation(t *testing.T) {
	// AndNot(l, r) must behave exactly as And(l, Not(r)).
	subject := 5
	left := BeGreaterThan(1)
	right := Be(5)

	derived := AndNot(left, Of(right))(subject)
	manual := And(left, func() Matcher[int] {
		return Not(right)
	})(subject)

	assert.Equal(t, manual, derived)
	assert.False(t, derived.Matched)
	assert.Equal(
		t,
		"5 was greater than 1, but 5 was 5",
		derived.FailureMessage,
	)
}

func TestOrNotDerivation(t *testing.T) {
	subject := 5
	left := Be(6)
	right := Be(7)

	derived := OrNot(left, Of(right))(subject)
	manual := Or(left, func() Matcher[int] {
		return Not(right)
	})(subject)

	assert.Equal(t, manual, derived)
	assert.True(t, derived.Matched)
}

func TestCombinatorMethods(t *testing.T) {
	m := Be(1).And(Of(BeLessThan(5))).Or(Of(Be(9)))

	assert.True(t, m(1).Matched)
	assert.True(t, m(9).Matched)
	assert.False(t, m(4).Matched)
}
