package expect

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.spec/pkg/matcher"
)

func TestThatPassesSilently(t *testing.T) {
	assert.NotPanics(t, func() {
		That(3, matcher.Equal(3))
	})
}

func TestThatPanicsWithTypedFailure(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)

		failure, ok := r.(*Failure)
		require.True(t, ok)
		assert.Equal(
			t, "3 did not equal 4", failure.Message,
		)
		assert.True(t, errors.Is(failure, ErrFailure))
	}()

	That(3, matcher.Equal(4))
}

func TestNotThatUsesNegatedMessage(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)

		failure, ok := r.(*Failure)
		require.True(t, ok)
		assert.Equal(t, "3 equaled 3", failure.Message)
	}()

	NotThat(3, matcher.Equal(3))
}

func TestNotThatPassesSilently(t *testing.T) {
	assert.NotPanics(t, func() {
		NotThat(3, matcher.Equal(4))
	})
}

func TestCheckNeverPanics(t *testing.T) {
	r := Check(3, matcher.Equal(4))
	assert.False(t, r.Matched)
	assert.Equal(t, "3 did not equal 4", r.FailureMessage)
}

func TestFailureIsDistinctFromConfigurationErrors(t *testing.T) {
	failure := &Failure{Message: "x"}
	assert.True(t, errors.Is(failure, ErrFailure))

	// A failure never satisfies a different sentinel.
	other := errors.New("something else")
	assert.False(t, errors.Is(failure, other))
}
