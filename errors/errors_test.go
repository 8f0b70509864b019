package errors_test

import (
	"fmt"
	"testing"

	"github.com/speakeasy-api/oasparams/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const errTest = errors.Error("test error")

func TestError_Is_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		target   error
		expected bool
	}{
		{
			name:     "exact match",
			target:   errors.Error("test error"),
			expected: true,
		},
		{
			name:     "wrapped with separator",
			target:   errTest.Wrap(fmt.Errorf("cause")),
			expected: true,
		},
		{
			name:     "different message",
			target:   errors.Error("other"),
			expected: false,
		},
		{
			name:     "nil target",
			target:   nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, errTest.Is(tt.target))
		})
	}
}

func TestError_Wrap_Success(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("boom")
	err := errTest.Wrap(cause)

	assert.Equal(t, "test error -- boom", err.Error())
	require.ErrorIs(t, err, errTest)
	require.ErrorIs(t, err, cause)

	err = errTest.Wrapf("value %d", 42)
	assert.Equal(t, "test error -- value 42", err.Error())
	require.ErrorIs(t, err, errTest)
}

func TestUnwrapErrors_Success(t *testing.T) {
	t.Parallel()

	a := errors.New("a")
	b := errors.New("b")

	assert.Nil(t, errors.UnwrapErrors(nil))
	assert.Equal(t, []error{a}, errors.UnwrapErrors(a))
	assert.Equal(t, []error{a, b}, errors.UnwrapErrors(errors.Join(a, b)))
}
