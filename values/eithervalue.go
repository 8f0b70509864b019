// Package values provides generic value containers shared by the object models.
package values

import (
	"reflect"
)

// EitherValue represents a union type that holds exactly one of a Left or Right value.
// The zero value holds neither and is only produced by declaring a variable; use NewLeft or NewRight.
//
// Value access patterns:
//
// Pointer access (GetLeft, GetRight) - for nil-safe pointer retrieval
// Value access (LeftValue, RightValue) - for nil-safe value retrieval with zero value fallback
type EitherValue[L any, R any] struct {
	left  *L
	right *R
}

// NewLeft creates an EitherValue holding the left case.
func NewLeft[L any, R any](value L) EitherValue[L, R] {
	return EitherValue[L, R]{left: &value}
}

// NewRight creates an EitherValue holding the right case.
func NewRight[L any, R any](value R) EitherValue[L, R] {
	return EitherValue[L, R]{right: &value}
}

// IsLeft returns true if the EitherValue holds the left case.
func (e EitherValue[L, R]) IsLeft() bool {
	return e.left != nil
}

// IsRight returns true if the EitherValue holds the right case.
func (e EitherValue[L, R]) IsRight() bool {
	return e.right != nil
}

// IsEmpty returns true if the EitherValue holds neither case.
func (e EitherValue[L, R]) IsEmpty() bool {
	return e.left == nil && e.right == nil
}

// GetLeft returns a pointer to the left value or nil if the right case is held.
func (e EitherValue[L, R]) GetLeft() *L {
	return e.left
}

// GetRight returns a pointer to the right value or nil if the left case is held.
func (e EitherValue[L, R]) GetRight() *R {
	return e.right
}

// LeftValue returns the left value, or the zero value of L if the left case is not held.
func (e EitherValue[L, R]) LeftValue() L {
	if e.left == nil {
		var zero L
		return zero
	}

	return *e.left
}

// RightValue returns the right value, or the zero value of R if the right case is not held.
func (e EitherValue[L, R]) RightValue() R {
	if e.right == nil {
		var zero R
		return zero
	}

	return *e.right
}

type equaler[T any] interface {
	IsEqual(other *T) bool
}

// IsEqual compares two EitherValues holding the same case.
// Values implementing IsEqual(*T) bool are compared with it, anything else with reflect.DeepEqual.
func (e EitherValue[L, R]) IsEqual(other EitherValue[L, R]) bool {
	switch {
	case e.IsEmpty() || other.IsEmpty():
		return e.IsEmpty() && other.IsEmpty()
	case e.IsLeft() && other.IsLeft():
		return isEqual(e.left, other.left)
	case e.IsRight() && other.IsRight():
		return isEqual(e.right, other.right)
	default:
		return false
	}
}

func isEqual[T any](a, b *T) bool {
	if eq, ok := any(a).(equaler[T]); ok {
		return eq.IsEqual(b)
	}

	return reflect.DeepEqual(a, b)
}
