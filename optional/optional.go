// Copyright (c) 2025 Visvasity LLC

// Package optional provides a zero-or-one value holder used by the checked
// container APIs to report fallible lookups and factories without panics.
package optional

// Value holds zero or one T. The zero Value is empty.
type Value[T any] struct {
	value T
	valid bool
}

// Some returns a Value holding x.
func Some[T any](x T) Value[T] {
	return Value[T]{value: x, valid: true}
}

// None returns an empty Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Of returns Some(x) when ok is true and None otherwise.
func Of[T any](x T, ok bool) Value[T] {
	if !ok {
		return Value[T]{}
	}
	return Some(x)
}

// IsSome returns true if the Value holds a T.
func (v Value[T]) IsSome() bool {
	return v.valid
}

// IsNone returns true if the Value is empty.
func (v Value[T]) IsNone() bool {
	return !v.valid
}

// Get returns the held value and true, or the zero T and false.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.valid
}

// OrZero returns the held value or the zero T.
func (v Value[T]) OrZero() T {
	return v.value
}

// OrElse returns the held value or the given fallback.
func (v Value[T]) OrElse(fallback T) T {
	if !v.valid {
		return fallback
	}
	return v.value
}

// Set replaces the held value.
func (v *Value[T]) Set(x T) {
	v.value, v.valid = x, true
}

// Reset empties the Value.
func (v *Value[T]) Reset() {
	var zero T
	v.value, v.valid = zero, false
}
