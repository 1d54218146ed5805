// Copyright (c) 2025 Visvasity LLC

// Package staticvec provides a capacity-bounded vector with a checked
// mutation API. Every mutator that would exceed the capacity or touch an
// out-of-range index reports failure and leaves the vector unchanged; no
// operation grows the vector past the capacity fixed at construction.
package staticvec

import (
	"fmt"
	"iter"
	"strings"

	"github.com/visvasity/fixcap/layout"
	"github.com/visvasity/fixcap/optional"
	"github.com/visvasity/fixcap/rawstorage"
)

// Vector is a bounded vector of T. The zero Vector is not usable; construct
// with New or one of the factories.
type Vector[T any] struct {
	storage *rawstorage.Storage[T]
}

// New returns an empty vector for at most capacity elements. Panics if
// capacity is not positive or if T is not a fixed layout type; these mirror
// compile-time contract violations and are never raised by element
// operations.
func New[T any](capacity int) *Vector[T] {
	if err := layout.CheckFixed[T](); err != nil {
		panic(fmt.Sprintf("staticvec: %v", err))
	}
	return &Vector[T]{storage: rawstorage.New[T](capacity)}
}

// FromSlice returns a vector holding a copy of src, or an empty optional if
// src does not fit. The factory is all-or-nothing; no partial vector is ever
// produced.
func FromSlice[T any](capacity int, src []T) optional.Value[*Vector[T]] {
	if len(src) > capacity {
		return optional.None[*Vector[T]]()
	}
	v := New[T](capacity)
	for _, x := range src {
		v.storage.EmplaceBack(x)
	}
	return optional.Some(v)
}

// FromValue returns a vector holding count copies of x, or an empty optional
// if count exceeds capacity.
func FromValue[T any](capacity, count int, x T) optional.Value[*Vector[T]] {
	if count > capacity || count < 0 {
		return optional.None[*Vector[T]]()
	}
	v := New[T](capacity)
	for i := 0; i < count; i++ {
		v.storage.EmplaceBack(x)
	}
	return optional.Some(v)
}

// Of returns a vector holding the given elements, or an empty optional if
// they do not fit.
func Of[T any](capacity int, xs ...T) optional.Value[*Vector[T]] {
	return FromSlice(capacity, xs)
}

// Widen returns a deep copy of v with the given larger capacity. Narrowing
// panics; reducing capacity is never allowed.
func Widen[T any](v *Vector[T], capacity int) *Vector[T] {
	return &Vector[T]{storage: rawstorage.Widen(v.storage, capacity)}
}

// Clone returns an independent deep copy of the vector.
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{storage: v.storage.Clone()}
}

// Capacity returns the maximum element count fixed at construction.
func (v *Vector[T]) Capacity() int {
	return v.storage.Capacity()
}

// Size returns the live element count.
func (v *Vector[T]) Size() int {
	return v.storage.Size()
}

// Empty returns true if the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.storage.Size() == 0
}

// TryPushBack appends x. Returns false if the vector is full.
func (v *Vector[T]) TryPushBack(x T) bool {
	if v.storage.Size() == v.storage.Capacity() {
		return false
	}
	v.storage.EmplaceBack(x)
	return true
}

// TryPopBack removes the last element. Returns false if the vector is empty.
func (v *Vector[T]) TryPopBack() bool {
	if v.storage.Size() == 0 {
		return false
	}
	v.storage.ShrinkFromBack(v.storage.Size() - 1)
	return true
}

// TryInsertAt inserts x before index, shifting the tail up. Returns false if
// index is past the live range or the vector is full.
func (v *Vector[T]) TryInsertAt(index int, x T) bool {
	if index < 0 || index > v.storage.Size() || v.storage.Size() == v.storage.Capacity() {
		return false
	}
	v.storage.EmplaceAt(index, x)
	return true
}

// TryInsertNAt inserts count copies of x before index. Returns false if
// index is past the live range or the result would exceed the capacity.
func (v *Vector[T]) TryInsertNAt(index, count int, x T) bool {
	if index < 0 || index > v.storage.Size() || count < 0 {
		return false
	}
	if v.storage.Size()+count > v.storage.Capacity() {
		return false
	}
	v.storage.MakeRoomAt(index, count)
	for i := index; i < index+count; i++ {
		*v.storage.SlotAt(i) = x
	}
	return true
}

// TryEraseAt removes the element at index, shifting the tail down. Returns
// false if index is out of the live range.
func (v *Vector[T]) TryEraseAt(index int) bool {
	if index < 0 || index >= v.storage.Size() {
		return false
	}
	v.storage.EraseAt(index)
	return true
}

// TryEraseRange removes the elements at [begin,end). Returns false unless
// 0 <= begin <= end <= Size().
func (v *Vector[T]) TryEraseRange(begin, end int) bool {
	if begin < 0 || begin > end || end > v.storage.Size() {
		return false
	}
	v.storage.RemoveAt(begin, end-begin)
	return true
}

// Clear removes every element.
func (v *Vector[T]) Clear() {
	v.storage.ShrinkFromBack(0)
}

// ElementAt returns a pointer to the element at index, or an empty optional
// if index is out of the live range.
func (v *Vector[T]) ElementAt(index int) optional.Value[*T] {
	if index < 0 || index >= v.storage.Size() {
		return optional.None[*T]()
	}
	return optional.Some(v.storage.SlotAt(index))
}

// FrontElement returns a pointer to the first element, or an empty optional
// if the vector is empty.
func (v *Vector[T]) FrontElement() optional.Value[*T] {
	if v.storage.Size() == 0 {
		return optional.None[*T]()
	}
	return optional.Some(v.storage.SlotAt(0))
}

// BackElement returns a pointer to the last element, or an empty optional if
// the vector is empty.
func (v *Vector[T]) BackElement() optional.Value[*T] {
	if v.storage.Size() == 0 {
		return optional.None[*T]()
	}
	return optional.Some(v.storage.SlotAt(v.storage.Size() - 1))
}

// Equal reports element-wise equality over the live ranges of a and b.
// Capacity is a storage bound, not part of the logical value; vectors of
// different capacities holding the same elements compare equal.
func Equal[T comparable](a, b *Vector[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T any](a, b *Vector[T], eq func(x, y T) bool) bool {
	if a.storage.Size() != b.storage.Size() {
		return false
	}
	xs, ys := a.storage.Live(), b.storage.Live()
	for i := range xs {
		if !eq(xs[i], ys[i]) {
			return false
		}
	}
	return true
}

// Unchecked returns a view without bounds checks for callers that have
// already proven index validity.
func (v *Vector[T]) Unchecked() Accessor[T] {
	return Accessor[T]{v: v}
}

// Accessor is the unchecked access view over a vector. Index validity is the
// caller's obligation.
type Accessor[T any] struct {
	v *Vector[T]
}

// At returns a pointer to the slot at index.
//
// Precondition: index < Size().
func (a Accessor[T]) At(index int) *T {
	return a.v.storage.SlotAt(index)
}

// Slice returns the live elements as a slice aliasing the vector.
func (a Accessor[T]) Slice() []T {
	return a.v.storage.Live()
}

// All ranges over the live elements in index order.
func (a Accessor[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range a.v.storage.Live() {
			if !yield(i, x) {
				return
			}
		}
	}
}

// String returns a debug representation.
func (v *Vector[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "StaticVector{capacity:%d size:%d data:[", v.Capacity(), v.Size())
	for i, x := range v.storage.Live() {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%v", x)
	}
	sb.WriteString("]}")
	return sb.String()
}
