// Copyright (c) 2025 Visvasity LLC

// Package rawstorage provides the unchecked storage tier underneath the
// checked container types. Operations document their preconditions and do
// not validate them; callers must prove index and capacity bounds before
// calling. Out-of-contract calls may panic on slice bounds or silently
// corrupt the live range.
package rawstorage

// Storage holds up to a fixed number of T values contiguously. Slots
// [0,size) are live; slots [size,capacity) hold the zero T.
type Storage[T any] struct {
	slots []T
	size  int
}

// New returns an empty storage for at most capacity elements. Panics if
// capacity is not positive.
func New[T any](capacity int) *Storage[T] {
	if capacity <= 0 {
		panic("rawstorage: capacity must be positive")
	}
	return &Storage[T]{slots: make([]T, capacity)}
}

// Size returns the live element count.
func (s *Storage[T]) Size() int {
	return s.size
}

// Capacity returns the fixed slot count.
func (s *Storage[T]) Capacity() int {
	return len(s.slots)
}

// SlotAt returns a pointer to the live slot at index.
//
// Precondition: index < Size().
func (s *Storage[T]) SlotAt(index int) *T {
	return &s.slots[index]
}

// EmplaceBack places x into the slot at Size() and extends the live range.
//
// Precondition: Size() < Capacity().
func (s *Storage[T]) EmplaceBack(x T) {
	s.slots[s.size] = x
	s.size++
}

// EmplaceAt opens a one-slot gap at index and places x into it.
//
// Preconditions: index <= Size() and Size() < Capacity().
func (s *Storage[T]) EmplaceAt(index int, x T) {
	s.MakeRoomAt(index, 1)
	s.slots[index] = x
}

// MakeRoomAt shifts the live elements at [index,Size()) up by gap slots,
// opening a contiguous gap of zeroed slots starting at index and extending
// the live range.
//
// Preconditions: index <= Size() and Size()+gap <= Capacity().
func (s *Storage[T]) MakeRoomAt(index, gap int) {
	copy(s.slots[index+gap:s.size+gap], s.slots[index:s.size])
	var zero T
	for i := index; i < index+gap; i++ {
		s.slots[i] = zero
	}
	s.size += gap
}

// EraseAt removes the single live element at index, shifting the tail down.
//
// Precondition: index < Size().
func (s *Storage[T]) EraseAt(index int) {
	s.RemoveAt(index, 1)
}

// RemoveAt removes count live elements starting at index. Elements past the
// removed range shift down; the vacated trailing slots are released.
//
// Preconditions: index+count <= Size().
func (s *Storage[T]) RemoveAt(index, count int) {
	copy(s.slots[index:], s.slots[index+count:s.size])
	s.ShrinkFromBack(s.size - count)
}

// ShrinkFromBack releases the live slots [target,Size()) in descending index
// order and sets the live count to target. Released slots are reset to the
// zero T so that the storage never retains stale element bytes.
//
// Precondition: target <= Size().
func (s *Storage[T]) ShrinkFromBack(target int) {
	var zero T
	for i := s.size - 1; i >= target; i-- {
		s.slots[i] = zero
	}
	s.size = target
}

// Clone returns an independent storage with the same capacity and a copy of
// every live element, in ascending index order.
func (s *Storage[T]) Clone() *Storage[T] {
	c := New[T](len(s.slots))
	for i := 0; i < s.size; i++ {
		c.EmplaceBack(s.slots[i])
	}
	return c
}

// Widen returns a storage with the given larger capacity holding a copy of
// every live element. Narrowing is a contract violation, mirroring the
// compile-time rejection of narrowing conversions.
func Widen[T any](s *Storage[T], capacity int) *Storage[T] {
	if capacity < len(s.slots) {
		panic("rawstorage: narrowing conversion is not allowed")
	}
	c := New[T](capacity)
	for i := 0; i < s.size; i++ {
		c.EmplaceBack(s.slots[i])
	}
	return c
}

// Live returns the live elements as a slice aliasing the storage.
//
// The returned slice must not be grown; writes through it are visible to the
// storage.
func (s *Storage[T]) Live() []T {
	return s.slots[:s.size]
}
