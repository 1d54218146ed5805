// Copyright (c) 2025 Visvasity LLC

package staticstr

import (
	"strings"

	"github.com/visvasity/fixcap/optional"
)

// CodeUnits returns the checked read-only per-code-unit view.
func (s *String) CodeUnits() ConstCodeUnits {
	return ConstCodeUnits{s: s}
}

// UncheckedCodeUnits returns the mutable per-code-unit view. Writes through
// this view can violate the encoding invariant; callers must keep the
// content within the accepted code unit range and never write a NUL into the
// live range.
func (s *String) UncheckedCodeUnits() CodeUnits {
	return CodeUnits{s: s}
}

// Unchecked returns the whole-string view without bounds checks, for C
// string style interop.
func (s *String) Unchecked() Accessor {
	return Accessor{s: s}
}

// ConstCodeUnits is the checked read-only per-code-unit view.
type ConstCodeUnits struct {
	s *String
}

// ElementAt returns the code unit at index, or an empty optional if index is
// out of the live range.
func (v ConstCodeUnits) ElementAt(index int) optional.Value[byte] {
	if index < 0 || index >= v.s.size {
		return optional.None[byte]()
	}
	return optional.Some(v.s.buf[index])
}

// FrontElement returns the first code unit, or an empty optional if the
// string is empty.
func (v ConstCodeUnits) FrontElement() optional.Value[byte] {
	if v.s.size == 0 {
		return optional.None[byte]()
	}
	return optional.Some(v.s.buf[0])
}

// BackElement returns the last code unit, or an empty optional if the string
// is empty.
func (v ConstCodeUnits) BackElement() optional.Value[byte] {
	if v.s.size == 0 {
		return optional.None[byte]()
	}
	return optional.Some(v.s.buf[v.s.size-1])
}

// Substr returns a new string holding the code units [pos, pos+count),
// clipped to the live range. Returns an empty optional if pos is past the
// live range or count is negative.
func (v ConstCodeUnits) Substr(pos, count int) optional.Value[*String] {
	if pos < 0 || pos > v.s.size || count < 0 {
		return optional.None[*String]()
	}
	length := min(count, v.s.size-pos)
	sub := New(v.s.Capacity())
	copy(sub.buf, v.s.buf[pos:pos+length])
	sub.buf[length] = 0
	sub.size = length
	return optional.Some(sub)
}

// FindFirstOf returns the position of the first code unit at or after pos
// that equals one of the bytes of set, or an empty optional if there is no
// such code unit or pos is past the live range.
func (v ConstCodeUnits) FindFirstOf(set string, pos int) optional.Value[int] {
	if pos < 0 || pos > v.s.size {
		return optional.None[int]()
	}
	for position := pos; position < v.s.size; position++ {
		if strings.IndexByte(set, v.s.buf[position]) >= 0 {
			return optional.Some(position)
		}
	}
	return optional.None[int]()
}

// FindLastOf returns the position of the last code unit at or before pos
// that equals one of the bytes of set, or an empty optional if there is no
// such code unit.
func (v ConstCodeUnits) FindLastOf(set string, pos int) optional.Value[int] {
	if v.s.size == 0 {
		return optional.None[int]()
	}
	for position := min(pos, v.s.size-1); position >= 0; position-- {
		if strings.IndexByte(set, v.s.buf[position]) >= 0 {
			return optional.Some(position)
		}
	}
	return optional.None[int]()
}

// CodeUnits is the mutable per-code-unit view. Encoding validity is the
// caller's obligation for writes made through the returned pointers.
type CodeUnits struct {
	s *String
}

// ElementAt returns a pointer to the code unit at index, or an empty
// optional if index is out of the live range.
func (v CodeUnits) ElementAt(index int) optional.Value[*byte] {
	if index < 0 || index >= v.s.size {
		return optional.None[*byte]()
	}
	return optional.Some(&v.s.buf[index])
}

// FrontElement returns a pointer to the first code unit, or an empty
// optional if the string is empty.
func (v CodeUnits) FrontElement() optional.Value[*byte] {
	if v.s.size == 0 {
		return optional.None[*byte]()
	}
	return optional.Some(&v.s.buf[0])
}

// BackElement returns a pointer to the last code unit, or an empty optional
// if the string is empty.
func (v CodeUnits) BackElement() optional.Value[*byte] {
	if v.s.size == 0 {
		return optional.None[*byte]()
	}
	return optional.Some(&v.s.buf[v.s.size-1])
}

// TryEraseAt removes the single code unit at index. Returns false if index
// is out of the live range.
func (v CodeUnits) TryEraseAt(index int) bool {
	return v.TryEraseRange(index, index+1)
}

// TryEraseRange removes the code units at [begin,end), shifting the tail
// down and re-zeroing the vacated suffix up to and including a fresh
// terminator. Returns false unless 0 <= begin <= end <= Size().
func (v CodeUnits) TryEraseRange(begin, end int) bool {
	if begin < 0 || begin > end || end > v.s.size {
		return false
	}
	count := end - begin
	v.s.buf.CopyWithin(begin, end)
	v.s.buf.Fill(v.s.size-count, len(v.s.buf)-(v.s.size-count), 0)
	v.s.size -= count
	return true
}

// Accessor is the unchecked whole-string view. Index validity is the
// caller's obligation.
type Accessor struct {
	s *String
}

// At returns a pointer to the byte at index.
//
// Precondition: index <= Size(); index == Size() addresses the terminator.
func (a Accessor) At(index int) *byte {
	return &a.s.buf[index]
}

// Slice returns the live content as a slice aliasing the string, without
// the terminator.
func (a Accessor) Slice() []byte {
	return a.s.buf[:a.s.size]
}

// CString returns the live content plus the NUL terminator as a slice
// aliasing the string.
func (a Accessor) CString() []byte {
	return a.s.buf[:a.s.size+1]
}

// Data returns the whole buffer, including the zeroed region past the
// terminator, as a slice aliasing the string.
func (a Accessor) Data() []byte {
	return a.s.buf
}
