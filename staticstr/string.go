// Copyright (c) 2025 Visvasity LLC

// Package staticstr provides a capacity-bounded string with a checked
// mutation API. The content is restricted to single byte code units in the
// 7-bit ASCII range; the NUL byte and bytes with the high bit set are
// rejected by every checked mutation. The buffer always carries a NUL
// terminator immediately after the live content.
package staticstr

import (
	"bytes"

	"github.com/visvasity/fixcap/common"
	"github.com/visvasity/fixcap/optional"
)

// codeUnitUpperBound is the largest accepted code unit. Multi-byte UTF-8
// sequences are not yet supported, which restricts content to those UTF-8
// strings that are also valid 7-bit ASCII.
const codeUnitUpperBound = 127

// String is a bounded string of at most capacity code units plus a
// permanently maintained NUL terminator. The zero String is not usable;
// construct with New or one of the factories.
type String struct {
	buf  common.ViewBytes // len is capacity+1; buf[size] == 0 always
	size int
}

// New returns an empty string with the given capacity. Panics if capacity is
// not positive.
func New(capacity int) *String {
	if capacity <= 0 {
		panic("staticstr: capacity must be positive")
	}
	return &String{buf: make(common.ViewBytes, capacity+1)}
}

func isValidNext(c byte) bool {
	return c > 0 && c <= codeUnitUpperBound
}

// FromUTF8 returns a string holding a copy of s, or an empty optional if s
// does not fit or contains a byte outside the accepted code unit range.
func FromUTF8(capacity int, s string) optional.Value[*String] {
	if len(s) > capacity {
		return optional.None[*String]()
	}
	ret := New(capacity)
	for i := 0; i < len(s); i++ {
		if !ret.TryPushBack(s[i]) {
			return optional.None[*String]()
		}
	}
	return optional.Some(ret)
}

// FromUTF8NullTerminatedUnchecked scans p up to its NUL terminator and
// returns a string holding the bytes before it. Callers must guarantee that
// p contains a NUL terminator. Returns an empty optional on the first
// invalid byte or once the content exceeds capacity; no partial result is
// retained.
func FromUTF8NullTerminatedUnchecked(capacity int, p []byte) optional.Value[*String] {
	ret := New(capacity)
	for _, c := range p {
		if c == 0 {
			break
		}
		if !ret.TryPushBack(c) {
			return optional.None[*String]()
		}
	}
	return optional.Some(ret)
}

// FromUTF8UncheckedTruncated copies bytes of s up to its NUL terminator,
// truncating at capacity. Callers must guarantee that the truncated content
// is a valid encoding; no validation is performed.
func FromUTF8UncheckedTruncated(capacity int, s string) *String {
	ret := New(capacity)
	for i := 0; i < len(s) && i < capacity; i++ {
		if s[i] == 0 {
			break
		}
		ret.buf[ret.size] = s[i]
		ret.size++
	}
	ret.buf[ret.size] = 0
	return ret
}

// Capacity returns the maximum code unit count fixed at construction,
// excluding the terminator slot.
func (s *String) Capacity() int {
	return len(s.buf) - 1
}

// Size returns the live code unit count.
func (s *String) Size() int {
	return s.size
}

// Empty returns true if the string holds no code units.
func (s *String) Empty() bool {
	return s.size == 0
}

// TryPushBack appends a single code unit. Returns false if the string is
// full or c is outside the accepted code unit range.
func (s *String) TryPushBack(c byte) bool {
	if s.size < s.Capacity() && isValidNext(c) {
		s.buf[s.size] = c
		s.size++
		s.buf[s.size] = 0
		return true
	}
	return false
}

// TryPopBack removes the last code unit. Returns false if the string is
// empty.
func (s *String) TryPopBack() bool {
	if s.size == 0 {
		return false
	}
	s.buf[s.size-1] = 0
	s.size--
	return true
}

// TryAppend appends count copies of c. Returns false if the result would
// exceed the capacity or c is outside the accepted code unit range.
func (s *String) TryAppend(count int, c byte) bool {
	if count < 0 || s.size+count > s.Capacity() || !isValidNext(c) {
		return false
	}
	s.buf.Fill(s.size, count, c)
	s.size += count
	s.buf[s.size] = 0
	return true
}

// TryAppendUTF8NullTerminatedUnchecked appends the bytes of p up to its NUL
// terminator, which callers must guarantee exists. On the first invalid byte
// or overflow the already appended tail is re-zeroed and the size restored,
// so a failed append leaves the string exactly as it was.
func (s *String) TryAppendUTF8NullTerminatedUnchecked(p []byte) bool {
	oldSize := s.size
	for _, c := range p {
		if c == 0 {
			break
		}
		if !s.TryPushBack(c) {
			s.buf.Fill(oldSize, s.size-oldSize, 0)
			s.size = oldSize
			return false
		}
	}
	return true
}

// Equal reports byte-wise equality over the live content of a and b.
// Capacity is a storage bound, not part of the logical value; strings of
// different capacities holding the same content compare equal.
func Equal(a, b *String) bool {
	return bytes.Equal(a.buf[:a.size], b.buf[:b.size])
}

// Compare orders a and b by their content bytes, with the shorter string
// ordering first on a common prefix. The result follows the usual -1/0/+1
// convention.
func Compare(a, b *String) int {
	return bytes.Compare(a.buf[:a.size], b.buf[:b.size])
}

// Clone returns an independent deep copy of the string.
func (s *String) Clone() *String {
	c := New(s.Capacity())
	copy(c.buf, s.buf)
	c.size = s.size
	return c
}

// Widen returns a deep copy of s with the given larger capacity. Narrowing
// panics; reducing capacity is never allowed.
func Widen(s *String, capacity int) *String {
	if capacity < s.Capacity() {
		panic("staticstr: narrowing conversion is not allowed")
	}
	c := New(capacity)
	copy(c.buf, s.buf[:s.size])
	c.size = s.size
	return c
}

// String returns a copy of the live content as a Go string.
func (s *String) String() string {
	return string(s.buf[:s.size])
}
