// Copyright (c) 2025 Visvasity LLC

package staticstr

import (
	"fmt"

	"github.com/visvasity/fixcap/common"
	"github.com/visvasity/fixcap/layout"
)

// WireLayout returns the metrics describing the wire representation of this
// string: the content bytes plus terminator slot at offset zero followed by
// an unsigned 64-bit live count. The metrics exist to verify layout
// agreement with an independent implementation; runtime logic never consults
// them.
func (s *String) WireLayout() layout.StringMetrics {
	return layout.StringWireMetrics(s.Capacity())
}

// EncodedSize returns the number of bytes EncodeTo writes.
func (s *String) EncodedSize() int {
	return s.WireLayout().StringSize
}

// EncodeTo writes the string's wire representation into buf. The region past
// the terminator is zeroed so that equal strings always produce identical
// bytes.
func (s *String) EncodeTo(buf []byte) error {
	m := s.WireLayout()
	if len(buf) < m.StringSize {
		return fmt.Errorf("staticstr: buffer size %d is smaller than encoded size %d", len(buf), m.StringSize)
	}
	bs := common.ViewBytes(buf[:m.StringSize])
	bs.SetZero()
	copy(bs, s.buf[:s.size])
	bs.SetUint64At(m.OffsetSize, uint64(s.size))
	return nil
}

// DecodeFrom replaces the string's contents with the value encoded in buf.
// Fails without modifying the string if buf is too small, records more code
// units than the string's capacity, or carries a byte outside the accepted
// code unit range.
func (s *String) DecodeFrom(buf []byte) error {
	m := s.WireLayout()
	if len(buf) < m.StringSize {
		return fmt.Errorf("staticstr: buffer size %d is smaller than encoded size %d", len(buf), m.StringSize)
	}
	bs := common.ViewBytes(buf[:m.StringSize])
	size := bs.Uint64At(m.OffsetSize)
	if size > uint64(s.Capacity()) {
		return fmt.Errorf("staticstr: encoded size %d exceeds capacity %d", size, s.Capacity())
	}
	for i := 0; i < int(size); i++ {
		if !isValidNext(bs[i]) {
			return fmt.Errorf("staticstr: invalid code unit %#x at position %d", bs[i], i)
		}
	}
	s.buf.SetZero()
	copy(s.buf, bs[:size])
	s.size = int(size)
	return nil
}
