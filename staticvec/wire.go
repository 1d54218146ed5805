// Copyright (c) 2025 Visvasity LLC

package staticvec

import (
	"encoding/binary"
	"fmt"

	"github.com/visvasity/fixcap/common"
	"github.com/visvasity/fixcap/layout"
)

// WireLayout returns the metrics describing the wire representation of this
// vector: a packed big-endian data region at offset zero followed by an
// unsigned 64-bit live count. The metrics exist to verify layout agreement
// with an independent implementation; runtime logic never consults them.
func (v *Vector[T]) WireLayout() layout.VectorMetrics {
	return layout.VectorWireMetrics[T](v.Capacity())
}

// EncodedSize returns the number of bytes EncodeTo writes.
func (v *Vector[T]) EncodedSize() int {
	return v.WireLayout().VectorSize
}

// EncodeTo writes the vector's wire representation into buf. Unused slots in
// the data region are zeroed so that equal vectors always produce identical
// bytes.
func (v *Vector[T]) EncodeTo(buf []byte) error {
	m := v.WireLayout()
	if len(buf) < m.VectorSize {
		return fmt.Errorf("staticvec: buffer size %d is smaller than encoded size %d", len(buf), m.VectorSize)
	}
	bs := common.ViewBytes(buf[:m.VectorSize])
	bs.SetZero()
	for i, x := range v.storage.Live() {
		if _, err := binary.Encode(bs[i*m.ElementSize:], binary.BigEndian, x); err != nil {
			return fmt.Errorf("staticvec: encoding element %d: %w", i, err)
		}
	}
	bs.SetUint64At(m.Storage.OffsetSize, uint64(v.Size()))
	return nil
}

// DecodeFrom replaces the vector's contents with the value encoded in buf.
// Fails without modifying the vector if buf is too small or records more
// live elements than the vector's capacity.
func (v *Vector[T]) DecodeFrom(buf []byte) error {
	m := v.WireLayout()
	if len(buf) < m.VectorSize {
		return fmt.Errorf("staticvec: buffer size %d is smaller than encoded size %d", len(buf), m.VectorSize)
	}
	bs := common.ViewBytes(buf[:m.VectorSize])
	size := bs.Uint64At(m.Storage.OffsetSize)
	if size > uint64(v.Capacity()) {
		return fmt.Errorf("staticvec: encoded size %d exceeds capacity %d", size, v.Capacity())
	}
	v.storage.ShrinkFromBack(0)
	for i := 0; i < int(size); i++ {
		var x T
		if _, err := binary.Decode(bs[i*m.ElementSize:], binary.BigEndian, &x); err != nil {
			v.storage.ShrinkFromBack(0)
			return fmt.Errorf("staticvec: decoding element %d: %w", i, err)
		}
		v.storage.EmplaceBack(x)
	}
	return nil
}
