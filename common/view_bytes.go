// Copyright (c) 2025 Visvasity LLC

// Package common holds the byte-level primitives shared by the container
// wire encodings.
package common

import (
	"bytes"
	"encoding/binary"
)

// ViewBytes is a view over a container's wire representation. All multi-byte
// accessors use big-endian byte order.
type ViewBytes []byte

var zeros [4096]byte

// IsZero returns true if every byte of the view is zero.
func (v ViewBytes) IsZero() bool {
	size := len(v)
	for i, sz := 0, 0; i < size; i += sz {
		sz = min(size-i, len(zeros))
		if !bytes.Equal(v[i:i+sz], zeros[:sz]) {
			return false
		}
	}
	return true
}

// SetZero writes zeros into the whole view.
func (v ViewBytes) SetZero() {
	size := len(v)
	for i, sz := 0, 0; i < size; i += sz {
		sz = min(size-i, len(zeros))
		copy(v[i:i+sz], zeros[:sz])
	}
}

// CopyWithin copies len(v)-src bytes from offset src to offset dst.
func (v ViewBytes) CopyWithin(dst, src int) {
	copy(v[dst:], v[src:])
}

// Fill writes c into every byte of [offset, offset+count).
func (v ViewBytes) Fill(offset, count int, c byte) {
	for i := offset; i < offset+count; i++ {
		v[i] = c
	}
}

func (v ViewBytes) Uint64At(offset int) uint64 {
	return binary.BigEndian.Uint64(v[offset : offset+8])
}

func (v ViewBytes) SetUint64At(offset int, x uint64) {
	binary.BigEndian.PutUint64(v[offset:offset+8], x)
}
