// Copyright (c) 2025 Visvasity LLC

package layout

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"
)

// FieldMetrics describes one field of an element's packed wire layout.
type FieldMetrics struct {
	OffsetBytes int  `json:"offset_bytes"`
	SizeBytes   int  `json:"size_bytes"`
	IsUnsigned  bool `json:"is_unsigned"`
}

var fieldMetricsMap sync.Map // reflect.Type -> []FieldMetrics

// FieldWireMetricsFor returns the packed wire layout of T's fields when T is
// a struct, or nil otherwise. Panics if a field is not a fixed layout type.
func FieldWireMetricsFor[T any]() []FieldMetrics {
	stype := reflect.TypeFor[T]()
	if stype.Kind() != reflect.Struct {
		return nil
	}
	if x, ok := fieldMetricsMap.Load(stype); ok {
		return x.([]FieldMetrics)
	}

	ms := make([]FieldMetrics, stype.NumField())
	offset := 0
	for i := range ms {
		f := stype.Field(i)
		size := binary.Size(reflect.Zero(f.Type).Interface())
		if size < 0 {
			panic(fmt.Sprintf("field %s of %s does not have a fixed wire size", f.Name, stype))
		}
		ms[i] = FieldMetrics{
			OffsetBytes: offset,
			SizeBytes:   size,
			IsUnsigned:  isUnsignedType(f.Type),
		}
		offset += size
	}

	fieldMetricsMap.Store(stype, ms)
	return ms
}

func isUnsignedType(t reflect.Type) bool {
	for t.Kind() == reflect.Array {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

// StorageMetrics describes the wire layout of the raw element storage: the
// packed data region and the trailing live-count field.
type StorageMetrics struct {
	StorageSize      int  `json:"storage_size"`
	StorageAlignment int  `json:"storage_alignment"`
	SizeofBytes      int  `json:"sizeof_bytes"`
	OffsetBytes      int  `json:"offset_bytes"`
	SizeofSize       int  `json:"sizeof_size"`
	OffsetSize       int  `json:"offset_size"`
	SizeIsUnsigned   bool `json:"size_is_unsigned"`
}

// VectorMetrics describes the wire layout of a vector value. ElementFields
// breaks down the packed layout of struct elements; it is empty for basic
// element types.
type VectorMetrics struct {
	VectorSize      int            `json:"vector_size"`
	VectorAlignment int            `json:"vector_alignment"`
	ElementSize     int            `json:"element_size"`
	Capacity        int            `json:"capacity"`
	ElementFields   []FieldMetrics `json:"element_fields,omitempty"`
	Storage         StorageMetrics `json:"storage_metrics"`
}

// StringMetrics describes the wire layout of a string value. The data region
// includes the slot for the permanent NUL terminator.
type StringMetrics struct {
	StringSize      int  `json:"string_size"`
	StringAlignment int  `json:"string_alignment"`
	Capacity        int  `json:"capacity"`
	SizeofData      int  `json:"sizeof_data"`
	OffsetData      int  `json:"offset_data"`
	SizeofSize      int  `json:"sizeof_size"`
	OffsetSize      int  `json:"offset_size"`
	SizeIsUnsigned  bool `json:"size_is_unsigned"`
}

// StorageWireMetrics computes the storage layout for capacity elements of
// a given packed size and alignment. The data region starts at offset zero
// and the live-count is an unsigned 64-bit field at the next 8-byte aligned
// offset.
func StorageWireMetrics(elemSize, elemAlign, capacity int) StorageMetrics {
	dataSize := elemSize * capacity
	offsetSize := Align8(dataSize)
	return StorageMetrics{
		StorageSize:      offsetSize + 8,
		StorageAlignment: max(8, elemAlign),
		SizeofBytes:      dataSize,
		OffsetBytes:      0,
		SizeofSize:       8,
		OffsetSize:       offsetSize,
		SizeIsUnsigned:   true,
	}
}

// VectorWireMetrics computes the wire layout of a vector of T with the given
// capacity.
func VectorWireMetrics[T any](capacity int) VectorMetrics {
	sm := StorageWireMetrics(WireSizeFor[T](), AlignFor[T](), capacity)
	return VectorMetrics{
		VectorSize:      sm.StorageSize,
		VectorAlignment: sm.StorageAlignment,
		ElementSize:     WireSizeFor[T](),
		Capacity:        capacity,
		ElementFields:   FieldWireMetricsFor[T](),
		Storage:         sm,
	}
}

// StringWireMetrics computes the wire layout of a string with the given
// capacity. The data region holds capacity+1 bytes so that the terminator
// travels with the value.
func StringWireMetrics(capacity int) StringMetrics {
	dataSize := capacity + 1
	offsetSize := Align8(dataSize)
	return StringMetrics{
		StringSize:      offsetSize + 8,
		StringAlignment: 8,
		Capacity:        capacity,
		SizeofData:      dataSize,
		OffsetData:      0,
		SizeofSize:      8,
		OffsetSize:      offsetSize,
		SizeIsUnsigned:  true,
	}
}
