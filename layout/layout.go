// Copyright (c) 2025 Visvasity LLC

// Package layout computes and describes the wire layout of the fixed
// capacity containers. A container value is laid out as a data region at
// offset zero followed by an unsigned 64-bit live-count at the next 8-byte
// aligned offset. Element values are packed big-endian inside the data
// region. Two implementations agree on the wire format when they report
// identical metrics for the same element type and capacity.
package layout

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"
)

// AlignFor returns the in-memory alignment of T on the current platform.
func AlignFor[T any]() int {
	return reflect.TypeFor[T]().Align()
}

var wireSizeMap sync.Map // reflect.Type -> int

// WireSizeFor returns the packed big-endian encoded size of T. Panics if T
// is not a fixed layout type.
func WireSizeFor[T any]() int {
	stype := reflect.TypeFor[T]()
	if x, ok := wireSizeMap.Load(stype); ok {
		return x.(int)
	}
	var v T
	n := binary.Size(v)
	if n < 0 {
		panic(fmt.Sprintf("type %s does not have a fixed wire size", stype))
	}
	wireSizeMap.Store(stype, n)
	return n
}

// Align8 rounds n up to the next multiple of 8.
func Align8(n int) int {
	return (n + 7) &^ 7
}

// CheckFixed reports whether T is a fixed layout type: booleans, explicitly
// sized integers and floats, and arrays and structs built from them. Types
// with platform-dependent sizes or indirections (int, uint, uintptr,
// pointers, slices, maps, strings, channels, functions, interfaces) are
// rejected.
func CheckFixed[T any]() error {
	return checkFixedType(reflect.TypeFor[T](), "")
}

func checkFixedType(t reflect.Type, path string) error {
	name := t.String()
	if path != "" {
		name = path + " (" + name + ")"
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return nil
	case reflect.Array:
		return checkFixedType(t.Elem(), name+" element")
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			fpath := name + "." + f.Name
			if path == "" {
				fpath = f.Name
			}
			if err := checkFixedType(f.Type, fpath); err != nil {
				return err
			}
		}
		return nil
	case reflect.Int, reflect.Uint, reflect.Uintptr:
		return fmt.Errorf("%s has a platform-dependent size; use an explicitly sized type", name)
	}
	return fmt.Errorf("%s is not a fixed layout type", name)
}
