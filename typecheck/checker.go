// Copyright (c) 2025 Visvasity LLC

// Package typecheck validates container element types at the source level.
// An element type embedded in a container must have a fixed wire layout:
// booleans, explicitly sized integers and floats, and arrays and structs
// built from them. Types with platform-dependent sizes or indirections are
// rejected with an error naming the offending field.
package typecheck

import (
	"fmt"
	"go/types"
)

// basicWireSizes maps the accepted basic kinds to their packed encoded
// sizes.
var basicWireSizes = map[string]int64{
	"bool":    1,
	"int8":    1,
	"int16":   2,
	"int32":   4,
	"int64":   8,
	"uint8":   1,
	"byte":    1,
	"uint16":  2,
	"uint32":  4,
	"uint64":  8,
	"float32": 4,
	"float64": 8,
}

type FieldData struct {
	Index     int
	FieldName string

	TypeName    string
	TypePkgPath string
	TypePkgName string

	Kind string // One of [basic|struct|array]

	BasicKind string // Set for basic fields and basic array elements.

	ArrayLens []int64

	// Offset and WireSize describe the packed wire layout, in bytes.
	Offset   int64
	WireSize int64
}

type TypeData struct {
	TypeName string

	PkgPath string
	PkgName string

	Kind string // One of [basic|struct]

	WireSize int64

	Fields []*FieldData
}

type Checker struct {
	typeDataMap map[string]*TypeData
}

func New() *Checker {
	return &Checker{
		typeDataMap: make(map[string]*TypeData),
	}
}

func (c *Checker) TypeDataMap() map[string]*TypeData {
	return c.typeDataMap
}

// Check scans the named type and records its wire layout metadata. Returns
// an error if the type is not a fixed layout element type.
func (c *Checker) Check(typename *types.TypeName) error {
	tdata := &TypeData{
		TypeName: typename.Name(),
	}
	if pkg := typename.Pkg(); pkg != nil {
		tdata.PkgPath = pkg.Path()
		tdata.PkgName = pkg.Name()
	}

	switch utype := typename.Type().Underlying().(type) {
	case *types.Basic:
		size, ok := basicWireSizes[utype.Name()]
		if !ok {
			return fmt.Errorf("Check: type %s: basic kind %s is not fixed layout", typename.Name(), utype.Name())
		}
		tdata.Kind = "basic"
		tdata.WireSize = size

	case *types.Struct:
		tdata.Kind = "struct"
		var offset int64
		for i := 0; i < utype.NumFields(); i++ {
			fdata := &FieldData{Index: i, Offset: offset}
			if err := c.collectField(utype.Field(i), fdata); err != nil {
				return err
			}
			offset += fdata.WireSize
			tdata.Fields = append(tdata.Fields, fdata)
		}
		tdata.WireSize = offset

	default:
		return fmt.Errorf("Check: type %s with underlying type %T is not supported", typename.Name(), utype)
	}

	c.typeDataMap[typename.Name()] = tdata
	return nil
}

func (c *Checker) collectField(field *types.Var, fdata *FieldData) error {
	fdata.FieldName = field.Name()
	ftype := field.Type()

	switch {
	case isBasicType(ftype):
		fdata.Kind = "basic"
		return c.collectBasicField(field, fdata, ftype)
	case isStructType(ftype):
		fdata.Kind = "struct"
		return c.collectStructField(field, fdata, ftype)
	case isArrayType(ftype):
		fdata.Kind = "array"
		return c.collectArrayField(field, fdata, ftype)
	}

	return fmt.Errorf("collectField: field (%v) of type %v (underlying=%T) is not fixed layout", field, ftype, ftype.Underlying())
}

func (c *Checker) collectBasicField(field *types.Var, fdata *FieldData, xtype types.Type) error {
	btype, ok := xtype.Underlying().(*types.Basic)
	if !ok {
		return fmt.Errorf("collectBasicField: field=(%v): underlying type %T is not a basic", field, xtype.Underlying())
	}
	size, ok := basicWireSizes[btype.Name()]
	if !ok {
		return fmt.Errorf("collectBasicField: field=(%v): basic kind %s is not fixed layout; use an explicitly sized type", field, btype.Name())
	}

	fdata.BasicKind = btype.Name()
	fdata.TypeName = btype.Name()
	if named, ok := xtype.(interface{ Obj() *types.TypeName }); ok {
		fdata.TypeName = named.Obj().Name()
		if pkg := named.Obj().Pkg(); pkg != nil {
			fdata.TypePkgPath = pkg.Path()
			fdata.TypePkgName = pkg.Name()
		}
	}
	fdata.WireSize = arrayTotal(fdata.ArrayLens) * size
	return nil
}

func (c *Checker) collectStructField(field *types.Var, fdata *FieldData, xtype types.Type) error {
	named, ok := xtype.(interface{ Obj() *types.TypeName })
	if !ok {
		return fmt.Errorf("collectStructField: field=(%v): anonymous struct types are not supported", field)
	}
	if err := c.Check(named.Obj()); err != nil {
		return err
	}

	fdata.TypeName = named.Obj().Name()
	if pkg := named.Obj().Pkg(); pkg != nil {
		fdata.TypePkgPath = pkg.Path()
		fdata.TypePkgName = pkg.Name()
	}
	fdata.WireSize = arrayTotal(fdata.ArrayLens) * c.typeDataMap[fdata.TypeName].WireSize
	return nil
}

func (c *Checker) collectArrayField(field *types.Var, fdata *FieldData, xtype types.Type) error {
	array, ok := xtype.Underlying().(*types.Array)
	if !ok {
		return fmt.Errorf("collectArrayField: field (%v) is not an array type", field)
	}

	etype := array.Elem()
	switch {
	case isBasicType(etype):
		fdata.ArrayLens = append(fdata.ArrayLens, array.Len())
		return c.collectBasicField(field, fdata, etype)
	case isStructType(etype):
		fdata.ArrayLens = append(fdata.ArrayLens, array.Len())
		return c.collectStructField(field, fdata, etype)
	case isArrayType(etype):
		fdata.ArrayLens = append(fdata.ArrayLens, array.Len())
		return c.collectArrayField(field, fdata, etype)
	}

	return fmt.Errorf("collectArrayField: field=(%v): element type %v (underlying=%T) is not fixed layout", field, etype, etype.Underlying())
}

func arrayTotal(lens []int64) int64 {
	total := int64(1)
	for _, n := range lens {
		total *= n
	}
	return total
}

func isBasicType(v types.Type) bool {
	_, ok := v.Underlying().(*types.Basic)
	return ok
}

func isStructType(v types.Type) bool {
	_, ok := v.Underlying().(*types.Struct)
	return ok
}

func isArrayType(v types.Type) bool {
	_, ok := v.Underlying().(*types.Array)
	return ok
}
