// Copyright (c) 2025 Visvasity LLC

// Command fixcap prints the wire layout metrics for container element types
// defined in a Go package. The JSON report is compared against the metrics
// reported by a counterpart implementation to prove that both sides agree on
// the byte layout of every container crossing the process boundary.
//
// For example,
//
//	fixcap -inpkg ./payloads -capacity 10 SensorSample Region
//
// prints, for each named type, its packed field layout and the metrics of a
// 10-element vector of it, plus the metrics of a 10-code-unit string.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"go/types"
	"log"
	"os"

	"golang.org/x/tools/go/packages"

	"github.com/visvasity/fixcap/layout"
	"github.com/visvasity/fixcap/typecheck"
)

var (
	inPkg    = flag.String("inpkg", ".", "package path/name for the element type definitions")
	capacity = flag.Int("capacity", 10, "container capacity used for the reported metrics")
)

// Usage is a replacement usage function for the flags package.
func Usage() {
	fmt.Fprintf(os.Stderr, "Usage of fixcap:\n")
	fmt.Fprintf(os.Stderr, "\tfixcap -inpkg '...' -capacity N types... # Must be a single package\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}

type typeReport struct {
	Type   *typecheck.TypeData  `json:"type"`
	Vector layout.VectorMetrics `json:"vector_metrics"`
}

type report struct {
	Package  string               `json:"package"`
	Capacity int                  `json:"capacity"`
	String   layout.StringMetrics `json:"string_metrics"`
	Types    []*typeReport        `json:"types"`
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("fixcap: ")

	flag.Usage = Usage
	flag.Parse()
	if len(flag.Args()) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if *capacity <= 0 {
		log.Fatalf("capacity must be positive")
	}

	pkg, err := loadPackage(*inPkg)
	if err != nil {
		log.Fatal(err)
	}

	r := &report{
		Package:  pkg.PkgPath,
		Capacity: *capacity,
		String:   layout.StringWireMetrics(*capacity),
	}

	checker := typecheck.New()
	scope := pkg.Types.Scope()
	for _, name := range flag.Args() {
		object := scope.Lookup(name)
		if object == nil {
			log.Fatalf("type %s not found in package %s", name, pkg.PkgPath)
		}
		typename, ok := object.(*types.TypeName)
		if !ok {
			log.Fatalf("%s is not a type name", name)
		}
		if err := checker.Check(typename); err != nil {
			log.Fatal(err)
		}

		tdata := checker.TypeDataMap()[name]
		sm := layout.StorageWireMetrics(int(tdata.WireSize), 8, *capacity)
		r.Types = append(r.Types, &typeReport{
			Type: tdata,
			Vector: layout.VectorMetrics{
				VectorSize:      sm.StorageSize,
				VectorAlignment: sm.StorageAlignment,
				ElementSize:     int(tdata.WireSize),
				Capacity:        *capacity,
				ElementFields:   fieldMetrics(tdata),
				Storage:         sm,
			},
		})
	}

	js, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s\n", js)
}

func fieldMetrics(tdata *typecheck.TypeData) []layout.FieldMetrics {
	var ms []layout.FieldMetrics
	for _, f := range tdata.Fields {
		ms = append(ms, layout.FieldMetrics{
			OffsetBytes: int(f.Offset),
			SizeBytes:   int(f.WireSize),
			IsUnsigned:  isUnsignedKind(f.BasicKind),
		})
	}
	return ms
}

func isUnsignedKind(kind string) bool {
	switch kind {
	case "uint8", "byte", "uint16", "uint32", "uint64":
		return true
	}
	return false
}

func loadPackage(pkg string) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.LoadTypes | packages.NeedTypesInfo | packages.NeedImports,
	}
	pkgs, err := packages.Load(cfg, pkg)
	if err != nil {
		return nil, err
	}
	return pkgs[0], nil
}
