// Copyright 2025 go-intpack Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"
)

func TestGeneratorEndToEnd(t *testing.T) {
	tmpDir := t.TempDir()

	gen := &Generator{
		OutputDir:  tmpDir,
		PackageOut: "kernels",
		MinWidth:   3,
		MaxWidth:   9,
	}
	if err := gen.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	path := filepath.Join(tmpDir, defaultOutputName)
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		t.Fatalf("Generated file does not parse: %v", err)
	}

	if file.Name.Name != "kernels" {
		t.Errorf("Package name = %q, want %q", file.Name.Name, "kernels")
	}
	if !ast.IsGenerated(file) {
		t.Error("Generated file is missing the DO NOT EDIT header")
	}

	funcs := map[string]*ast.FuncDecl{}
	for _, decl := range file.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok {
			funcs[fn.Name.Name] = fn
		}
	}
	if len(funcs) != 14 {
		t.Errorf("Got %d functions, want 14", len(funcs))
	}

	for _, name := range []string{"pack3", "unpack3", "pack9", "unpack9"} {
		if funcs[name] == nil {
			t.Errorf("Missing function %s", name)
		}
	}
	if funcs["pack2"] != nil || funcs["pack10"] != nil {
		t.Error("Generated kernels outside the requested range")
	}

	// Bounds hints plus one assignment per output word or value.
	if got := len(funcs["pack7"].Body.List); got != 2+7 {
		t.Errorf("pack7 has %d statements, want %d", got, 2+7)
	}
	if got := len(funcs["unpack7"].Body.List); got != 2+runLength {
		t.Errorf("unpack7 has %d statements, want %d", got, 2+runLength)
	}
}

func TestGeneratorCustomOutputName(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "nested")
	gen := &Generator{
		OutputDir:  tmpDir,
		OutputName: "k.gen.go",
		PackageOut: "p",
		MinWidth:   1,
		MaxWidth:   1,
	}
	if err := gen.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "k.gen.go")); err != nil {
		t.Errorf("Output file not written: %v", err)
	}
}

func TestGeneratorInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		gen  Generator
	}{
		{"zero min", Generator{PackageOut: "p", MinWidth: 0, MaxWidth: 5}},
		{"max 32", Generator{PackageOut: "p", MinWidth: 1, MaxWidth: 32}},
		{"inverted", Generator{PackageOut: "p", MinWidth: 9, MaxWidth: 3}},
		{"no package", Generator{MinWidth: 1, MaxWidth: 31}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.gen.OutputDir = t.TempDir()
			if err := tt.gen.Run(); err == nil {
				t.Error("Run succeeded, want error")
			}
		})
	}
}

// The checked-in kernels must match what the generator produces today.
func TestCheckedInKernelsUpToDate(t *testing.T) {
	checkedIn, err := os.ReadFile(filepath.Join("..", "..", "ibp", defaultOutputName))
	if err != nil {
		t.Fatalf("Failed to read checked-in kernels: %v", err)
	}
	want, err := format.Source(checkedIn)
	if err != nil {
		t.Fatalf("Checked-in kernels do not format: %v", err)
	}

	gen := &Generator{PackageOut: "ibp", OutputName: defaultOutputName, MinWidth: 1, MaxWidth: wordBits - 1}
	got, err := gen.Source()
	if err != nil {
		t.Fatalf("Source failed: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Error("ibp/pack_specialized.gen.go is stale; run go generate ./ibp")
	}
}

func TestUnpackExpr(t *testing.T) {
	tests := []struct {
		width, i int
		want     string
	}{
		{5, 0, "uint32(in[0])&31"},
		{5, 1, "uint32(in[0])>>5&31"},
		{5, 6, "uint32(in[0])>>30|uint32(in[1])<<2&31"},
		{8, 3, "uint32(in[0])>>24"},
		{16, 1, "uint32(in[0])>>16"},
	}
	for _, tt := range tests {
		if got := unpackExpr(tt.width, tt.i); got != tt.want {
			t.Errorf("unpackExpr(%d, %d) = %q, want %q", tt.width, tt.i, got, tt.want)
		}
	}
}

func TestPackTerms(t *testing.T) {
	// Width 5: word 0 holds values 0..5 and the low 2 bits of value 6.
	terms := packTerms(5, 0)
	if len(terms) != 7 {
		t.Fatalf("packTerms(5, 0) has %d terms, want 7: %v", len(terms), terms)
	}
	if terms[0] != "uint32(in[0]-init)" {
		t.Errorf("first term = %q", terms[0])
	}
	if want := "uint32(in[6]-in[5])<<30"; terms[6] != want {
		t.Errorf("last term = %q, want %q", terms[6], want)
	}

	// Word 1 starts with the spilled high bits of value 6.
	if got, want := packTerms(5, 1)[0], "uint32(in[6]-in[5])>>2"; got != want {
		t.Errorf("packTerms(5, 1)[0] = %q, want %q", got, want)
	}
}
