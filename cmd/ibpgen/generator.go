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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/imports"
)

const (
	// runLength is the number of values every kernel handles.
	runLength = 32

	// wordBits is the size of one packed word.
	wordBits = 32

	defaultOutputName = "pack_specialized.gen.go"
)

// Generator emits the specialized kernels for a range of bit widths.
type Generator struct {
	OutputDir  string // Output directory
	OutputName string // Output file name (defaults to pack_specialized.gen.go)
	PackageOut string // Output package name
	MinWidth   int    // Smallest width to emit, at least 1
	MaxWidth   int    // Largest width to emit, at most 31
}

// Run validates the configuration, renders the source and writes it.
func (g *Generator) Run() error {
	if g.MinWidth < 1 || g.MaxWidth >= wordBits || g.MinWidth > g.MaxWidth {
		return fmt.Errorf("invalid width range [%d, %d], want a subrange of [1, %d]", g.MinWidth, g.MaxWidth, wordBits-1)
	}
	if g.PackageOut == "" {
		return fmt.Errorf("output package name is required")
	}
	if g.OutputName == "" {
		g.OutputName = defaultOutputName
	}

	src, err := g.Source()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(g.OutputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	filename := filepath.Join(g.OutputDir, g.OutputName)
	if err := os.WriteFile(filename, src, 0644); err != nil {
		return fmt.Errorf("write kernels: %w", err)
	}
	return nil
}

// Source renders the formatted kernel file.
func (g *Generator) Source() ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by ibpgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", g.PackageOut)

	g.emitTables(&buf)
	for w := g.MinWidth; w <= g.MaxWidth; w++ {
		emitPack(&buf, w)
		emitUnpack(&buf, w)
	}

	formatted, err := imports.Process(g.OutputName, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format kernels: %w", err)
	}
	return formatted, nil
}

func (g *Generator) emitTables(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "// packers holds the specialized pack kernels indexed by bit width.\n")
	fmt.Fprintf(buf, "var packers = [%d]func(init int32, in, out []int32){\n", wordBits)
	for w := g.MinWidth; w <= g.MaxWidth; w++ {
		fmt.Fprintf(buf, "\t%d: pack%d,\n", w, w)
	}
	fmt.Fprintf(buf, "}\n\n")

	fmt.Fprintf(buf, "// unpackers holds the specialized unpack kernels indexed by bit width.\n")
	fmt.Fprintf(buf, "var unpackers = [%d]func(init int32, in, out []int32){\n", wordBits)
	for w := g.MinWidth; w <= g.MaxWidth; w++ {
		fmt.Fprintf(buf, "\t%d: unpack%d,\n", w, w)
	}
	fmt.Fprintf(buf, "}\n")
}

// deltaExpr is the delta of value i against its predecessor.
func deltaExpr(i int) string {
	if i == 0 {
		return "uint32(in[0]-init)"
	}
	return fmt.Sprintf("uint32(in[%d]-in[%d])", i, i-1)
}

// packTerms lists the shifted deltas that land in output word k.
func packTerms(width, k int) []string {
	lo, hi := k*wordBits, (k+1)*wordBits
	var terms []string
	for i := range runLength {
		start := i * width
		end := start + width
		switch {
		case start >= lo && start < hi:
			if start == lo {
				terms = append(terms, deltaExpr(i))
			} else {
				terms = append(terms, fmt.Sprintf("%s<<%d", deltaExpr(i), start-lo))
			}
		case start < lo && end > lo:
			// High bits of a value that started in the previous word.
			terms = append(terms, fmt.Sprintf("%s>>%d", deltaExpr(i), lo-start))
		}
	}
	return terms
}

func emitPack(buf *bytes.Buffer, width int) {
	fmt.Fprintf(buf, "\nfunc pack%d(init int32, in, out []int32) {\n", width)
	fmt.Fprintf(buf, "\t_ = in[%d]\n", runLength-1)
	fmt.Fprintf(buf, "\t_ = out[%d]\n", width-1)
	for k := range width {
		fmt.Fprintf(buf, "\tout[%d] = int32(%s)\n", k, strings.Join(packTerms(width, k), " | "))
	}
	fmt.Fprintf(buf, "}\n")
}

// unpackExpr extracts value i of a width-bit run as a uint32 expression.
func unpackExpr(width, i int) string {
	mask := uint64(1)<<width - 1
	start := i * width
	k, s := start/wordBits, start%wordBits
	word := fmt.Sprintf("uint32(in[%d])", k)

	switch {
	case s+width > wordBits:
		next := fmt.Sprintf("uint32(in[%d])", k+1)
		return fmt.Sprintf("%s>>%d|%s<<%d&%d", word, s, next, wordBits-s, mask)
	case s+width == wordBits:
		return fmt.Sprintf("%s>>%d", word, s)
	case s == 0:
		return fmt.Sprintf("%s&%d", word, mask)
	default:
		return fmt.Sprintf("%s>>%d&%d", word, s, mask)
	}
}

func emitUnpack(buf *bytes.Buffer, width int) {
	fmt.Fprintf(buf, "\nfunc unpack%d(init int32, in, out []int32) {\n", width)
	fmt.Fprintf(buf, "\t_ = in[%d]\n", width-1)
	fmt.Fprintf(buf, "\t_ = out[%d]\n", runLength-1)
	for i := range runLength {
		prev := "init"
		if i > 0 {
			prev = fmt.Sprintf("out[%d]", i-1)
		}
		fmt.Fprintf(buf, "\tout[%d] = int32(%s) + %s\n", i, unpackExpr(width, i), prev)
	}
	fmt.Fprintf(buf, "}\n")
}
