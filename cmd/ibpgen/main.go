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

// Command ibpgen generates the width-specialized delta pack/unpack kernels
// used by package ibp.
//
// Usage:
//
//	ibpgen -output ../ibp -pkg ibp
//
// Or via go:generate from the ibp package:
//
//	//go:generate go run ../cmd/ibpgen -output . -pkg ibp
//
// For every bit width in [-min, -max] the generator emits a packN function
// that stores 32 deltas in N words and an unpackN function that reverses it,
// plus the packers/unpackers lookup tables indexed by width. Every shift and
// mask is a constant, so each kernel is straight-line code.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputDir  = flag.String("output", ".", "Output directory")
	outputName = flag.String("name", defaultOutputName, "Output file name")
	packageOut = flag.String("pkg", "ibp", "Output package name")
	minWidth   = flag.Int("min", 1, "Smallest bit width to specialize")
	maxWidth   = flag.Int("max", 31, "Largest bit width to specialize")
)

func main() {
	flag.Parse()

	gen := &Generator{
		OutputDir:  *outputDir,
		OutputName: *outputName,
		PackageOut: *packageOut,
		MinWidth:   *minWidth,
		MaxWidth:   *maxWidth,
	}

	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated kernels for widths %d..%d\n", gen.MinWidth, gen.MaxWidth)
}
