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

package ibp

import (
	"os"
	"strconv"
)

// Path identifies which kernel family packs and unpacks runs.
type Path int

const (
	// PathSpecialized uses the generated straight-line kernel for each width.
	PathSpecialized Path = iota

	// PathGeneric uses a single bit-cursor loop for every width.
	PathGeneric
)

// String returns a human-readable name for the path.
func (p Path) String() string {
	switch p {
	case PathSpecialized:
		return "specialized"
	case PathGeneric:
		return "generic"
	default:
		return "unknown"
	}
}

// currentPath is the kernel family selected in init.
var currentPath Path

// Dispatch function variables.
// Both kernel families produce identical bits; only speed differs.
var (
	// packRun packs 32 values of in as deltas from init into width words of out.
	packRun func(init int32, in, out []int32, width int)

	// unpackRun reverses packRun.
	unpackRun func(init int32, in, out []int32, width int)
)

func init() {
	if NoSpecializeEnv() {
		setPath(PathGeneric)
		return
	}
	setPath(PathSpecialized)
}

func setPath(p Path) {
	currentPath = p
	switch p {
	case PathGeneric:
		packRun = packGeneric
		unpackRun = unpackGeneric
	default:
		packRun = pack
		unpackRun = unpack
	}
}

// CurrentPath returns the kernel family being used.
func CurrentPath() Path {
	return currentPath
}

// CurrentName returns a human-readable name for the current kernel family.
func CurrentName() string {
	return currentPath.String()
}

// NoSpecializeEnv checks if the IBP_NO_SPECIALIZE environment variable is set.
// When set, the generic kernels are used regardless of width.
// This is useful for testing and debugging.
func NoSpecializeEnv() bool {
	val := os.Getenv("IBP_NO_SPECIALIZE")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
