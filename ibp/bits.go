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

import "math/bits"

const (
	// RunLength is the number of values packed with a single bit width.
	RunLength = 32

	// BlockLength is the number of values sharing one header word.
	BlockLength = 4 * RunLength
)

// DeltaBits returns the bit width used to pack the run of 32 values starting
// at run[0], with init as the value preceding it.
//
// The width is the bit length of the bitwise OR of all 32 deltas
// (run[0]-init, run[1]-run[0], ..., run[31]-run[30]). For non-negative deltas
// this equals the bit length of the largest delta. A negative delta sets the
// sign bit, which yields 32 and stores the run verbatim.
//
// Returns 0 when every value equals init.
//
// Example:
//
//	run := make([]int32, 32)
//	for i := range run {
//		run[i] = int32(100 + 3*i)
//	}
//	w := DeltaBits(100, run) // 2: deltas are 0 then 3
func DeltaBits(init int32, run []int32) int {
	_ = run[RunLength-1]
	mask := uint32(run[0] - init)
	for i := 1; i < RunLength; i++ {
		mask |= uint32(run[i] - run[i-1])
	}
	return bits.Len32(mask)
}
