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

// EstimateLength returns an upper bound on the number of words Compress
// writes for in and init, without packing anything. It looks at three
// values per region instead of every delta, so it runs in constant time.
//
// The bound holds whenever every delta is non-negative (in is sorted and
// in[0] >= init). With negative deltas use MaxCompressedLength.
//
// The first run is bounded by the bit length of (in[0]-init) | (in[31]-in[0])
// and the remaining values by the bit length of in[n-1]-in[31]. No single
// delta can exceed the span of the region it lies in. Each region adds one
// word to absorb integer division, and one header word is added per block.
func EstimateLength(in []int32, init int32) int {
	n := len(in)
	if n == 0 {
		return 0
	}

	first := min(n, RunLength)
	b1 := bits.Len32(uint32(in[0]-init) | uint32(in[first-1]-in[0]))
	est := b1*first/RunLength + 1

	if n > RunLength {
		b2 := bits.Len32(uint32(in[n-1] - in[RunLength-1]))
		est += b2*(n-RunLength)/RunLength + 1
	}
	return est + headerWords(n)
}

// MaxCompressedLength returns the largest number of words Compress can write
// for n values: every run stored verbatim plus one header per group.
func MaxCompressedLength(n int) int {
	return n + headerWords(n)
}

// headerWords is the number of header words in a stream of n values.
func headerWords(n int) int {
	return (n + BlockLength - 1) / BlockLength
}
