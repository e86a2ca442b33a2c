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

// Compress packs in into out and returns the number of words written.
//
// init is the value preceding in[0]; the first delta is in[0]-init. The same
// init must be passed to Decompress.
//
// len(in) must be a multiple of 32, otherwise Compress panics with an error
// wrapping ErrInvalidRemainder. out must have room for the whole stream:
// EstimateLength is an upper bound for non-negative deltas and
// MaxCompressedLength is an upper bound for any input. Compress never grows
// out; a short buffer panics with an index out of range.
//
// Example:
//
//	seq := make([]int32, 32)
//	for i := range seq {
//		seq[i] = int32(i)
//	}
//	out := make([]int32, EstimateLength(seq, 0))
//	n := Compress(seq, out, 0) // 2: header 1, then one word of 1-bit deltas
func Compress(in, out []int32, init int32) int {
	n := len(in)
	checkRemainder(n)

	pos := 0
	i := 0
	for ; n-i > 3*RunLength; i += BlockLength {
		pos, init = compressGroup(in[i:i+BlockLength], out, pos, init)
	}
	if i < n {
		pos, _ = compressGroup(in[i:], out, pos, init)
	}
	return pos
}

// compressGroup writes the header and payload for 1 to 4 runs held in in,
// starting at out[pos]. It returns the next write position and the last raw
// value of the group, which seeds the following group.
func compressGroup(in, out []int32, pos int, init int32) (int, int32) {
	runs := len(in) / RunLength

	// All widths are needed before the header can be written.
	var widths [4]int
	var header uint32
	prev := init
	for r := range runs {
		run := in[r*RunLength:]
		widths[r] = DeltaBits(prev, run)
		header = header<<8 | uint32(widths[r])
		prev = run[RunLength-1]
	}
	out[pos] = int32(header)
	pos++

	prev = init
	for r := range runs {
		run := in[r*RunLength:]
		packRun(prev, run, out[pos:], widths[r])
		pos += widths[r]
		prev = run[RunLength-1]
	}
	return pos, prev
}

// Decompress reads a stream produced by Compress from in and reconstructs
// len(out) values into out. init must match the value given to Compress.
// It returns the number of words consumed.
//
// len(out) must be a multiple of 32, otherwise Decompress panics with an
// error wrapping ErrInvalidRemainder. Corrupted input is not detected: it
// yields wrong values, an index panic, or a panic wrapping
// ErrUnsupportedBitWidth. Use Validate to check untrusted streams first.
func Decompress(in, out []int32, init int32) int {
	n := len(out)
	checkRemainder(n)

	pos := 0
	i := 0
	for ; n-i > 3*RunLength; i += BlockLength {
		pos = decompressGroup(in, out[i:i+BlockLength], pos, init)
		init = out[i+BlockLength-1]
	}
	if i < n {
		pos = decompressGroup(in, out[i:], pos, init)
	}
	return pos
}

// decompressGroup reverses compressGroup for the runs that fill out.
func decompressGroup(in, out []int32, pos int, init int32) int {
	runs := len(out) / RunLength
	header := uint32(in[pos])
	pos++

	for r := range runs {
		width := int(header>>(8*(runs-1-r))&0xff)
		run := out[r*RunLength:]
		unpackRun(init, in[pos:], run, width)
		pos += width
		init = run[RunLength-1]
	}
	return pos
}

// checkRemainder panics unless n splits into full blocks and a 0, 32, 64 or
// 96 value tail.
func checkRemainder(n int) {
	if rem := n % BlockLength; rem%RunLength != 0 {
		panic(invalidRemainder(rem))
	}
}
