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

// Package varbyte provides a variable-byte delta codec for int32 sequences
// of any length.
//
// It is the fallback for sequences that package ibp cannot frame because
// their length is not a multiple of 32. Each value is stored as the
// difference from the previous raw value (starting at 0) in 1 to 5 bytes:
//   - bytes 1-4 carry 7 data bits each, least significant first, with the
//     high bit set when another byte follows
//   - byte 5, if reached, carries the remaining 4 bits and no flag
//
// Deltas are encoded as their 32-bit two's-complement pattern, so negative
// deltas always take 5 bytes but round-trip exactly.
//
// Example usage:
//
//	buf := varbyte.Compress(nil, ids)
//	out := make([]int32, len(ids))
//	decoded, consumed := varbyte.Decompress(buf, out)
//
//	// Standalone scalar such as a count, no delta coding
//	buf = varbyte.AppendVar(buf, int32(len(ids)))
//	count, n := varbyte.Var(buf[consumed:])
package varbyte

import "io"

// MaxVarLen is the longest encoding of a single value.
const MaxVarLen = 5

// Compress appends the delta encoding of in to dst and returns the extended
// slice.
func Compress(dst []byte, in []int32) []byte {
	var prev int32
	for _, v := range in {
		dst = appendUint32(dst, uint32(v-prev))
		prev = v
	}
	return dst
}

// Decompress decodes up to len(out) values from src into out.
// Returns (values decoded, bytes consumed).
//
// The function stops when:
//   - len(out) values have been decoded
//   - The end of src is reached
//   - An incomplete group is encountered
func Decompress(src []byte, out []int32) (decoded int, consumed int) {
	var prev int32
	pos := 0
	for decoded < len(out) && pos < len(src) {
		delta, n := decodeOne(src[pos:])
		if n == 0 {
			break
		}
		prev += int32(delta)
		out[decoded] = prev
		decoded++
		pos += n
	}
	return decoded, pos
}

// AppendVar appends v without delta coding and returns the extended slice.
func AppendVar(dst []byte, v int32) []byte {
	return appendUint32(dst, uint32(v))
}

// Var decodes a single value written by AppendVar or WriteVar.
// Returns (value, bytes consumed). Returns (0, 0) if src ends mid-group.
func Var(src []byte) (int32, int) {
	v, n := decodeOne(src)
	return int32(v), n
}

// WriteVar writes v to w without delta coding.
func WriteVar(w io.ByteWriter, v int32) error {
	u := uint32(v)
	for i := 0; i < MaxVarLen-1 && u >= 0x80; i++ {
		if err := w.WriteByte(byte(u) | 0x80); err != nil {
			return err
		}
		u >>= 7
	}
	return w.WriteByte(byte(u))
}

// ReadVar reads a single value written by AppendVar or WriteVar from r.
// It returns io.EOF if r is empty and io.ErrUnexpectedEOF if r ends
// mid-group.
func ReadVar(r io.ByteReader) (int32, error) {
	var x uint32
	var s uint
	for i := range MaxVarLen {
		b, err := r.ReadByte()
		if err != nil {
			if i > 0 && err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return 0, err
		}
		if b < 0x80 || i == MaxVarLen-1 {
			return int32(x | uint32(b)<<s), nil
		}
		x |= uint32(b&0x7f) << s
		s += 7
	}
	panic("unreachable")
}

// VarLen returns the number of bytes AppendVar uses for v.
func VarLen(v int32) int {
	return uintLen(uint32(v))
}

// CompressedLen returns len(Compress(nil, in)) without encoding.
func CompressedLen(in []int32) int {
	var prev int32
	n := 0
	for _, v := range in {
		n += uintLen(uint32(v - prev))
		prev = v
	}
	return n
}

// MaxCompressedLen returns the largest number of bytes Compress can write for
// n values.
func MaxCompressedLen(n int) int {
	return n * MaxVarLen
}

func appendUint32(dst []byte, u uint32) []byte {
	for i := 0; i < MaxVarLen-1 && u >= 0x80; i++ {
		dst = append(dst, byte(u)|0x80)
		u >>= 7
	}
	return append(dst, byte(u))
}

func uintLen(u uint32) int {
	switch {
	case u < 1<<7:
		return 1
	case u < 1<<14:
		return 2
	case u < 1<<21:
		return 3
	case u < 1<<28:
		return 4
	default:
		return 5
	}
}

// decodeOne decodes a single group from src.
// Returns (value, bytes consumed). Returns (0, 0) if the group is incomplete.
//
// Up to four bytes are read while the continuation flag is set. A fifth
// byte is read unconditionally and only its low 4 bits are kept.
func decodeOne(src []byte) (uint32, int) {
	var x uint32
	var s uint

	for i, b := range src {
		if b < 0x80 || i == MaxVarLen-1 {
			return x | uint32(b)<<s, i + 1
		}
		x |= uint32(b&0x7f) << s
		s += 7
	}
	return 0, 0
}
