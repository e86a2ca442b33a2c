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

package varbyte

import (
	"bufio"
	"bytes"
	"io"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendVarEncoding(t *testing.T) {
	tests := []struct {
		name     string
		input    int32
		expected []byte
	}{
		{"zero", 0, []byte{0x00}},
		{"one byte max", 127, []byte{0x7f}},
		{"two bytes", 128, []byte{0x80, 0x01}},
		{"300", 300, []byte{0xac, 0x02}},
		{"three bytes", 1 << 14, []byte{0x80, 0x80, 0x01}},
		{"four bytes max", 1<<28 - 1, []byte{0xff, 0xff, 0xff, 0x7f}},
		{"five bytes", 1 << 28, []byte{0x80, 0x80, 0x80, 0x80, 0x01}},
		{"max int32", math.MaxInt32, []byte{0xff, 0xff, 0xff, 0xff, 0x07}},
		{"minus one", -1, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
		{"min int32", math.MinInt32, []byte{0x80, 0x80, 0x80, 0x80, 0x08}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AppendVar(nil, tt.input)
			require.Equal(t, tt.expected, got)
			assert.Equal(t, len(tt.expected), VarLen(tt.input))

			v, n := Var(got)
			assert.Equal(t, tt.input, v)
			assert.Equal(t, len(got), n)

			var buf bytes.Buffer
			require.NoError(t, WriteVar(&buf, tt.input))
			assert.Equal(t, tt.expected, buf.Bytes())
			r, err := ReadVar(&buf)
			require.NoError(t, err)
			assert.Equal(t, tt.input, r)
		})
	}
}

func TestVarTruncated(t *testing.T) {
	for _, src := range [][]byte{nil, {0x80}, {0xff, 0xff, 0xff, 0xff}} {
		v, n := Var(src)
		assert.Zero(t, v, "Var(%x)", src)
		assert.Zero(t, n, "Var(%x)", src)
	}
}

func TestVarFifthByteIgnoresHighBits(t *testing.T) {
	// The fifth byte is final even with its flag set.
	src := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0x01}
	v, n := Var(src)
	assert.Equal(t, int32(-1), v)
	assert.Equal(t, 5, n)
}

func TestReadVarErrors(t *testing.T) {
	_, err := ReadVar(bytes.NewReader(nil))
	assert.ErrorIs(t, err, io.EOF)

	_, err = ReadVar(bytes.NewReader([]byte{0x80, 0x80}))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReadVarSequence(t *testing.T) {
	values := []int32{3, 0, -7, 1 << 20, math.MinInt32}
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	for _, v := range values {
		require.NoError(t, WriteVar(w, v))
	}
	require.NoError(t, w.Flush())

	r := bufio.NewReader(&buf)
	for i, want := range values {
		got, err := ReadVar(r)
		require.NoError(t, err, "value %d", i)
		assert.Equal(t, want, got, "value %d", i)
	}
	_, err := ReadVar(r)
	assert.Equal(t, io.EOF, err)
}

func TestCompressDeltaEncoding(t *testing.T) {
	// Deltas 5, 1, 125, -11.
	in := []int32{5, 6, 131, 120}
	want := []byte{0x05, 0x01, 0x7d, 0xf5, 0xff, 0xff, 0xff, 0x0f}

	got := Compress([]byte{0xee}, in)
	assert.Equal(t, append([]byte{0xee}, want...), got)
	assert.Equal(t, len(want), CompressedLen(in))
}

func TestCompressRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name string
		gen  func(i int) int32
	}{
		{"sorted small gaps", func(i int) int32 { return int32(3 * i) }},
		{"constant", func(int) int32 { return 42 }},
		{"random", func(int) int32 { return int32(rng.Uint32()) }},
		{"alternating sign", func(i int) int32 {
			if i%2 == 0 {
				return math.MaxInt32
			}
			return math.MinInt32
		}},
	}

	for _, tt := range tests {
		for _, n := range []int{0, 1, 31, 100, 1000} {
			in := make([]int32, n)
			for i := range in {
				in[i] = tt.gen(i)
			}

			buf := Compress(nil, in)
			assert.Len(t, buf, CompressedLen(in), "%s/%d", tt.name, n)
			assert.LessOrEqual(t, len(buf), MaxCompressedLen(n), "%s/%d", tt.name, n)

			out := make([]int32, n)
			decoded, consumed := Decompress(buf, out)
			assert.Equal(t, n, decoded, "%s/%d", tt.name, n)
			assert.Equal(t, len(buf), consumed, "%s/%d", tt.name, n)
			assert.Equal(t, in, out, "%s/%d", tt.name, n)
		}
	}
}

func TestDecompressStopsEarly(t *testing.T) {
	buf := Compress(nil, []int32{1, 1000, 2000})

	t.Run("short out", func(t *testing.T) {
		out := make([]int32, 2)
		decoded, consumed := Decompress(buf, out)
		assert.Equal(t, 2, decoded)
		assert.Equal(t, 3, consumed)
		assert.Equal(t, []int32{1, 1000}, out)
	})

	t.Run("truncated group", func(t *testing.T) {
		out := make([]int32, 3)
		decoded, consumed := Decompress(buf[:len(buf)-1], out)
		assert.Equal(t, 2, decoded)
		assert.Equal(t, 3, consumed)
	})
}

func TestLengthNotMultipleOf32(t *testing.T) {
	in := make([]int32, 100)
	for i := range in {
		in[i] = int32(i * i)
	}
	out := make([]int32, len(in))
	decoded, _ := Decompress(Compress(nil, in), out)
	require.Equal(t, len(in), decoded)
	assert.Equal(t, in, out)
}

func BenchmarkCompress(b *testing.B) {
	in := make([]int32, 1000)
	for i := range in {
		in[i] = int32(i * 100)
	}
	buf := make([]byte, 0, MaxCompressedLen(len(in)))

	b.SetBytes(int64(4 * len(in)))
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf = Compress(buf[:0], in)
	}
}

func BenchmarkDecompress(b *testing.B) {
	in := make([]int32, 1000)
	for i := range in {
		in[i] = int32(i * 100)
	}
	buf := Compress(nil, in)
	out := make([]int32, len(in))

	b.SetBytes(int64(4 * len(in)))
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Decompress(buf, out)
	}
}
