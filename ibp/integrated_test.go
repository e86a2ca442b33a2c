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
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// sortedSeq returns n non-decreasing values starting above start with gaps
// in [0, maxGap].
func sortedSeq(rng *rand.Rand, n int, start int32, maxGap int) []int32 {
	seq := make([]int32, n)
	v := start
	for i := range seq {
		v += int32(rng.Intn(maxGap + 1))
		seq[i] = v
	}
	return seq
}

// roundTrip compresses seq, checks the reported sizes, and returns the
// decompressed values and the packed words.
func roundTrip(t *testing.T, seq []int32, init int32) ([]int32, []int32) {
	t.Helper()
	packed := make([]int32, MaxCompressedLength(len(seq)))
	n := Compress(seq, packed, init)
	packed = packed[:n]

	out := make([]int32, len(seq))
	consumed := Decompress(packed, out, init)
	if consumed != n {
		t.Fatalf("Decompress consumed %d words, Compress wrote %d", consumed, n)
	}
	return out, packed
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	gaps := []int{0, 1, 7, 100, 1 << 12, 1 << 20}

	for n := 0; n <= 20*RunLength; n += RunLength {
		for _, gap := range gaps {
			init := int32(rng.Intn(1000))
			seq := sortedSeq(rng, n, init, gap)
			got, _ := roundTrip(t, seq, init)
			if diff := cmp.Diff(seq, got); diff != "" {
				t.Fatalf("n=%d gap=%d: mismatch (-want +got):\n%s", n, gap, diff)
			}
		}
	}
}

func TestCompressDecompressGenericPath(t *testing.T) {
	defer setPath(CurrentPath())

	rng := rand.New(rand.NewSource(2))
	seq := sortedSeq(rng, 13*RunLength, 50, 300)

	setPath(PathSpecialized)
	_, specialized := roundTrip(t, seq, 50)

	setPath(PathGeneric)
	if CurrentName() != "generic" {
		t.Fatalf("CurrentName() = %q, want generic", CurrentName())
	}
	got, generic := roundTrip(t, seq, 50)
	if diff := cmp.Diff(seq, got); diff != "" {
		t.Fatalf("generic path mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(specialized, generic); diff != "" {
		t.Fatalf("streams differ between paths (-specialized +generic):\n%s", diff)
	}
}

func TestCompressArbitraryValues(t *testing.T) {
	// Unsorted input is legal; runs with negative deltas are stored verbatim.
	rng := rand.New(rand.NewSource(3))
	for _, n := range []int{32, 96, 128, 224, 512} {
		seq := make([]int32, n)
		for i := range seq {
			seq[i] = int32(rng.Uint32())
		}
		init := int32(rng.Uint32())
		got, packed := roundTrip(t, seq, init)
		if diff := cmp.Diff(seq, got); diff != "" {
			t.Fatalf("n=%d: mismatch (-want +got):\n%s", n, diff)
		}
		if len(packed) > MaxCompressedLength(n) {
			t.Errorf("n=%d: wrote %d words, MaxCompressedLength = %d", n, len(packed), MaxCompressedLength(n))
		}
	}
}

func TestCompressConstantRun(t *testing.T) {
	seq := make([]int32, 32)
	for i := range seq {
		seq[i] = 5
	}

	got, packed := roundTrip(t, seq, 5)
	if diff := cmp.Diff([]int32{0}, packed); diff != "" {
		t.Errorf("packed stream (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(seq, got); diff != "" {
		t.Errorf("decompressed (-want +got):\n%s", diff)
	}
}

func TestCompressUnitSteps(t *testing.T) {
	seq := make([]int32, 32)
	for i := range seq {
		seq[i] = int32(i)
	}

	got, packed := roundTrip(t, seq, 0)
	// Header: one run of width 1. Payload: a zero first delta, then 31 ones.
	want := []int32{1, -2}
	if diff := cmp.Diff(want, packed); diff != "" {
		t.Errorf("packed stream (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(seq, got); diff != "" {
		t.Errorf("decompressed (-want +got):\n%s", diff)
	}
}

func TestCompressVerbatimFallback(t *testing.T) {
	seq := make([]int32, 32)
	for i := range seq {
		seq[i] = int32(10 * i)
	}
	seq[20] = 3 // one negative delta

	got, packed := roundTrip(t, seq, 0)
	if packed[0] != 32 {
		t.Fatalf("header = %d, want 32", packed[0])
	}
	if diff := cmp.Diff(seq, packed[1:]); diff != "" {
		t.Errorf("verbatim payload (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(seq, got); diff != "" {
		t.Errorf("decompressed (-want +got):\n%s", diff)
	}
}

func TestCompressHeaderLayout(t *testing.T) {
	// Runs with known widths: 0, 1, 2, 3 in a full block, then 4, 5, 6 in a
	// 96-value tail.
	widths := []int{0, 1, 2, 3, 4, 5, 6}
	var seq []int32
	v := int32(0)
	for _, w := range widths {
		for range RunLength {
			if w > 0 {
				v += int32(1) << (w - 1)
			}
			seq = append(seq, v)
		}
	}

	_, packed := roundTrip(t, seq, 0)

	if got, want := uint32(packed[0]), uint32(0<<24|1<<16|2<<8|3); got != want {
		t.Errorf("block header = %#08x, want %#08x", got, want)
	}
	tail := 1 + 0 + 1 + 2 + 3
	if got, want := uint32(packed[tail]), uint32(4<<16|5<<8|6); got != want {
		t.Errorf("tail header = %#08x, want %#08x", got, want)
	}
	if want := 2 + 1 + 2 + 3 + 4 + 5 + 6; len(packed) != want {
		t.Errorf("stream length = %d, want %d", len(packed), want)
	}
}

func TestTailHeaders(t *testing.T) {
	tests := []struct {
		name       string
		n          int
		wantHeader uint32
	}{
		{"tail 32", 32, 1},
		{"tail 64", 64, 1<<8 | 1},
		{"tail 96", 96, 1<<16 | 1<<8 | 1},
		{"full block", 128, 1<<24 | 1<<16 | 1<<8 | 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := make([]int32, tt.n)
			for i := range seq {
				seq[i] = int32(i + 1)
			}
			_, packed := roundTrip(t, seq, 0)
			if uint32(packed[0]) != tt.wantHeader {
				t.Errorf("header = %#08x, want %#08x", uint32(packed[0]), tt.wantHeader)
			}
			if want := 1 + tt.n/RunLength; len(packed) != want {
				t.Errorf("stream length = %d, want %d", len(packed), want)
			}
		})
	}
}

func TestContextCarriesAcrossRuns(t *testing.T) {
	// Every run starts 1 above the previous run's last value, so every run
	// packs at width 1 only if the first delta uses the carried value.
	seq := make([]int32, 5*BlockLength+3*RunLength)
	for i := range seq {
		seq[i] = int32(1_000_000 + i)
	}

	_, packed := roundTrip(t, seq, 999_999)
	if want := 6 + len(seq)/RunLength; len(packed) != want {
		t.Errorf("stream length = %d, want %d", len(packed), want)
	}
}

func TestCompressEmpty(t *testing.T) {
	if n := Compress(nil, nil, 3); n != 0 {
		t.Errorf("Compress(nil) = %d, want 0", n)
	}
	if n := Decompress(nil, nil, 3); n != 0 {
		t.Errorf("Decompress(nil) = %d, want 0", n)
	}
}

func TestInvalidRemainder(t *testing.T) {
	for _, n := range []int{1, 31, 33, 100, 127, 129, 130} {
		seq := make([]int32, n)
		out := make([]int32, MaxCompressedLength(n)+RunLength)
		expectPanic(t, ErrInvalidRemainder, func() { Compress(seq, out, 0) })
		expectPanic(t, ErrInvalidRemainder, func() { Decompress(out, seq, 0) })
	}
}

func TestDecompressCorruptWidthPanics(t *testing.T) {
	packed := []int32{40} // single run claiming 40 bits
	out := make([]int32, RunLength)
	expectPanic(t, ErrUnsupportedBitWidth, func() { Decompress(packed, out, 0) })
}
