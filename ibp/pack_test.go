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
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// randomRun returns a run whose deltas against init all fit in width bits
// and whose OR uses the top bit, so DeltaBits reports exactly width.
func randomRun(rng *rand.Rand, init int32, width int) []int32 {
	run := make([]int32, RunLength)
	if width == 0 {
		for i := range run {
			run[i] = init
		}
		return run
	}
	if width == 32 {
		for i := range run {
			run[i] = int32(rng.Uint32())
		}
		// Guarantee one negative delta.
		run[RunLength/2] = run[RunLength/2-1] - 1
		return run
	}
	limit := uint32(1) << width
	top := rng.Intn(RunLength)
	v := init
	for i := range run {
		d := rng.Uint32() % limit
		if i == top {
			d |= limit >> 1
		}
		v += int32(d)
		run[i] = v
	}
	return run
}

// expectPanic runs fn and fails unless it panics with an error wrapping target.
func expectPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic wrapping %v", target)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("panic = %v, want error wrapping %v", r, target)
		}
	}()
	fn()
}

func TestPackUnpackAllWidths(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for width := 0; width <= 32; width++ {
		for trial := range 20 {
			init := int32(rng.Intn(1 << 20))
			if trial%4 == 0 {
				init = -init
			}
			run := randomRun(rng, init, width)
			if got := DeltaBits(init, run); got != width {
				t.Fatalf("width %d: DeltaBits() = %d on generated run", width, got)
			}

			packed := make([]int32, width)
			pack(init, run, packed, width)

			unpacked := make([]int32, RunLength)
			unpack(init, packed, unpacked, width)
			if diff := cmp.Diff(run, unpacked); diff != "" {
				t.Fatalf("width %d trial %d: round trip mismatch (-want +got):\n%s", width, trial, diff)
			}
		}
	}
}

func TestSpecializedMatchesGeneric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for width := 1; width < 32; width++ {
		if packers[width] == nil || unpackers[width] == nil {
			t.Fatalf("width %d: missing specialized kernel", width)
		}
		for trial := range 50 {
			init := int32(rng.Int31n(1 << 24))
			run := randomRun(rng, init, width)

			specialized := make([]int32, width)
			packers[width](init, run, specialized)
			generic := make([]int32, width)
			packGeneric(init, run, generic, width)
			if diff := cmp.Diff(generic, specialized); diff != "" {
				t.Fatalf("width %d trial %d: packed words differ (-generic +specialized):\n%s", width, trial, diff)
			}

			// Unpack arbitrary words too: every bit pattern is a valid payload.
			words := make([]int32, width)
			for i := range words {
				words[i] = int32(rng.Uint32())
			}
			fromSpecialized := make([]int32, RunLength)
			unpackers[width](init, words, fromSpecialized)
			fromGeneric := make([]int32, RunLength)
			unpackGeneric(init, words, fromGeneric, width)
			if diff := cmp.Diff(fromGeneric, fromSpecialized); diff != "" {
				t.Fatalf("width %d trial %d: unpacked values differ (-generic +specialized):\n%s", width, trial, diff)
			}
		}
	}
}

func TestPackBitLayout(t *testing.T) {
	// Deltas 1, 2, 3, ... in 5 bits: value i sits at bits [5i, 5i+5).
	init := int32(1000)
	run := make([]int32, RunLength)
	v := init
	for i := range run {
		v += int32(i%31 + 1)
		run[i] = v
	}

	packed := make([]int32, 5)
	pack(init, run, packed, 5)

	var want [5]uint32
	for i := range RunLength {
		d := uint64(i%31 + 1)
		bit := i * 5
		want[bit/32] |= uint32(d << (bit % 32))
		if bit%32+5 > 32 {
			want[bit/32+1] |= uint32(d >> (32 - bit%32))
		}
	}
	for k := range want {
		if uint32(packed[k]) != want[k] {
			t.Errorf("word %d = %#08x, want %#08x", k, uint32(packed[k]), want[k])
		}
	}
}

func TestUnpackWidthZeroFillsInit(t *testing.T) {
	out := make([]int32, RunLength)
	for i := range out {
		out[i] = -1
	}
	unpack(77, nil, out, 0)
	for i, v := range out {
		if v != 77 {
			t.Fatalf("out[%d] = %d, want 77", i, v)
		}
	}
}

func TestPackWidth32IsVerbatim(t *testing.T) {
	run := runFrom(10, 5, -3, 8)
	packed := make([]int32, RunLength)
	pack(123, run, packed, 32)
	if diff := cmp.Diff(run, packed); diff != "" {
		t.Errorf("width 32 payload is not the raw run (-want +got):\n%s", diff)
	}
}

func TestUnsupportedBitWidth(t *testing.T) {
	run := make([]int32, RunLength)
	buf := make([]int32, 64)

	for _, width := range []int{-1, 33, 255} {
		expectPanic(t, ErrUnsupportedBitWidth, func() { pack(0, run, buf, width) })
		expectPanic(t, ErrUnsupportedBitWidth, func() { unpack(0, buf, run, width) })
		expectPanic(t, ErrUnsupportedBitWidth, func() { packGeneric(0, run, buf, width) })
		expectPanic(t, ErrUnsupportedBitWidth, func() { unpackGeneric(0, buf, run, width) })
	}
}

func TestDeltaOverflowRoundTrips(t *testing.T) {
	// Kernels work on two's complement bit patterns, so a delta that only
	// fits because of wraparound still round trips.
	init := int32(2147483600) // near MaxInt32
	run := make([]int32, RunLength)
	v := init
	for i := range run {
		v += 3 // overflows past MaxInt32 partway through
		run[i] = v
	}
	if got := DeltaBits(init, run); got != 2 {
		t.Fatalf("DeltaBits() = %d, want 2", got)
	}

	packed := make([]int32, 2)
	packGeneric(init, run, packed, 2)
	out := make([]int32, RunLength)
	unpackGeneric(init, packed, out, 2)
	if diff := cmp.Diff(run, out); diff != "" {
		t.Errorf("round trip across overflow (-want +got):\n%s", diff)
	}
}
