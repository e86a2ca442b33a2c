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
	"math"
	"math/rand"
	"testing"
)

func TestEstimateLengthBoundsSortedInput(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	gaps := []int{0, 1, 3, 64, 5000, 1 << 24}

	for n := 0; n <= 24*RunLength; n += RunLength {
		for _, gap := range gaps {
			init := int32(rng.Intn(100))
			seq := sortedSeq(rng, n, init, gap)
			est := EstimateLength(seq, init)
			out := make([]int32, MaxCompressedLength(n))
			if got := Compress(seq, out, init); got > est {
				t.Fatalf("n=%d gap=%d: Compress wrote %d words, EstimateLength = %d", n, gap, got, est)
			}
		}
	}
}

func TestEstimateLengthConstantInput(t *testing.T) {
	// Every run packs at width 0, so the stream is headers only.
	for _, n := range []int{32, 128, 160, 512, 1024} {
		seq := make([]int32, n)
		for i := range seq {
			seq[i] = 9
		}
		out := make([]int32, MaxCompressedLength(n))
		got := Compress(seq, out, 9)
		if want := headerWords(n); got != want {
			t.Errorf("n=%d: Compress wrote %d words, want %d", n, got, want)
		}
		if est := EstimateLength(seq, 9); est < got {
			t.Errorf("n=%d: EstimateLength = %d, below actual %d", n, est, got)
		}
	}
}

func TestEstimateLengthFullRange(t *testing.T) {
	// A span wider than MaxInt32 still estimates 32 bits per value.
	seq := make([]int32, 4*BlockLength)
	step := int32(math.MaxUint32 / uint32(len(seq)))
	v := int32(math.MinInt32)
	for i := range seq {
		seq[i] = v
		v += step
	}
	out := make([]int32, MaxCompressedLength(len(seq)))
	got := Compress(seq, out, math.MinInt32)
	if est := EstimateLength(seq, math.MinInt32); est < got {
		t.Errorf("EstimateLength = %d, below actual %d", est, got)
	}
}

func TestEstimateLengthEmpty(t *testing.T) {
	if got := EstimateLength(nil, 0); got != 0 {
		t.Errorf("EstimateLength(nil) = %d, want 0", got)
	}
}

func TestMaxCompressedLength(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{0, 0},
		{32, 33},
		{96, 97},
		{128, 129},
		{160, 162},
		{1024, 1032},
	}
	for _, tt := range tests {
		if got := MaxCompressedLength(tt.n); got != tt.want {
			t.Errorf("MaxCompressedLength(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
