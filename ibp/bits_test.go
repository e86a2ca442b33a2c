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
	"testing"
)

// runFrom builds a 32-value run starting at start with the given deltas,
// repeating the last delta when fewer than 32 are given.
func runFrom(start int32, deltas ...int32) []int32 {
	run := make([]int32, RunLength)
	v := start
	for i := range run {
		d := deltas[min(i, len(deltas)-1)]
		v += d
		run[i] = v
	}
	return run
}

func TestDeltaBits(t *testing.T) {
	tests := []struct {
		name string
		init int32
		run  []int32
		want int
	}{
		{
			name: "constant run equal to init",
			init: 5,
			run:  runFrom(5, 0),
			want: 0,
		},
		{
			name: "step of one",
			init: -1,
			run:  runFrom(-1, 1),
			want: 1,
		},
		{
			name: "first delta dominates",
			init: 0,
			run:  runFrom(0, 1000, 1),
			want: 10,
		},
		{
			name: "last delta dominates",
			init: 0,
			run:  append(runFrom(0, 1)[:31], 31+255),
			want: 8,
		},
		{
			name: "or of 4 and 3 needs 3 bits",
			init: 0,
			run:  runFrom(0, 4, 3),
			want: 3,
		},
		{
			name: "largest non-negative delta",
			init: 0,
			run:  append(make([]int32, 31), math.MaxInt32),
			want: 31,
		},
		{
			name: "negative delta forces verbatim",
			init: 100,
			run:  runFrom(100, 2, 2, 2, -1, 2),
			want: 32,
		},
		{
			name: "init above first value",
			init: 10,
			run:  runFrom(9, 0),
			want: 32,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeltaBits(tt.init, tt.run)
			if got != tt.want {
				t.Errorf("DeltaBits() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDeltaBitsIsMinimalForNonNegativeDeltas(t *testing.T) {
	for width := 0; width <= 31; width++ {
		maxDelta := int32(uint32(1)<<width - 1)
		run := runFrom(0, 0)
		// Put the widest delta in the middle of the run.
		for i := 16; i < RunLength; i++ {
			run[i] += maxDelta
		}
		got := DeltaBits(0, run)
		if got != width {
			t.Errorf("width %d: DeltaBits() = %d", width, got)
		}
	}
}

func TestDeltaBitsShortRunPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("DeltaBits on 31 values did not panic")
		}
	}()
	DeltaBits(0, make([]int32, RunLength-1))
}
