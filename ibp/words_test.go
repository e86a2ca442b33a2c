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

func TestAppendWordsLittleEndian(t *testing.T) {
	got := AppendWords([]byte{0xaa}, []int32{0x04030201, -1})
	want := []byte{0xaa, 0x01, 0x02, 0x03, 0x04, 0xff, 0xff, 0xff, 0xff}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AppendWords (-want +got):\n%s", diff)
	}
}

func TestReadWords(t *testing.T) {
	src := []byte{0x01, 0x02, 0x03, 0x04, 0xff, 0xff, 0xff, 0xff, 0x07}

	tests := []struct {
		name   string
		dstLen int
		want   []int32
	}{
		{"trailing byte ignored", 4, []int32{0x04030201, -1}},
		{"short dst", 1, []int32{0x04030201}},
		{"empty dst", 0, []int32{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]int32, tt.dstLen)
			n := ReadWords(src, dst)
			if diff := cmp.Diff(tt.want, dst[:n]); diff != "" {
				t.Errorf("ReadWords (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWordsRoundTripThroughCompress(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	seq := sortedSeq(rng, 7*RunLength, 0, 40)

	packed := make([]int32, EstimateLength(seq, 0))
	packed = packed[:Compress(seq, packed, 0)]
	raw := AppendWords(nil, packed)
	if len(raw) != 4*len(packed) {
		t.Fatalf("AppendWords produced %d bytes, want %d", len(raw), 4*len(packed))
	}

	words := make([]int32, len(raw)/4)
	ReadWords(raw, words)
	got := make([]int32, len(seq))
	Decompress(words, got, 0)
	if diff := cmp.Diff(seq, got); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}
