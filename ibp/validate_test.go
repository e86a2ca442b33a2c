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
)

func TestValidateAcceptsCompressedStreams(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for _, n := range []int{0, 32, 64, 96, 128, 160, 448, 1024} {
		seq := sortedSeq(rng, n, 0, 1000)
		out := make([]int32, MaxCompressedLength(n))
		written := Compress(seq, out, 0)

		got, err := Validate(out[:written], n)
		if err != nil {
			t.Fatalf("n=%d: Validate: %v", n, err)
		}
		if got != written {
			t.Errorf("n=%d: Validate = %d, Compress wrote %d", n, got, written)
		}
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name    string
		in      []int32
		n       int
		wantErr error
	}{
		{"negative length", nil, -32, ErrInvalidRemainder},
		{"bad remainder", []int32{0}, 100, ErrInvalidRemainder},
		{"missing header", nil, 32, ErrShortBuffer},
		{"missing second header", []int32{0}, 160, ErrShortBuffer},
		{"short payload", []int32{3, 0, 0}, 32, ErrShortBuffer},
		{"width above 32", []int32{33}, 32, ErrUnsupportedBitWidth},
		{"stray header bits", []int32{1<<8 | 1, 0}, 32, ErrUnsupportedBitWidth},
		{"block width above 32", []int32{0x00_00_21_00}, 128, ErrUnsupportedBitWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.in, tt.n)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateIgnoresTrailingWords(t *testing.T) {
	stream := []int32{0, 0, 123, 456} // width-0 block, then a width-0 tail run
	got, err := Validate(stream, 160)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got != 2 {
		t.Errorf("Validate = %d, want 2", got)
	}
}
