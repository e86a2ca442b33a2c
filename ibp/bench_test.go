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
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ronanh/intcomp"
)

func benchSeq(n, gap int) []int32 {
	return sortedSeq(rand.New(rand.NewSource(42)), n, 0, gap)
}

func BenchmarkCompress(b *testing.B) {
	sizes := []int{128, 1024, 16384}
	gaps := []int{1, 100, 1 << 16}

	for _, size := range sizes {
		for _, gap := range gaps {
			seq := benchSeq(size, gap)
			out := make([]int32, MaxCompressedLength(size))

			b.Run(fmt.Sprintf("%s/%d/gap%d", CurrentName(), size, gap), func(b *testing.B) {
				b.SetBytes(int64(4 * size))
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					Compress(seq, out, 0)
				}
			})
		}
	}
}

func BenchmarkDecompress(b *testing.B) {
	sizes := []int{128, 1024, 16384}
	gaps := []int{1, 100, 1 << 16}

	for _, size := range sizes {
		for _, gap := range gaps {
			seq := benchSeq(size, gap)
			packed := make([]int32, MaxCompressedLength(size))
			packed = packed[:Compress(seq, packed, 0)]
			out := make([]int32, size)

			b.Run(fmt.Sprintf("%s/%d/gap%d", CurrentName(), size, gap), func(b *testing.B) {
				b.SetBytes(int64(4 * size))
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					Decompress(packed, out, 0)
				}
			})
		}
	}
}

func BenchmarkKernels(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	for _, width := range []int{1, 7, 13, 24, 31} {
		run := randomRun(rng, 0, width)
		words := make([]int32, width)
		out := make([]int32, RunLength)

		b.Run(fmt.Sprintf("Specialized/Unpack%d", width), func(b *testing.B) {
			pack(0, run, words, width)
			for i := 0; i < b.N; i++ {
				unpack(0, words, out, width)
			}
		})

		b.Run(fmt.Sprintf("Generic/Unpack%d", width), func(b *testing.B) {
			packGeneric(0, run, words, width)
			for i := 0; i < b.N; i++ {
				unpackGeneric(0, words, out, width)
			}
		})
	}
}

// BenchmarkIntcomp measures the delta binpacking codec from
// github.com/ronanh/intcomp on the same inputs. It zigzag-encodes signed
// deltas and uses one width per 32 values like ibp, but keeps a separate
// header per block.
func BenchmarkIntcomp(b *testing.B) {
	sizes := []int{1024, 16384}
	gaps := []int{1, 100, 1 << 16}

	for _, size := range sizes {
		for _, gap := range gaps {
			seq := benchSeq(size, gap)
			packed := make([]int32, MaxCompressedLength(size))
			words := Compress(seq, packed, 0)

			_, ref := intcomp.CompressDeltaBinPackInt32(seq, nil)
			b.Logf("%d/gap%d: ibp %d words, intcomp %d words", size, gap, words, len(ref))

			b.Run(fmt.Sprintf("Compress/%d/gap%d", size, gap), func(b *testing.B) {
				buf := make([]uint32, 0, len(ref))
				b.SetBytes(int64(4 * size))
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					_, buf = intcomp.CompressDeltaBinPackInt32(seq, buf[:0])
				}
			})

			b.Run(fmt.Sprintf("Uncompress/%d/gap%d", size, gap), func(b *testing.B) {
				out := make([]int32, 0, size)
				b.SetBytes(int64(4 * size))
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					_, out = intcomp.UncompressDeltaBinPackInt32(ref, out[:0])
				}
			})
		}
	}
}

func TestIntcompAgreesOnSortedInput(t *testing.T) {
	// Both codecs must reproduce the same sequence; only the layout differs.
	seq := benchSeq(1024, 300)
	_, ref := intcomp.CompressDeltaBinPackInt32(seq, nil)
	_, want := intcomp.UncompressDeltaBinPackInt32(ref, nil)

	packed := make([]int32, EstimateLength(seq, 0))
	packed = packed[:Compress(seq, packed, 0)]
	got := make([]int32, len(seq))
	Decompress(packed, got, 0)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ibp and intcomp disagree (-intcomp +ibp):\n%s", diff)
	}
}
