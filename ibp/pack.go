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

//go:generate go run ../cmd/ibpgen -output . -pkg ibp

// pack stores the 32 values of in as deltas from init using width bits each,
// writing exactly width words to out. Every delta must fit in width bits,
// which holds when width comes from DeltaBits.
//
// Width 0 writes nothing. Width 32 copies the raw values.
func pack(init int32, in, out []int32, width int) {
	switch {
	case width == 0:
	case width == 32:
		copy(out[:RunLength], in[:RunLength])
	case width > 0 && width < 32:
		if k := packers[width]; k != nil {
			k(init, in, out)
			return
		}
		packGeneric(init, in, out, width)
	default:
		panic(unsupportedBitWidth(width))
	}
}

// unpack reverses pack: it reads width words from in and writes 32
// reconstructed values to out, starting the running sum at init.
//
// Width 0 fills out with init. Width 32 copies the raw values.
func unpack(init int32, in, out []int32, width int) {
	switch {
	case width == 0:
		out = out[:RunLength]
		for i := range out {
			out[i] = init
		}
	case width == 32:
		copy(out[:RunLength], in[:RunLength])
	case width > 0 && width < 32:
		if k := unpackers[width]; k != nil {
			k(init, in, out)
			return
		}
		unpackGeneric(init, in, out, width)
	default:
		panic(unsupportedBitWidth(width))
	}
}
