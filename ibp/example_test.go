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

package ibp_test

import (
	"fmt"
	"slices"

	"github.com/ajroetker/go-intpack/ibp"
)

func ExampleCompress() {
	// 128 document ids with a gap of 3: every delta fits in 2 bits.
	ids := make([]int32, 128)
	for i := range ids {
		ids[i] = int32(3 * (i + 1))
	}

	packed := make([]int32, ibp.EstimateLength(ids, 0))
	n := ibp.Compress(ids, packed, 0)
	packed = packed[:n]
	fmt.Printf("words: %d\n", n)
	fmt.Printf("header: %#08x\n", uint32(packed[0]))

	restored := make([]int32, len(ids))
	ibp.Decompress(packed, restored, 0)
	fmt.Println("restored:", slices.Equal(ids, restored))
	// Output:
	// words: 9
	// header: 0x02020202
	// restored: true
}

func ExampleValidate() {
	stream := []int32{1, -1} // one run of 32 values, width 1
	words, err := ibp.Validate(stream, 32)
	fmt.Println(words, err)

	_, err = ibp.Validate(stream[:1], 32)
	fmt.Println(err)
	// Output:
	// 2 <nil>
	// ibp: packed buffer too short: need 2 words, have 1
}
