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
	"encoding/binary"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// This file converts packed word buffers to and from little-endian bytes so
// callers can persist them. No length or checksum is added.

// AppendWords appends the little-endian encoding of words to dst and returns
// the extended slice.
func AppendWords(dst []byte, words []int32) []byte {
	if len(words) == 0 {
		return dst
	}
	if !cpu.IsBigEndian {
		// Memory order already matches the wire order.
		raw := unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), len(words)*4)
		return append(dst, raw...)
	}
	for _, w := range words {
		dst = binary.LittleEndian.AppendUint32(dst, uint32(w))
	}
	return dst
}

// ReadWords decodes little-endian words from src into dst and returns the
// number of words decoded: min(len(dst), len(src)/4). Trailing bytes that do
// not form a whole word are ignored.
func ReadWords(src []byte, dst []int32) int {
	n := min(len(dst), len(src)/4)
	if n == 0 {
		return 0
	}
	if !cpu.IsBigEndian {
		raw := unsafe.Slice((*byte)(unsafe.Pointer(&dst[0])), n*4)
		copy(raw, src[:n*4])
		return n
	}
	for i := range n {
		dst[i] = int32(binary.LittleEndian.Uint32(src[i*4:]))
	}
	return n
}
