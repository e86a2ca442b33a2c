package ibp

// packGeneric is the loop form of the generated pack kernels. It keeps a
// 64-bit accumulator and flushes a word whenever 32 bits are pending, so the
// output is bit-identical to packN for every width.
func packGeneric(init int32, in, out []int32, width int) {
	switch {
	case width == 0:
		return
	case width == 32:
		copy(out[:RunLength], in[:RunLength])
		return
	case width < 0 || width > 32:
		panic(unsupportedBitWidth(width))
	}

	_ = in[RunLength-1]
	out = out[:width]
	mask := uint64(1)<<width - 1

	var acc uint64
	var pending, k int
	prev := init
	for _, v := range in[:RunLength] {
		acc |= (uint64(uint32(v-prev)) & mask) << pending
		prev = v
		pending += width
		if pending >= 32 {
			out[k] = int32(uint32(acc))
			k++
			acc >>= 32
			pending -= 32
		}
	}
}

// unpackGeneric is the loop form of the generated unpack kernels.
func unpackGeneric(init int32, in, out []int32, width int) {
	switch {
	case width == 0:
		out = out[:RunLength]
		for i := range out {
			out[i] = init
		}
		return
	case width == 32:
		copy(out[:RunLength], in[:RunLength])
		return
	case width < 0 || width > 32:
		panic(unsupportedBitWidth(width))
	}

	in = in[:width]
	out = out[:RunLength]
	mask := uint64(1)<<width - 1

	var acc uint64
	var avail, k int
	v := init
	for i := range out {
		if avail < width {
			acc |= uint64(uint32(in[k])) << avail
			k++
			avail += 32
		}
		v += int32(uint32(acc & mask))
		out[i] = v
		acc >>= width
		avail -= width
	}
}
