// Package ibp implements integrated binary packing of 32-bit integer
// sequences.
//
// # Overview
//
// Sorted or nearly sorted sequences (document ids, offsets, timestamps) have
// small consecutive differences. ibp stores each run of 32 values as deltas
// using only as many bits as the widest delta in the run needs, so a posting
// list with gaps below 16 needs 4 bits per value instead of 32.
//
// "Integrated" means two things:
//   - the bit widths (the block header) are interleaved with the payload in a
//     single word stream, and
//   - delta context carries across run boundaries: the first delta of a run
//     is taken against the last value of the previous run.
//
// # Stream Layout
//
// Values are grouped in blocks of 128 (four runs of 32). Each block starts
// with one header word holding the four widths, most significant byte first:
//
//	w1<<24 | w2<<16 | w3<<8 | w4
//
// followed by w1+w2+w3+w4 payload words. After the last full block comes a
// single tail group of 96, 64, 32 or 0 values with a narrower header
// (w1<<16|w2<<8|w3, w1<<8|w2, w1) or no header at all. Sequence lengths must
// therefore be multiples of 32; use package varbyte for anything else.
//
// Inside a run the deltas form a continuous little-endian bit stream: delta i
// occupies bits [i*w, i*w+w) of the run's payload, spilling into the next
// word when it crosses a 32-bit boundary. Width 0 stores nothing (every
// delta is zero) and width 32 stores the raw values verbatim.
//
// # Example Usage
//
//	ids := []int32{...} // len(ids) is a multiple of 32
//	packed := make([]int32, ibp.EstimateLength(ids, 0))
//	n := ibp.Compress(ids, packed, 0)
//	packed = packed[:n]
//
//	restored := make([]int32, len(ids))
//	ibp.Decompress(packed, restored, 0)
//
// # Kernels
//
// The 31 width-specialized kernels in pack_specialized.gen.go are generated
// by cmd/ibpgen. Setting IBP_NO_SPECIALIZE routes every run through the
// generic bit-cursor kernels instead, which produce the same bits.
package ibp
