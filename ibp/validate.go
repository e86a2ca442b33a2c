package ibp

import "fmt"

// Validate checks that in holds a well-formed stream of n values without
// decoding it. It walks the headers, rejects widths above 32, and verifies
// that every payload fits in in. On success it returns the number of words
// the stream occupies, which is what Decompress will consume.
//
// Validate cannot detect payload corruption: any bit pattern is a valid
// payload for a valid header.
func Validate(in []int32, n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: negative length %d", ErrInvalidRemainder, n)
	}
	if rem := n % BlockLength; rem%RunLength != 0 {
		return 0, invalidRemainder(rem)
	}

	pos := 0
	for i := 0; i < n; i += BlockLength {
		runs := min(n-i, BlockLength) / RunLength
		if pos >= len(in) {
			return 0, fmt.Errorf("%w: missing header for values %d..%d", ErrShortBuffer, i, i+runs*RunLength-1)
		}
		header := uint32(in[pos])
		pos++

		if unused := header >> (8 * runs); runs < 4 && unused != 0 {
			return 0, fmt.Errorf("%w: header %#08x has bits set above %d widths", ErrUnsupportedBitWidth, header, runs)
		}
		for r := range runs {
			width := int(header>>(8*(runs-1-r))&0xff)
			if width > 32 {
				return 0, fmt.Errorf("%w: %d at run %d", ErrUnsupportedBitWidth, width, i/RunLength+r)
			}
			pos += width
		}
		if pos > len(in) {
			return 0, fmt.Errorf("%w: need %d words, have %d", ErrShortBuffer, pos, len(in))
		}
	}
	return pos, nil
}
