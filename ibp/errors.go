package ibp

import (
	"errors"
	"fmt"
)

// Contract violations. Compress, Decompress and the kernels panic with an
// error wrapping one of these; Validate returns them.
var (
	// ErrInvalidRemainder reports a sequence length that does not split into
	// 128-value blocks followed by a tail of 0, 32, 64 or 96 values.
	ErrInvalidRemainder = errors.New("ibp: invalid block remainder")

	// ErrUnsupportedBitWidth reports a bit width outside [0, 32].
	ErrUnsupportedBitWidth = errors.New("ibp: unsupported bit width")

	// ErrShortBuffer reports a packed buffer that ends before the stream does.
	ErrShortBuffer = errors.New("ibp: packed buffer too short")
)

func invalidRemainder(rem int) error {
	return fmt.Errorf("%w: %d values left after full blocks", ErrInvalidRemainder, rem)
}

func unsupportedBitWidth(width int) error {
	return fmt.Errorf("%w: %d", ErrUnsupportedBitWidth, width)
}
