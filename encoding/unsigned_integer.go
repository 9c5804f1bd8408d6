package encoding

import (
	"fmt"
	"io"
	"math/big"

	"lukechampine.com/uint128"

	"github.com/misbkit/klv/errs"
)

// UnsignedInteger is an unsigned integer decoded from a producer-selected
// number of bytes, tagged with the concrete container width that holds it.
type UnsignedInteger struct {
	width Width
	bits  uint128.Uint128
}

// ReadUnsignedInteger reads length bytes from r and interprets them as a
// big-endian unsigned integer, widened into the smallest unsigned container
// that represents the stored byte count (the same length-to-width mapping as
// ReadInteger). Widening is zero-extending.
//
// On success the reader is advanced exactly length bytes. A length of 0 or
// greater than 16 fails with errs.ErrInvalidIntegerLength before any byte is
// consumed.
//
// Parameters:
//   - r: Byte source to read from
//   - length: Number of bytes to read and interpret, 1-16
//
// Returns:
//   - UnsignedInteger: The decoded value tagged with its container width
//   - error: errs.ErrInvalidIntegerLength for an unsupported length, or an
//     io error if the source runs out of bytes
func ReadUnsignedInteger(r io.Reader, length uint8) (UnsignedInteger, error) {
	if length == 0 || length > 16 {
		return UnsignedInteger{}, fmt.Errorf("%w: unsigned_integer length %d", errs.ErrInvalidIntegerLength, length)
	}

	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return UnsignedInteger{}, err
	}

	var bits uint128.Uint128
	for _, b := range buf {
		bits = bits.Lsh(8).Or64(uint64(b))
	}

	return UnsignedInteger{width: widthFor(length), bits: bits}, nil
}

// Width returns the concrete container width of the decoded value.
func (u UnsignedInteger) Width() Width {
	return u.width
}

// Uint64 returns the value as a uint64.
//
// Valid for widths up to 64 bits; for a 128-bit value it returns the low 64
// bits only. Use Uint128 or Big for the full range.
func (u UnsignedInteger) Uint64() uint64 {
	return u.bits.Lo
}

// Uint128 returns the full 128-bit value.
func (u UnsignedInteger) Uint128() uint128.Uint128 {
	return u.bits
}

// Big returns the value as a big.Int, valid for every width.
func (u UnsignedInteger) Big() *big.Int {
	return u.bits.Big()
}

// String returns the decimal representation of the value.
func (u UnsignedInteger) String() string {
	return u.bits.String()
}
