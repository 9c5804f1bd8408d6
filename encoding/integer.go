package encoding

import (
	"fmt"
	"io"
	"math/big"

	"lukechampine.com/uint128"

	"github.com/misbkit/klv/errs"
)

// two128 is 2^128, used to convert raw two's-complement bits to a signed
// big.Int.
var two128 = new(big.Int).Lsh(big.NewInt(1), 128)

// Integer is a signed integer decoded from a producer-selected number of
// bytes, tagged with the concrete container width that holds it.
//
// Internally the value is kept sign-extended to 128 bits in two's-complement
// form, so accessors for every width read from the same representation.
type Integer struct {
	width Width
	bits  uint128.Uint128
}

// ReadInteger reads length bytes from r and interprets them as a big-endian
// two's-complement integer, widened into the smallest signed container that
// represents the stored byte count:
//
//	length 1     -> 8-bit
//	length 2     -> 16-bit
//	length 3-4   -> 32-bit
//	length 5-8   -> 64-bit
//	length 9-16  -> 128-bit
//
// Widening is sign-extending: the stored sign bit fills every bit above the
// stored width, so negative values survive the growth to the wider
// container.
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
//   - Integer: The decoded value tagged with its container width
//   - error: errs.ErrInvalidIntegerLength for an unsupported length, or an
//     io error if the source runs out of bytes
func ReadInteger(r io.Reader, length uint8) (Integer, error) {
	if length == 0 || length > 16 {
		return Integer{}, fmt.Errorf("%w: integer length %d", errs.ErrInvalidIntegerLength, length)
	}

	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return Integer{}, err
	}

	var bits uint128.Uint128
	for _, b := range buf {
		bits = bits.Lsh(8).Or64(uint64(b))
	}

	// Sign-extend from the stored width to the full 128 bits.
	if length < 16 && buf[0]&0x80 != 0 {
		bits = bits.Or(uint128.Max.Lsh(uint(length) * 8))
	}

	return Integer{width: widthFor(length), bits: bits}, nil
}

// Width returns the concrete container width of the decoded value.
func (i Integer) Width() Width {
	return i.width
}

// IsNegative reports whether the decoded value is negative.
func (i Integer) IsNegative() bool {
	return i.bits.Hi&(1<<63) != 0
}

// Int64 returns the value as an int64.
//
// Valid for widths up to 64 bits; for a 128-bit value it returns the low 64
// bits only. Use Big for the full 128-bit range.
func (i Integer) Int64() int64 {
	return int64(i.bits.Lo) //nolint:gosec
}

// Bits returns the raw two's-complement representation, sign-extended to
// 128 bits.
func (i Integer) Bits() uint128.Uint128 {
	return i.bits
}

// Big returns the signed value as a big.Int, valid for every width.
func (i Integer) Big() *big.Int {
	b := i.bits.Big()
	if i.IsNegative() {
		b.Sub(b, two128)
	}

	return b
}

// String returns the decimal representation of the value.
func (i Integer) String() string {
	return i.Big().String()
}
