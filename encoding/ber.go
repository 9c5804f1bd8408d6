package encoding

import (
	"errors"
	"fmt"
	"io"
	"math/bits"

	"lukechampine.com/uint128"

	"github.com/misbkit/klv/errs"
)

// ReadBER reads a BER-encoded unsigned value from r.
//
// Both encoding forms are handled, selected by the most significant bit of
// the first byte:
//   - Short form (MSB 0): the value is the remaining 7 bits, 0-127.
//   - Long form (MSB 1): the remaining 7 bits give the count N of following
//     bytes (1-127), which are concatenated big-endian and interpreted as an
//     unsigned integer after stripping leading zero bits.
//
// The reader is advanced exactly past the bytes consumed: 1 byte for short
// form, 1+N bytes for long form.
//
// Returns:
//   - uint128.Uint128: The decoded value
//   - error: io.EOF or io.ErrUnexpectedEOF if the input runs out,
//     errs.ErrMalformedBER if a long-form header declares zero following
//     bytes, errs.ErrValueOverflow if more than 128 significant bits remain
//     after stripping, errs.ErrNonMinimalEncoding if a long form holds a
//     value that fits short form
func ReadBER(r io.Reader) (uint128.Uint128, error) {
	first, err := readByte(r)
	if err != nil {
		return uint128.Zero, err
	}

	if first&0x80 == 0 {
		// Short form: the byte is the value.
		return uint128.From64(uint64(first)), nil
	}

	numBytes := int(first & 0x7F)
	if numBytes == 0 {
		return uint128.Zero, fmt.Errorf("%w: long-form header declares zero following bytes", errs.ErrMalformedBER)
	}

	return readBERLongForm(r, numBytes)
}

// readBERLongForm reads the numBytes long-form payload bytes that follow an
// already-consumed BER header byte and assembles them into a value.
func readBERLongForm(r io.Reader, numBytes int) (uint128.Uint128, error) {
	buf := make([]byte, numBytes)
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) {
			// The header promised numBytes more bytes.
			err = io.ErrUnexpectedEOF
		}

		return uint128.Zero, err
	}

	val, err := loadBigEndian(buf, "BER")
	if err != nil {
		return uint128.Zero, err
	}

	// A long-form encoding of 0-127 wastes bytes the short form covers.
	if val.Hi == 0 && val.Lo <= 127 {
		return uint128.Zero, fmt.Errorf("%w: BER long-form value %d fits short form", errs.ErrNonMinimalEncoding, val.Lo)
	}

	return val, nil
}

// loadBigEndian interprets buf as a big-endian unsigned integer after
// stripping leading zero bits. It fails with errs.ErrValueOverflow if more
// than 128 significant bits remain; kind names the encoding in the error.
func loadBigEndian(buf []byte, kind string) (uint128.Uint128, error) {
	i := 0
	for i < len(buf) && buf[i] == 0 {
		i++
	}
	sig := buf[i:]
	if len(sig) == 0 {
		return uint128.Zero, nil
	}

	sigBits := (len(sig)-1)*8 + bits.Len8(sig[0])
	if sigBits > 128 {
		return uint128.Zero, fmt.Errorf("%w: %s value has %d significant bits", errs.ErrValueOverflow, kind, sigBits)
	}

	var val uint128.Uint128
	for _, b := range sig {
		val = val.Lsh(8).Or64(uint64(b))
	}

	return val, nil
}

// readByte reads a single byte from r, using the io.ByteReader fast path
// when available.
func readByte(r io.Reader) (byte, error) {
	if br, ok := r.(io.ByteReader); ok {
		return br.ReadByte()
	}

	var one [1]byte
	if _, err := io.ReadFull(r, one[:]); err != nil {
		return 0, err
	}

	return one[0], nil
}
