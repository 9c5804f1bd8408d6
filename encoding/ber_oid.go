package encoding

import (
	"errors"
	"fmt"
	"io"
	"math/bits"

	"lukechampine.com/uint128"

	"github.com/misbkit/klv/errs"
)

// ReadBEROID reads a BER-OID (base-128 continuation) encoded unsigned value
// from r.
//
// Each byte contributes its low 7 bits, most significant group first; a set
// most significant bit marks a continuation byte, a clear one the terminal
// byte. The reader is advanced past every byte of the sequence, including
// the terminal one.
//
// A multi-byte sequence whose first group is all zeros carries a redundant
// leading continuation byte and is rejected with errs.ErrNonMinimalEncoding.
//
// Returns:
//   - uint128.Uint128: The decoded value
//   - error: io.EOF if the first byte is missing, io.ErrUnexpectedEOF if the
//     input ends while the continuation bit is still set,
//     errs.ErrNonMinimalEncoding for a redundant leading zero group,
//     errs.ErrValueOverflow if the assembled groups exceed 128 significant
//     bits
func ReadBEROID(r io.Reader) (uint128.Uint128, error) {
	var groups []byte
	for {
		b, err := readByte(r)
		if err != nil {
			if len(groups) > 0 && errors.Is(err, io.EOF) {
				// Mid-sequence exhaustion: the continuation bit promised
				// another byte.
				err = io.ErrUnexpectedEOF
			}

			return uint128.Zero, err
		}

		if len(groups) == 0 && b&0x80 != 0 && b&0x7F == 0 {
			return uint128.Zero, fmt.Errorf("%w: BER-OID starts with a redundant zero group", errs.ErrNonMinimalEncoding)
		}

		groups = append(groups, b&0x7F)
		if b&0x80 == 0 {
			break
		}
	}

	return loadGroups(groups)
}

// loadGroups assembles 7-bit groups (most significant first) into a value,
// stripping leading zero bits and enforcing the 128-bit ceiling.
func loadGroups(groups []byte) (uint128.Uint128, error) {
	i := 0
	for i < len(groups) && groups[i] == 0 {
		i++
	}
	sig := groups[i:]
	// All groups zero: the value is 0. Special-cased because stripping
	// leading zeros would otherwise leave nothing to load.
	if len(sig) == 0 {
		return uint128.Zero, nil
	}

	sigBits := (len(sig)-1)*7 + bits.Len8(sig[0])
	if sigBits > 128 {
		return uint128.Zero, fmt.Errorf("%w: BER-OID value has %d significant bits", errs.ErrValueOverflow, sigBits)
	}

	var val uint128.Uint128
	for _, g := range sig {
		val = val.Lsh(7).Or64(uint64(g))
	}

	return val, nil
}
