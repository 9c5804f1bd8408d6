// Package errs defines the sentinel errors returned by the klv codecs and
// set readers.
//
// Callers match errors with errors.Is:
//
//	triplet, err := klv.ReadTriplet(src)
//	if errors.Is(err, errs.ErrValueOverflow) {
//	    // value needed more than 128 significant bits
//	}
//
// I/O exhaustion is not redeclared here: reads that run out of bytes return
// io.EOF or io.ErrUnexpectedEOF from the standard library, so short input is
// always distinguishable from a structurally invalid encoding.
package errs

import "errors"

var (
	// ErrValueOverflow indicates a BER or BER-OID encoded value required more
	// than 128 significant bits after stripping leading zeros.
	ErrValueOverflow = errors.New("value exceeds 128 significant bits")

	// ErrMalformedBER indicates a BER long-form header that declares zero
	// following bytes (first byte 0x80).
	ErrMalformedBER = errors.New("malformed BER long-form header")

	// ErrNonMinimalEncoding indicates an encoding that is longer than the
	// value requires: a BER long form holding a value that fits short form,
	// or a BER-OID sequence starting with a redundant zero continuation
	// group.
	ErrNonMinimalEncoding = errors.New("non-minimal variable-length encoding")

	// ErrInvalidIntegerLength indicates a declared integer byte count outside
	// the supported 1..16 range.
	ErrInvalidIntegerLength = errors.New("invalid integer byte length")

	// ErrLengthOverflow indicates a BER length field that decodes to a value
	// larger than a 64-bit byte count.
	ErrLengthOverflow = errors.New("length exceeds 64-bit byte count")

	// ErrValueOutOfBounds indicates a triplet whose declared value span runs
	// past the end of the underlying byte source.
	ErrValueOutOfBounds = errors.New("value span exceeds source bounds")

	// ErrSetOverrun indicates a local set whose last triplet consumed bytes
	// beyond the set's declared span.
	ErrSetOverrun = errors.New("triplet overruns local set span")
)
