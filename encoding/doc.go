// Package encoding implements the variable-length integer codecs used by the
// KLV binary metadata format.
//
// Three families of codec are provided:
//
//   - BER: the short/long-form unsigned integer encoding used for Length
//     fields. See ReadBER.
//   - BER-OID: the base-128 continuation-bit encoding used for Tag fields.
//     See ReadBEROID.
//   - Fixed-width integers: big-endian signed and unsigned integers stored
//     in a producer-selected number of bytes (1-16), widened into the
//     smallest container that represents them. See ReadInteger and
//     ReadUnsignedInteger.
//
// All codecs read from an io.Reader and consume exactly the bytes that make
// up the encoded value, leaving the reader positioned on the next byte. This
// makes them composable over a single shared cursor, which is how the klv
// package drives them.
//
// # Value Range
//
// BER and BER-OID values occupy the full unsigned 128-bit range and are
// returned as uint128.Uint128. Encodings with more than 128 significant bits
// are rejected with errs.ErrValueOverflow; malformed or non-minimal
// encodings are rejected with errs.ErrMalformedBER and
// errs.ErrNonMinimalEncoding. Running out of input bytes surfaces as io.EOF
// or io.ErrUnexpectedEOF, so I/O exhaustion is always distinguishable from a
// structurally invalid encoding.
package encoding
