package klv

import (
	"bytes"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"lukechampine.com/uint128"

	"github.com/misbkit/klv/encoding"
	"github.com/misbkit/klv/errs"
)

// Triplet is one parsed KLV tag/length/value unit.
//
// A Triplet owns no value bytes: it records the tag, the declared value
// length, and the absolute offset of the first value byte, plus a handle to
// the shared cursor it was read from. Value bytes are fetched lazily through
// Value and may be re-read any number of times as long as the underlying
// source is unchanged at that offset.
type Triplet struct {
	// src is the shared byte cursor the triplet was parsed from.
	src io.ReadSeeker

	// tag identifies this triplet within a local set. Tags are stored in
	// BER-OID format per ST 0107.5 KLV Metadata in Motion Imagery.
	tag uint128.Uint128

	// length is the number of bytes that make up the value. The BER form
	// could in principle encode lengths beyond 64 bits, but a seekable
	// source is addressed with int64 offsets, so anything wider is rejected
	// at read time with errs.ErrLengthOverflow.
	length uint64

	// valueOffset is the absolute offset of the first value byte, always
	// immediately after the last byte of the length field.
	valueOffset int64
}

// ReadTriplet reads one triplet from the current position of src, using that
// position as the start of the tag field.
//
// The tag (BER-OID) and length (BER) fields are consumed, the value offset
// is recorded, and the cursor is advanced past the value without reading it.
// The value span is bounds-checked against the source size before the skip.
//
// Returns:
//   - *Triplet: The parsed triplet, positioned for lazy value access
//   - error: Any codec error from the tag or length field,
//     errs.ErrValueOutOfBounds if the value span runs past the end of the
//     source, or an io error
func ReadTriplet(src io.ReadSeeker) (*Triplet, error) {
	tag, err := ReadTag(src)
	if err != nil {
		return nil, fmt.Errorf("failed to decode tag: %w", err)
	}

	length, err := ReadLength(src)
	if err != nil {
		return nil, fmt.Errorf("failed to decode length: %w", err)
	}

	valueOffset, err := src.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}

	end, err := src.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, err
	}
	if length > uint64(end-valueOffset) {
		return nil, fmt.Errorf("%w: value of %d bytes at offset %d, source ends at %d",
			errs.ErrValueOutOfBounds, length, valueOffset, end)
	}

	// Skip the value; reading it is deferred until Value is called.
	if _, err := src.Seek(valueOffset+int64(length), io.SeekStart); err != nil { //nolint:gosec
		return nil, err
	}

	return &Triplet{
		src:         src,
		tag:         tag,
		length:      length,
		valueOffset: valueOffset,
	}, nil
}

// ReadTag reads a tag number from the current position of src.
//
// Tag numbers are always stored in BER-OID format, per section 6.3.1 of
// ST 0107.5 KLV Metadata in Motion Imagery.
func ReadTag(src io.Reader) (uint128.Uint128, error) {
	return encoding.ReadBEROID(src)
}

// ReadLength reads a value length from the current position of src.
//
// Lengths are always stored in BER format, per section 6.3.2 of ST 0107.5.
// A length that decodes to more than 64 bits cannot address a seekable
// source and fails with errs.ErrLengthOverflow.
func ReadLength(src io.Reader) (uint64, error) {
	val, err := encoding.ReadBER(src)
	if err != nil {
		return 0, err
	}
	if val.Hi != 0 {
		return 0, fmt.Errorf("%w: length %s", errs.ErrLengthOverflow, val)
	}

	return val.Lo, nil
}

// Tag returns the tag number that identifies this triplet in a local set.
func (t *Triplet) Tag() uint128.Uint128 {
	return t.tag
}

// Length returns the number of bytes that make up the value.
func (t *Triplet) Length() uint64 {
	return t.length
}

// ValueOffset returns the absolute offset of the first value byte.
func (t *Triplet) ValueOffset() int64 {
	return t.valueOffset
}

// Value returns a copy of the bytes making up the value.
//
// The read is non-destructive to any in-progress parse that shares the
// cursor: the current position is saved, the cursor seeks to the value
// offset, the value is read, and the position is restored on every exit
// path. Repeated calls return identical bytes as long as the source is
// unchanged.
func (t *Triplet) Value() (value []byte, err error) {
	pos, err := t.src.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	defer func() {
		if _, restoreErr := t.src.Seek(pos, io.SeekStart); err == nil {
			err = restoreErr
		}
	}()

	if _, err = t.src.Seek(t.valueOffset, io.SeekStart); err != nil {
		return nil, err
	}

	value = make([]byte, t.length)
	if _, err = io.ReadFull(t.src, value); err != nil {
		return nil, err
	}

	return value, nil
}

// ValueHash returns the xxHash64 digest of the value bytes.
//
// Metadata packets repeat largely static content in long motion-imagery
// streams; consumers can compare digests to skip re-processing unchanged
// values.
func (t *Triplet) ValueHash() (uint64, error) {
	value, err := t.Value()
	if err != nil {
		return 0, err
	}

	return xxhash.Sum64(value), nil
}

// Int decodes the value bytes as a big-endian two's-complement integer,
// widened per encoding.ReadInteger. The triplet's own length selects the
// container width.
func (t *Triplet) Int() (encoding.Integer, error) {
	if t.length == 0 || t.length > 16 {
		return encoding.Integer{}, fmt.Errorf("%w: integer length %d", errs.ErrInvalidIntegerLength, t.length)
	}

	value, err := t.Value()
	if err != nil {
		return encoding.Integer{}, err
	}

	return encoding.ReadInteger(bytes.NewReader(value), uint8(t.length))
}

// Uint decodes the value bytes as a big-endian unsigned integer, widened per
// encoding.ReadUnsignedInteger. The triplet's own length selects the
// container width.
func (t *Triplet) Uint() (encoding.UnsignedInteger, error) {
	if t.length == 0 || t.length > 16 {
		return encoding.UnsignedInteger{}, fmt.Errorf("%w: unsigned_integer length %d", errs.ErrInvalidIntegerLength, t.length)
	}

	value, err := t.Value()
	if err != nil {
		return encoding.UnsignedInteger{}, err
	}

	return encoding.ReadUnsignedInteger(bytes.NewReader(value), uint8(t.length))
}
