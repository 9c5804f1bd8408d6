package klv

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"

	"github.com/misbkit/klv/encoding"
	"github.com/misbkit/klv/errs"
)

func TestReadTriplet(t *testing.T) {
	src := bytes.NewReader([]byte{0x01, 0x02, 0x03, 0x04})

	triplet, err := ReadTriplet(src)
	require.NoError(t, err)
	require.Equal(t, uint128.From64(1), triplet.Tag())
	require.Equal(t, uint64(2), triplet.Length())
	require.Equal(t, int64(2), triplet.ValueOffset())

	// The cursor sits one byte past the value, value bytes unread.
	pos, err := src.Seek(0, io.SeekCurrent)
	require.NoError(t, err)
	require.Equal(t, int64(4), pos)

	value, err := triplet.Value()
	require.NoError(t, err)
	require.Equal(t, []byte{0x03, 0x04}, value)
}

func TestReadTriplet_LongFormFields(t *testing.T) {
	// Tag 128 (BER-OID two bytes), length 200 (BER long form), 200 value
	// bytes.
	input := append([]byte{0x81, 0x00, 0x81, 0xC8}, bytes.Repeat([]byte{0x5A}, 200)...)
	src := bytes.NewReader(input)

	triplet, err := ReadTriplet(src)
	require.NoError(t, err)
	require.Equal(t, uint128.From64(128), triplet.Tag())
	require.Equal(t, uint64(200), triplet.Length())
	require.Equal(t, int64(4), triplet.ValueOffset())
}

func TestReadTriplet_ZeroLengthValue(t *testing.T) {
	src := bytes.NewReader([]byte{0x01, 0x00})

	triplet, err := ReadTriplet(src)
	require.NoError(t, err)
	require.Equal(t, uint64(0), triplet.Length())

	value, err := triplet.Value()
	require.NoError(t, err)
	require.Empty(t, value)
}

func TestReadTriplet_ValueOutOfBounds(t *testing.T) {
	// Declared 5 value bytes, only 1 present.
	src := bytes.NewReader([]byte{0x01, 0x05, 0xAA})

	_, err := ReadTriplet(src)
	require.ErrorIs(t, err, errs.ErrValueOutOfBounds)
}

func TestReadTriplet_LengthOverflow(t *testing.T) {
	// BER length of 2^64 cannot address a seekable source.
	input := append([]byte{0x01, 0x89, 0x01}, bytes.Repeat([]byte{0x00}, 8)...)
	src := bytes.NewReader(input)

	_, err := ReadTriplet(src)
	require.ErrorIs(t, err, errs.ErrLengthOverflow)
}

func TestReadTriplet_CodecErrorPropagation(t *testing.T) {
	// A malformed length field surfaces the codec's own error kind.
	src := bytes.NewReader([]byte{0x01, 0x80, 0xFF})

	_, err := ReadTriplet(src)
	require.ErrorIs(t, err, errs.ErrMalformedBER)
}

func TestTriplet_ValueIdempotent(t *testing.T) {
	src := bytes.NewReader([]byte{0x01, 0x02, 0x03, 0x04, 0xFF})

	triplet, err := ReadTriplet(src)
	require.NoError(t, err)

	before, err := src.Seek(0, io.SeekCurrent)
	require.NoError(t, err)

	first, err := triplet.Value()
	require.NoError(t, err)
	second, err := triplet.Value()
	require.NoError(t, err)
	require.Equal(t, first, second)

	// Reading the value leaves the shared cursor where it was.
	after, err := src.Seek(0, io.SeekCurrent)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestTriplet_ValueDuringOuterParse(t *testing.T) {
	// Reading the first triplet's value must not disturb parsing the
	// second one from the same cursor.
	src := bytes.NewReader([]byte{
		0x01, 0x02, 0xAA, 0xBB,
		0x02, 0x01, 0xCC,
	})

	first, err := ReadTriplet(src)
	require.NoError(t, err)

	value, err := first.Value()
	require.NoError(t, err)
	require.Equal(t, []byte{0xAA, 0xBB}, value)

	second, err := ReadTriplet(src)
	require.NoError(t, err)
	require.Equal(t, uint128.From64(2), second.Tag())

	value, err = second.Value()
	require.NoError(t, err)
	require.Equal(t, []byte{0xCC}, value)
}

func TestTriplet_ValueHash(t *testing.T) {
	src := bytes.NewReader([]byte{
		0x01, 0x02, 0xAA, 0xBB,
		0x02, 0x02, 0xAA, 0xBB,
		0x03, 0x02, 0xAA, 0xCC,
	})

	first, err := ReadTriplet(src)
	require.NoError(t, err)
	second, err := ReadTriplet(src)
	require.NoError(t, err)
	third, err := ReadTriplet(src)
	require.NoError(t, err)

	h1, err := first.ValueHash()
	require.NoError(t, err)
	h2, err := second.ValueHash()
	require.NoError(t, err)
	h3, err := third.ValueHash()
	require.NoError(t, err)

	// Identical values hash identically regardless of tag; different
	// values differ.
	require.Equal(t, h1, h2)
	require.NotEqual(t, h1, h3)
}

func TestTriplet_Int(t *testing.T) {
	src := bytes.NewReader([]byte{0x01, 0x02, 0xFF, 0xFF})

	triplet, err := ReadTriplet(src)
	require.NoError(t, err)

	val, err := triplet.Int()
	require.NoError(t, err)
	require.Equal(t, encoding.Width16, val.Width())
	require.Equal(t, int64(-1), val.Int64())
}

func TestTriplet_Uint(t *testing.T) {
	src := bytes.NewReader([]byte{0x01, 0x02, 0xFF, 0xFF})

	triplet, err := ReadTriplet(src)
	require.NoError(t, err)

	val, err := triplet.Uint()
	require.NoError(t, err)
	require.Equal(t, encoding.Width16, val.Width())
	require.Equal(t, uint64(65535), val.Uint64())
}

func TestTriplet_IntInvalidLength(t *testing.T) {
	// 17 value bytes cannot widen into any supported integer container.
	input := append([]byte{0x01, 0x11}, bytes.Repeat([]byte{0x00}, 17)...)
	src := bytes.NewReader(input)

	triplet, err := ReadTriplet(src)
	require.NoError(t, err)

	_, err = triplet.Int()
	require.ErrorIs(t, err, errs.ErrInvalidIntegerLength)

	_, err = triplet.Uint()
	require.ErrorIs(t, err, errs.ErrInvalidIntegerLength)
}
