package encoding

import (
	"bytes"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"

	"github.com/misbkit/klv/errs"
)

func TestReadUnsignedInteger(t *testing.T) {
	testCases := []struct {
		name     string
		input    []byte
		width    Width
		expected uint64
	}{
		{"u8 zero", []byte{0x00}, Width8, 0},
		{"u8 max", []byte{0xFF}, Width8, math.MaxUint8},
		{"u16 max", []byte{0xFF, 0xFF}, Width16, math.MaxUint16},
		{"3 bytes widen to u32", []byte{0xFF, 0xFF, 0xFF}, Width32, 1<<24 - 1},
		{"u32 max", []byte{0xFF, 0xFF, 0xFF, 0xFF}, Width32, math.MaxUint32},
		{"5 bytes widen to u64", []byte{0x01, 0x00, 0x00, 0x00, 0x00}, Width64, 1 << 32},
		{"u64 max", bytes.Repeat([]byte{0xFF}, 8), Width64, math.MaxUint64},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := bytes.NewReader(tc.input)
			val, err := ReadUnsignedInteger(r, uint8(len(tc.input)))
			require.NoError(t, err)
			require.Equal(t, tc.width, val.Width())
			require.Equal(t, tc.expected, val.Uint64())
			require.Equal(t, 0, r.Len(), "cursor must advance exactly length bytes")
		})
	}
}

func TestReadUnsignedInteger_ZeroExtension128(t *testing.T) {
	// Widening is zero-extending: a 9-byte all-ones pattern is 2^72-1, not
	// a sign-extended value.
	input := bytes.Repeat([]byte{0xFF}, 9)
	val, err := ReadUnsignedInteger(bytes.NewReader(input), 9)
	require.NoError(t, err)
	require.Equal(t, Width128, val.Width())
	require.Equal(t, uint128.New(math.MaxUint64, 0xFF), val.Uint128())
}

func TestReadUnsignedInteger_128BitMax(t *testing.T) {
	input := bytes.Repeat([]byte{0xFF}, 16)
	val, err := ReadUnsignedInteger(bytes.NewReader(input), 16)
	require.NoError(t, err)
	require.Equal(t, uint128.Max, val.Uint128())
	require.Equal(t, "340282366920938463463374607431768211455", val.String())
}

func TestReadUnsignedInteger_InvalidLength(t *testing.T) {
	for _, length := range []uint8{0, 17, 255} {
		r := bytes.NewReader(bytes.Repeat([]byte{0xAB}, 32))
		_, err := ReadUnsignedInteger(r, length)
		require.ErrorIs(t, err, errs.ErrInvalidIntegerLength)
		require.Contains(t, err.Error(), "unsigned_integer")
		// Length validation happens before any read.
		require.Equal(t, 32, r.Len())
	}
}

func TestReadUnsignedInteger_IOExhaustion(t *testing.T) {
	_, err := ReadUnsignedInteger(bytes.NewReader(nil), 2)
	require.ErrorIs(t, err, io.EOF)

	_, err = ReadUnsignedInteger(bytes.NewReader([]byte{0x81}), 2)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
