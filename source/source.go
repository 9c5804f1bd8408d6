// Package source constructs the seekable byte cursors the klv package
// parses.
//
// A cursor is any io.ReadSeeker; this package provides the in-memory
// constructors, including one that transparently decompresses KLV archives
// stored compressed at rest. Decompression happens once, up front, into an
// owned buffer: the decode engine requires random access, which compressed
// streams cannot provide directly.
package source

import (
	"bytes"
	"fmt"
	"io"

	"github.com/misbkit/klv/compress"
	"github.com/misbkit/klv/format"
)

// FromBytes returns a cursor positioned at the start of data.
//
// The cursor shares data's backing array; the caller must not modify data
// while triplets parsed from the cursor are still in use, or lazy value
// reads will observe the changes.
func FromBytes(data []byte) io.ReadSeeker {
	return bytes.NewReader(data)
}

// FromCompressed decompresses data with the named codec and returns a cursor
// over the decompressed bytes.
//
// Parameters:
//   - data: Compressed archive bytes
//   - compression: Codec the archive was written with (None, Zstd, S2, LZ4)
//
// Returns:
//   - io.ReadSeeker: Cursor positioned at the start of the decompressed data
//   - error: Unknown compression type, or a codec error for corrupted input
func FromCompressed(data []byte, compression format.CompressionType) (io.ReadSeeker, error) {
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	decompressed, err := codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress %s source: %w", compression, err)
	}

	return bytes.NewReader(decompressed), nil
}
