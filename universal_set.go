package klv

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/misbkit/klv/errs"
)

// UniversalSet pairs a universal key with the local set found immediately
// after one occurrence of that key in a byte source. A source may yield zero
// or more universal sets for a given key.
type UniversalSet struct {
	key    UniversalKey
	offset int64
	set    *LocalSet
}

// Key returns the universal key this set was located by.
func (u *UniversalSet) Key() UniversalKey {
	return u.key
}

// Offset returns the absolute offset of the first key byte.
func (u *UniversalSet) Offset() int64 {
	return u.offset
}

// LocalSet returns the tag-indexed triplets of this set.
func (u *UniversalSet) LocalSet() *LocalSet {
	return u.set
}

// searchWindow is a fixed ring of the most recently read bytes, sized to the
// universal key.
type searchWindow struct {
	buf  [UniversalKeyLength]byte
	head int
}

// push appends b, evicting the oldest byte.
func (w *searchWindow) push(b byte) {
	w.buf[w.head] = b
	w.head = (w.head + 1) % UniversalKeyLength
}

// equal reports whether the window contents, oldest byte first, match key.
func (w *searchWindow) equal(key UniversalKey) bool {
	for i := range UniversalKeyLength {
		if w.buf[(w.head+i)%UniversalKeyLength] != key[i] {
			return false
		}
	}

	return true
}

// StartLocations scans src from the beginning and returns the offset of the
// first key byte everywhere key occurs, in ascending order.
//
// The scan keeps a sliding window of the last 16 bytes read. On a match the
// length field that follows the key is decoded and the cursor skips the
// entire declared value span before the byte-by-byte scan resumes, so
// key-like byte patterns inside a value can never produce a false positive
// and matched payloads are never re-scanned.
//
// A source shorter than one key yields no matches. A length-field decode
// failure at a matched position aborts the whole scan: a match is assumed
// structurally valid once found.
func StartLocations(src io.ReadSeeker, key UniversalKey) ([]int64, error) {
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	var window searchWindow
	if _, err := io.ReadFull(src, window.buf[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			// Fewer bytes than one key: no matches are possible.
			return nil, nil
		}

		return nil, err
	}

	var locations []int64
	for {
		if window.equal(key) {
			pos, err := src.Seek(0, io.SeekCurrent)
			if err != nil {
				return nil, err
			}
			// The match fires after the last key byte was read, so the key
			// starts one key length back.
			start := pos - UniversalKeyLength
			locations = append(locations, start)

			if err := skipValueSpan(src, start); err != nil {
				return nil, err
			}
		}

		b, err := readOneByte(src)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return nil, err
		}
		window.push(b)
	}

	return locations, nil
}

// skipValueSpan decodes the length field that follows the key matched at
// start and seeks the cursor past the declared value span.
func skipValueSpan(src io.ReadSeeker, start int64) error {
	length, err := ReadLength(src)
	if err != nil {
		return fmt.Errorf("failed to decode length after key at offset %d: %w", start, err)
	}

	pos, err := src.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	if length > uint64(math.MaxInt64-pos) {
		return fmt.Errorf("%w: value of %d bytes at offset %d", errs.ErrValueOutOfBounds, length, pos)
	}

	_, err = src.Seek(pos+int64(length), io.SeekStart) //nolint:gosec

	return err
}

// FindUniversalSets scans src for every occurrence of key and constructs a
// universal set at each match.
//
// For each recorded start position the cursor re-seeks past the key, decodes
// the length field, and drives the local set reader over the declared span.
// Errors propagate unchanged: a malformed local set aborts the whole locate
// operation rather than being skipped.
func FindUniversalSets(src io.ReadSeeker, key UniversalKey) ([]*UniversalSet, error) {
	locations, err := StartLocations(src, key)
	if err != nil {
		return nil, err
	}

	sets := make([]*UniversalSet, 0, len(locations))
	for _, start := range locations {
		set, err := readUniversalSet(src, key, start)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}

	return sets, nil
}

// readUniversalSet builds one universal set from the key occurrence at
// start.
func readUniversalSet(src io.ReadSeeker, key UniversalKey, start int64) (*UniversalSet, error) {
	if _, err := src.Seek(start+UniversalKeyLength, io.SeekStart); err != nil {
		return nil, err
	}

	length, err := ReadLength(src)
	if err != nil {
		return nil, fmt.Errorf("failed to decode length after key at offset %d: %w", start, err)
	}

	pos, err := src.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	if length > uint64(math.MaxInt64-pos) {
		return nil, fmt.Errorf("%w: value of %d bytes at offset %d", errs.ErrValueOutOfBounds, length, pos)
	}

	set, err := ReadLocalSet(src, pos, pos+int64(length)) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("failed to read local set at offset %d: %w", pos, err)
	}

	return &UniversalSet{key: key, offset: start, set: set}, nil
}

// readOneByte reads a single byte from src, using the io.ByteReader fast
// path when available.
func readOneByte(src io.Reader) (byte, error) {
	if br, ok := src.(io.ByteReader); ok {
		return br.ReadByte()
	}

	var one [1]byte
	if _, err := io.ReadFull(src, one[:]); err != nil {
		return 0, err
	}

	return one[0], nil
}
