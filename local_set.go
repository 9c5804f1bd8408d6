package klv

import (
	"fmt"
	"io"
	"iter"
	"slices"

	"lukechampine.com/uint128"

	"github.com/misbkit/klv/errs"
)

// LocalSet is a bounded, tag-indexed collection of triplets.
//
// It is built in a single pass over its byte span at construction time and
// is immutable afterwards. If a tag number appears more than once within the
// span, the later occurrence replaces the earlier one: last write wins. That
// policy is deliberate, not an accident of the container; the format does
// not prohibit duplicate tags.
type LocalSet struct {
	triplets map[uint128.Uint128]*Triplet
}

// ReadLocalSet parses the span [start, end) of src as a sequence of
// triplets.
//
// The cursor seeks to start and triplets are read back to back until the
// cursor lands exactly on end. A triplet whose consumption passes end marks
// a malformed span and fails with errs.ErrSetOverrun; any codec error from
// an inner triplet aborts the whole set.
//
// Parameters:
//   - src: Shared byte cursor
//   - start: Absolute offset of the first triplet's tag field
//   - end: Absolute offset one past the last value byte of the span
//
// Returns:
//   - *LocalSet: The parsed, immutable set
//   - error: errs.ErrSetOverrun for a malformed span, or any propagated
//     triplet error
func ReadLocalSet(src io.ReadSeeker, start, end int64) (*LocalSet, error) {
	pos, err := src.Seek(start, io.SeekStart)
	if err != nil {
		return nil, err
	}

	triplets := make(map[uint128.Uint128]*Triplet)
	for pos < end {
		triplet, err := ReadTriplet(src)
		if err != nil {
			return nil, fmt.Errorf("failed to read triplet at offset %d: %w", pos, err)
		}

		pos, err = src.Seek(0, io.SeekCurrent)
		if err != nil {
			return nil, err
		}
		if pos > end {
			return nil, fmt.Errorf("%w: triplet ends at offset %d, span ends at %d", errs.ErrSetOverrun, pos, end)
		}

		// Duplicate tags: last write wins.
		triplets[triplet.Tag()] = triplet
	}

	return &LocalSet{triplets: triplets}, nil
}

// Get returns the triplet stored under tag, and whether one exists.
func (s *LocalSet) Get(tag uint128.Uint128) (*Triplet, bool) {
	triplet, ok := s.triplets[tag]
	return triplet, ok
}

// Get64 is a convenience form of Get for tag numbers that fit 64 bits, which
// covers every tag in the published MISB standards.
func (s *LocalSet) Get64(tag uint64) (*Triplet, bool) {
	return s.Get(uint128.From64(tag))
}

// Len returns the number of distinct tags in the set.
func (s *LocalSet) Len() int {
	return len(s.triplets)
}

// Tags returns the tag numbers in the set in ascending order.
func (s *LocalSet) Tags() []uint128.Uint128 {
	tags := make([]uint128.Uint128, 0, len(s.triplets))
	for tag := range s.triplets {
		tags = append(tags, tag)
	}
	slices.SortFunc(tags, func(a, b uint128.Uint128) int { return a.Cmp(b) })

	return tags
}

// All returns an iterator over (tag, triplet) pairs in ascending tag order.
//
// Ascending order, rather than encounter order, keeps iteration
// deterministic for diagnostics and tests.
func (s *LocalSet) All() iter.Seq2[uint128.Uint128, *Triplet] {
	return func(yield func(uint128.Uint128, *Triplet) bool) {
		for _, tag := range s.Tags() {
			if !yield(tag, s.triplets[tag]) {
				return
			}
		}
	}
}
