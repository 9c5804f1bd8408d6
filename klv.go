// Package klv decodes Key-Length-Value (KLV) encoded binary metadata, the
// tag/length/value encoding standard used for embedding structured metadata
// such as telemetry and sensor parameters inside motion-imagery streams.
//
// # Core Features
//
//   - Bit-exact BER and BER-OID variable-length integer decoding with typed
//     overflow and malformed-input errors (no panics on untrusted input)
//   - Fixed-width signed/unsigned integer widening, 1-16 stored bytes into
//     8/16/32/64/128-bit containers
//   - Lazy, repeatable triplet value access over a shared seekable cursor
//   - Tag-indexed local sets with deterministic ascending-tag iteration
//   - Universal-key scanning that skips matched value spans, so key-like
//     byte patterns inside payloads never produce false positives
//   - xxHash64-based key and value identification for registries and dedupe
//
// # Basic Usage
//
// Locating and reading every universal set in a metadata buffer:
//
//	sets, err := klv.DecodeUniversalSets(data, klv.UASDatalinkKey)
//	if err != nil {
//	    return err
//	}
//	for _, set := range sets {
//	    for tag, triplet := range set.LocalSet().All() {
//	        value, _ := triplet.Value()
//	        fmt.Printf("tag=%s len=%d value=%x\n", tag, triplet.Length(), value)
//	    }
//	}
//
// Decoding a bare local set payload, e.g. one extracted from an MPEG-TS
// metadata PES packet:
//
//	set, err := klv.DecodeLocalSet(payload)
//
// # Concurrency
//
// Decoding is single-threaded and synchronous by design: every component
// that parses the same stream shares one byte cursor, and each read or seek
// borrows it exclusively for the duration of the call. Triplet value reads
// save and restore the cursor position so nested accesses interleave safely
// without true concurrency. If a cursor must be shared across goroutines,
// every access has to be serialized externally; unsynchronized concurrent
// use is undefined.
//
// # Scope
//
// The package is decode-only and format-level. Semantic tag dictionaries,
// software-value conversion, and per-standard validation are consumers of
// the decoded triplets, not part of this package.
package klv

import (
	"github.com/misbkit/klv/source"
)

// DecodeUniversalSets scans data for every occurrence of key and returns a
// universal set per match, in ascending offset order.
//
// This is a convenience wrapper over FindUniversalSets for in-memory
// sources; use FindUniversalSets directly with any io.ReadSeeker.
func DecodeUniversalSets(data []byte, key UniversalKey) ([]*UniversalSet, error) {
	return FindUniversalSets(source.FromBytes(data), key)
}

// DecodeLocalSet parses the whole of data as one local set: triplets back to
// back, spanning exactly the buffer.
func DecodeLocalSet(data []byte) (*LocalSet, error) {
	return ReadLocalSet(source.FromBytes(data), 0, int64(len(data)))
}
