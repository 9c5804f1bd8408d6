// Package compress provides the compression codecs used for KLV archives
// stored compressed at rest.
//
// KLV decoding requires a seekable byte source, so compression is applied
// only at the whole-archive level: an archive is decompressed once into an
// owned buffer (see the source package) and the decode engine then has the
// random access it needs. Values inside the KLV stream itself are never
// compressed by this package.
//
// Four algorithms are supported, selected by format.CompressionType:
//
//   - None: pass-through, for archives already stored raw
//   - Zstd: best ratio, for cold storage and bandwidth-limited transfer
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression, for read-heavy workloads
//
// Telemetry metadata is highly repetitive (static platform identifiers,
// slowly changing sensor values), so even the fast codecs typically achieve
// worthwhile ratios on KLV archives.
//
// The Zstd codec has two implementations chosen at build time: a cgo
// binding (valyala/gozstd) when cgo is available, and a pure-Go fallback
// (klauspost/compress/zstd) otherwise. Both read and write standard
// Zstandard frames.
//
// All codecs are safe for concurrent use.
package compress
