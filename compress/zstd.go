package compress

// ZstdCompressor provides Zstandard compression for KLV archives.
//
// Zstd favors compression ratio over speed, which suits archival storage
// and bandwidth-limited transfer of metadata captures. The implementation
// is selected at build time: a cgo binding when cgo is available, a pure-Go
// one otherwise. See zstd_cgo.go and zstd_pure.go.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
