package compress

// NoOpCompressor bypasses data without compression, for archives stored
// raw and for measuring overhead in benchmarks.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input data as-is, without copying.
//
// The returned slice shares the input's backing memory; callers must not
// modify the input while the result is in use.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input data as-is, without copying.
//
// The returned slice shares the input's backing memory; callers must not
// modify the input while the result is in use.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
