package compress

// NoOpCodec passes snapshot data through without compression.
//
// It serves uncompressed snapshot files, which are the common case for live
// rrd directories (compression usually only appears on backup archives).
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a codec that bypasses data unchanged.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns the input slice as-is, without processing or copying.
//
// The returned slice shares the input's underlying memory.
func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is, without processing or copying.
//
// The returned slice shares the input's underlying memory.
func (c NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
