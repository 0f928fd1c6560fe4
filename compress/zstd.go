package compress

// ZstdCodec handles Zstandard-framed snapshot archives.
//
// Zstd gives the best ratio of the supported formats and is the recommended
// choice for long-term snapshot retention.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
