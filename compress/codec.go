package compress

import (
	"bytes"
	"fmt"

	"github.com/rrdkit/rrdchart/errs"
)

// Compression identifies a snapshot compression format.
type Compression uint8

const (
	CompressionNone Compression = 0x1 // CompressionNone represents an uncompressed snapshot.
	CompressionGzip Compression = 0x2 // CompressionGzip represents a gzip stream.
	CompressionZstd Compression = 0x3 // CompressionZstd represents a Zstandard frame.
	CompressionS2   Compression = 0x4 // CompressionS2 represents an S2/Snappy framed stream.
	CompressionLZ4  Compression = 0x5 // CompressionLZ4 represents an LZ4 framed stream.
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Magic byte prefixes of the supported framed formats.
var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}
	magicS2   = []byte{0xff, 0x06, 0x00, 0x00, 0x73, 0x4e, 0x61, 0x50, 0x70, 0x59}
)

// Detect sniffs the compression format from the snapshot's leading bytes.
//
// Input that matches no known magic is reported as CompressionNone and is
// handed to the binary parser unchanged.
//
// Parameters:
//   - data: Raw snapshot bytes as read from disk
//
// Returns:
//   - Compression: Detected format (CompressionNone if no magic matches)
func Detect(data []byte) Compression {
	switch {
	case bytes.HasPrefix(data, magicGzip):
		return CompressionGzip
	case bytes.HasPrefix(data, magicZstd):
		return CompressionZstd
	case bytes.HasPrefix(data, magicLZ4):
		return CompressionLZ4
	case bytes.HasPrefix(data, magicS2):
		return CompressionS2
	default:
		return CompressionNone
	}
}

// Codec combines compression and decompression for one snapshot format.
//
// Implementations are stateless values safe for concurrent use. Returned
// slices are newly allocated and owned by the caller (except for the no-op
// codec, which passes the input through).
type Codec interface {
	// Compress compresses the input data and returns the compressed result.
	Compress(data []byte) ([]byte, error)

	// Decompress decompresses the input data and returns the original
	// result. It returns an error if the data is corrupted or was not
	// produced by this codec's format.
	Decompress(data []byte) ([]byte, error)
}

var builtinCodecs = map[Compression]Codec{
	CompressionNone: NewNoOpCodec(),
	CompressionGzip: NewGzipCodec(),
	CompressionZstd: NewZstdCodec(),
	CompressionS2:   NewS2Codec(),
	CompressionLZ4:  NewLZ4Codec(),
}

// GetCodec retrieves the built-in Codec for the specified compression format.
//
// Returns:
//   - Codec: Codec instance for the format
//   - error: errs.ErrUnsupportedCompression for unknown formats
func GetCodec(compression Compression) (Codec, error) {
	if codec, ok := builtinCodecs[compression]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compression)
}

// Decompress detects the snapshot's compression format and decompresses it.
//
// Uncompressed input is returned as-is. Decompression failures are wrapped
// with errs.ErrCorruptSnapshot so callers can classify them with errors.Is.
//
// Parameters:
//   - data: Raw snapshot bytes as read from disk
//
// Returns:
//   - []byte: Decompressed snapshot bytes
//   - Compression: Detected format
//   - error: errs.ErrCorruptSnapshot-wrapped codec error on failure
func Decompress(data []byte) ([]byte, Compression, error) {
	compression := Detect(data)
	if compression == CompressionNone {
		return data, compression, nil
	}

	codec, err := GetCodec(compression)
	if err != nil {
		return nil, compression, err
	}

	raw, err := codec.Decompress(data)
	if err != nil {
		return nil, compression, fmt.Errorf("%w: %s: %w", errs.ErrCorruptSnapshot, compression, err)
	}

	return raw, compression, nil
}
