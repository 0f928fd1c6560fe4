// Package compress provides the snapshot codec layer for rrdchart.
//
// Round-robin database snapshots are often stored or transferred as
// compressed archives (periodic backups, remote collection). This package
// detects the compression format from the file's leading magic bytes and
// decompresses the snapshot before it reaches the binary parser.
//
// # Supported formats
//
//   - None: uncompressed snapshot, passed through unchanged
//   - Gzip: RFC 1952 streams (the common backup format)
//   - Zstd: Zstandard frames
//   - S2: S2/Snappy framed streams
//   - LZ4: LZ4 framed streams
//
// Detection is purely magic-byte based; input that matches no known magic is
// treated as an uncompressed snapshot. The RRD signature region is skipped by
// the parser rather than validated, so misdetection cannot occur for real
// snapshot files: none of the supported magics are valid RRD signatures.
//
// # Architecture
//
// The package defines a single Codec interface:
//
//	type Codec interface {
//	    Compress(data []byte) ([]byte, error)
//	    Decompress(data []byte) ([]byte, error)
//	}
//
// Codecs are stateless values; the zstd implementation pools its decoder and
// encoder internally. All codecs are safe for concurrent use.
//
// Most callers only need the top-level helper:
//
//	raw, format, err := compress.Decompress(snapshotBytes)
//
// which detects the format and routes to the matching codec.
package compress
