// Package errs defines sentinel errors shared across rrdchart packages.
//
// All errors are plain sentinel values so callers can classify failures with
// errors.Is. Parsing errors (ErrTruncatedInput, ErrInvalidHeader,
// ErrInvalidArchiveCount) are recoverable: the extraction pipeline falls back
// to the heuristic scanner when the structured parser reports them.
// ErrNoUsableData is terminal for extraction.
package errs

import "errors"

var (
	// ErrTruncatedInput indicates a fixed-width field read would pass the end
	// of the input buffer.
	ErrTruncatedInput = errors.New("truncated input")

	// ErrInvalidHeader indicates header counts imply reads beyond the buffer,
	// e.g. a datasource count whose records cannot fit in the remaining bytes.
	ErrInvalidHeader = errors.New("invalid header")

	// ErrInvalidArchiveCount indicates the archive count or an archive row
	// count implies reads beyond the buffer.
	ErrInvalidArchiveCount = errors.New("invalid archive count")

	// ErrNoUsableData indicates every extraction stage produced zero finite
	// samples.
	ErrNoUsableData = errors.New("no usable data")

	// ErrCorruptSnapshot indicates a compressed snapshot failed to decompress.
	ErrCorruptSnapshot = errors.New("corrupt snapshot")

	// ErrUnsupportedCompression indicates an unknown compression type was
	// requested from the codec factory.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)
