package rrd

import (
	"encoding/binary"
	"math"
	"strings"
	"unicode/utf16"

	"github.com/rrdkit/rrdchart/errs"
)

// Reader is a cursor over a byte buffer exposing fixed-width big-endian
// field reads.
//
// Every read validates the remaining length first and returns
// errs.ErrTruncatedInput on overrun; the cursor never advances past the end
// and never returns garbage.
type Reader struct {
	data []byte
	off  int
}

// NewReader creates a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Offset returns the current cursor position.
func (r *Reader) Offset() int {
	return r.off
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.off
}

// Skip advances the cursor by n bytes.
func (r *Reader) Skip(n int) error {
	if n < 0 || n > r.Remaining() {
		return errs.ErrTruncatedInput
	}
	r.off += n

	return nil
}

// Uint32 reads a big-endian unsigned 32-bit integer.
func (r *Reader) Uint32() (uint32, error) {
	if r.Remaining() < 4 {
		return 0, errs.ErrTruncatedInput
	}
	v := binary.BigEndian.Uint32(r.data[r.off:])
	r.off += 4

	return v, nil
}

// Uint64 reads a big-endian unsigned 64-bit integer.
func (r *Reader) Uint64() (uint64, error) {
	if r.Remaining() < 8 {
		return 0, errs.ErrTruncatedInput
	}
	v := binary.BigEndian.Uint64(r.data[r.off:])
	r.off += 8

	return v, nil
}

// Float64 reads a big-endian IEEE-754 double.
func (r *Reader) Float64() (float64, error) {
	bits, err := r.Uint64()
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(bits), nil
}

// Float64Slice reads n consecutive big-endian IEEE-754 doubles in one pass.
//
// The length is validated before the slice is allocated, so a corrupt count
// cannot trigger a huge allocation followed by a failed read.
func (r *Reader) Float64Slice(n int) ([]float64, error) {
	if n < 0 || r.Remaining()/8 < n {
		return nil, errs.ErrTruncatedInput
	}

	values := make([]float64, n)
	for i := range values {
		values[i] = math.Float64frombits(binary.BigEndian.Uint64(r.data[r.off+i*8:]))
	}
	r.off += n * 8

	return values, nil
}

// String reads a fixed-width UTF-16BE string field of n bytes (n/2 chars),
// trimming trailing NULs and padding spaces.
//
// RRD4J writes strings as Java chars, two bytes each, big-endian.
func (r *Reader) String(n int) (string, error) {
	if n < 0 || n > r.Remaining() {
		return "", errs.ErrTruncatedInput
	}

	chars := make([]uint16, n/2)
	for i := range chars {
		chars[i] = binary.BigEndian.Uint16(r.data[r.off+i*2:])
	}
	r.off += n

	return strings.TrimRight(string(utf16.Decode(chars)), "\x00 "), nil
}
