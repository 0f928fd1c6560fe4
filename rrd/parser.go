package rrd

import (
	"time"

	"github.com/rrdkit/rrdchart/errs"
	"github.com/rrdkit/rrdchart/series"
)

// File is the parsed structure of one snapshot: header, datasource metadata
// and the archives with chronologically ordered value buffers.
//
// A File is immutable after Parse and holds no reference to the input
// buffer; the raw bytes may be released once Parse returns.
type File struct {
	Header      Header
	Datasources []Datasource
	Archives    []Archive
}

// Parse interprets the raw bytes of a snapshot file.
//
// The walk follows the fixed big-endian layout described in the package
// documentation. Any out-of-range read, malformed count or buffer-bounds
// violation yields an error rather than a partial result; callers treat a
// failure as "try the heuristic Scan fallback".
//
// The clock is used only as the substitute for an implausible lastUpdate
// field; injecting it keeps parsing deterministic under test.
//
// Parameters:
//   - data: Raw (already decompressed) snapshot bytes
//   - now: Current time, substituted for out-of-range lastUpdate values
//
// Returns:
//   - *File: Parsed snapshot
//   - error: errs.ErrTruncatedInput, errs.ErrInvalidHeader or
//     errs.ErrInvalidArchiveCount on malformed input
func Parse(data []byte, now time.Time) (*File, error) {
	r := NewReader(data)
	if err := r.Skip(signatureSize); err != nil {
		return nil, err
	}

	h, err := parseHeader(r, now)
	if err != nil {
		return nil, err
	}

	ds := int64(h.DSCount)
	if ds*datasourceRecordSize > int64(r.Remaining()) {
		return nil, errs.ErrInvalidHeader
	}
	// Each archive needs at least its definition plus per-datasource state
	// and an empty robin per datasource.
	if int64(h.ArcCount)*(archiveDefSize+ds*(arcStateSize+4)) > int64(r.Remaining()) {
		return nil, errs.ErrInvalidArchiveCount
	}

	datasources := make([]Datasource, 0, h.DSCount)
	for i := uint32(0); i < h.DSCount; i++ {
		d, err := parseDatasource(r)
		if err != nil {
			return nil, err
		}
		datasources = append(datasources, d)
	}

	archives := make([]Archive, 0, h.ArcCount)
	for i := uint32(0); i < h.ArcCount; i++ {
		a, err := parseArchive(r, ds)
		if err != nil {
			return nil, err
		}
		archives = append(archives, a)
	}

	return &File{Header: h, Datasources: datasources, Archives: archives}, nil
}

// parseArchive reads one archive definition plus the robin buffer of the
// first datasource, skipping everything a reader of the first series does
// not need.
func parseArchive(r *Reader, dsCount int64) (Archive, error) {
	// Consolidation function name and xff only matter to a writer; the
	// stored rows are already consolidated.
	if err := r.Skip(stringFieldSize + 8); err != nil {
		return Archive{}, err
	}

	var a Archive
	var err error
	if a.Steps, err = r.Uint32(); err != nil {
		return Archive{}, err
	}
	if a.Rows, err = r.Uint32(); err != nil {
		return Archive{}, err
	}

	// Reject a row count whose robins cannot fit in the remaining bytes
	// before allocating anything.
	rows := int64(a.Rows)
	robins := dsCount
	if robins == 0 {
		robins = 1 // the first robin is present even in a degenerate file
	}
	needed := dsCount*arcStateSize + robins*(4+rows*8)
	if needed > int64(r.Remaining()) {
		return Archive{}, errs.ErrInvalidArchiveCount
	}

	if err = r.Skip(int(dsCount) * arcStateSize); err != nil {
		return Archive{}, err
	}

	if a.Pointer, err = r.Uint32(); err != nil {
		return Archive{}, err
	}
	values, err := r.Float64Slice(int(a.Rows))
	if err != nil {
		return Archive{}, err
	}
	a.Values = rotate(values, a.Pointer)

	// Robins of the remaining datasources are not extracted.
	for d := int64(1); d < dsCount; d++ {
		if err = r.Skip(int(4 + rows*8)); err != nil {
			return Archive{}, err
		}
	}

	return a, nil
}

// ParseSeries parses a snapshot and extracts the sample sequence of the
// archive best matching the requested period.
//
// Returns errs.ErrNoUsableData when the snapshot contains no archives or the
// selected archive holds no finite values; the caller is expected to fall
// back to Scan.
func ParseSeries(data []byte, period series.Period, now time.Time) ([]series.Sample, error) {
	f, err := Parse(data, now)
	if err != nil {
		return nil, err
	}

	arc, err := SelectArchive(f.Archives, f.Header.Step, period)
	if err != nil {
		return nil, err
	}

	samples := arc.Samples(f.Header)
	if len(samples) == 0 {
		return nil, errs.ErrNoUsableData
	}

	return samples, nil
}
