// Package rrdchart extracts time-series data from round-robin database
// snapshots (the RRD4J on-disk format) and prepares it for visualization.
//
// The pipeline interprets the snapshot's big-endian binary layout, selects
// the archive best matching a requested period, falls back to a heuristic
// byte scan when structured parsing yields nothing usable, downsamples the
// series to a point budget and computes a presentable axis range plus
// time-axis labels. Rendering itself is out of scope: the output is plain
// timestamp/value pairs, axis bounds and label lists usable by any renderer.
//
// # Basic Usage
//
// Extracting and preparing a day chart from a snapshot file:
//
//	import "github.com/rrdkit/rrdchart"
//
//	data, _ := os.ReadFile("temperature.rrd")
//	now := time.Now()
//
//	snap, err := rrdchart.OpenSnapshot(data, now)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, labels, err := snap.ProcessedSeries(series.PeriodDay, 0)
//	if err != nil {
//	    log.Fatal(err) // no usable data in the snapshot
//	}
//	for _, s := range result.Samples {
//	    fmt.Printf("ts=%d val=%f\n", s.Ts, s.Val)
//	}
//
// Compressed snapshot archives (gzip, zstd, s2, lz4) are detected and
// decompressed transparently by OpenSnapshot.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the rrd and
// chart packages, simplifying the common extract-and-prepare flow. For
// fine-grained control (custom archive selection, raw parse results), use
// those packages directly.
//
// All operations are pure and stateless; concurrent extraction from
// different snapshots needs no synchronization, and a Snapshot is read-only
// after OpenSnapshot.
package rrdchart

import (
	"errors"
	"time"

	"github.com/rrdkit/rrdchart/chart"
	"github.com/rrdkit/rrdchart/compress"
	"github.com/rrdkit/rrdchart/errs"
	"github.com/rrdkit/rrdchart/internal/hash"
	"github.com/rrdkit/rrdchart/rrd"
	"github.com/rrdkit/rrdchart/series"
)

// ParseSeries extracts the first datasource's samples from a structured
// snapshot, selecting the archive best matching the period.
//
// On failure the caller should fall back to ScanSeries; ExtractSeries does
// exactly that.
func ParseSeries(data []byte, period series.Period, now time.Time) ([]series.Sample, error) {
	return rrd.ParseSeries(data, period, now)
}

// ScanSeries runs the heuristic fallback extractor over raw snapshot bytes,
// synthesizing one-minute timestamps ending at now.
func ScanSeries(data []byte, now time.Time) ([]series.Sample, error) {
	return rrd.Scan(data, now)
}

// ExtractSeries runs the full extraction flow: structured parse first, the
// heuristic scanner when parsing fails or yields nothing.
//
// A scanner failure is terminal and surfaces as errs.ErrNoUsableData.
func ExtractSeries(data []byte, period series.Period, now time.Time) ([]series.Sample, error) {
	samples, err := rrd.ParseSeries(data, period, now)
	if err == nil {
		return samples, nil
	}

	return rrd.Scan(data, now)
}

// Resample prepares an extracted sample sequence for rendering: window
// filter, downsample to the point budget (DefaultMaxPoints when maxPoints
// is non-positive) and nice Y-range computation.
func Resample(samples []series.Sample, period series.Period, maxPoints int, now time.Time) chart.Result {
	return chart.Resample(samples, period, maxPoints, now)
}

// GenerateLabels produces time-axis tick labels for a processed sequence.
func GenerateLabels(samples []series.Sample, period series.Period) []chart.AxisLabel {
	return chart.Labels(samples, period)
}

// Snapshot is a decompressed, fingerprinted snapshot parsed once and
// queried per period.
//
// Batch chart generation renders several periods (hour, day, week, ...)
// from one file; Snapshot avoids re-reading and re-parsing the bytes for
// each. It is read-only after OpenSnapshot and safe for concurrent period
// queries.
type Snapshot struct {
	raw         []byte
	fingerprint uint64
	compression compress.Compression
	file        *rrd.File // nil when the structured parse failed
	now         time.Time
}

// OpenSnapshot decompresses (if needed) and parses a snapshot.
//
// The structured parse is attempted eagerly but its failure is not an
// error here: Series falls back to the heuristic scanner per period. Only
// decompression failures are reported, wrapped with errs.ErrCorruptSnapshot.
//
// Parameters:
//   - data: Snapshot bytes as read from disk, optionally compressed
//   - now: Clock used for header clamping, window filtering and synthetic
//     timestamps
func OpenSnapshot(data []byte, now time.Time) (*Snapshot, error) {
	raw, compression, err := compress.Decompress(data)
	if err != nil {
		return nil, err
	}

	s := &Snapshot{
		raw:         raw,
		fingerprint: hash.Fingerprint(raw),
		compression: compression,
		now:         now,
	}

	if file, err := rrd.Parse(raw, now); err == nil {
		s.file = file
	}

	return s, nil
}

// Fingerprint returns the xxHash64 of the decompressed snapshot content,
// usable as a cache key identifying the snapshot across chart runs.
func (s *Snapshot) Fingerprint() uint64 {
	return s.fingerprint
}

// Compression returns the compression format the snapshot arrived in.
func (s *Snapshot) Compression() compress.Compression {
	return s.compression
}

// Header returns the parsed snapshot header. ok is false when the
// structured parse failed and only the heuristic scanner is available.
func (s *Snapshot) Header() (h rrd.Header, ok bool) {
	if s.file == nil {
		return rrd.Header{}, false
	}

	return s.file.Header, true
}

// Datasources returns the parsed datasource metadata, nil when the
// structured parse failed.
func (s *Snapshot) Datasources() []rrd.Datasource {
	if s.file == nil {
		return nil
	}

	return s.file.Datasources
}

// Series extracts the sample sequence for the requested period, falling
// back to the heuristic scanner when the structured parse failed or the
// selected archive holds no finite values.
func (s *Snapshot) Series(period series.Period) ([]series.Sample, error) {
	if s.file != nil {
		if arc, err := rrd.SelectArchive(s.file.Archives, s.file.Header.Step, period); err == nil {
			if samples := arc.Samples(s.file.Header); len(samples) > 0 {
				return samples, nil
			}
		}
	}

	samples, err := rrd.Scan(s.raw, s.now)
	if err != nil {
		return nil, errs.ErrNoUsableData
	}

	return samples, nil
}

// ProcessedSeries extracts, resamples and labels the series for one period
// in a single call.
//
// maxPoints <= 0 selects chart.DefaultMaxPoints.
func (s *Snapshot) ProcessedSeries(period series.Period, maxPoints int) (chart.Result, []chart.AxisLabel, error) {
	samples, err := s.Series(period)
	if err != nil {
		return chart.Result{}, nil, err
	}

	result := chart.Resample(samples, period, maxPoints, s.now)

	return result, chart.Labels(result.Samples, period), nil
}

// IsNoUsableData reports whether an extraction error means the snapshot
// contains nothing extractable (as opposed to a recoverable parse problem).
func IsNoUsableData(err error) bool {
	return errors.Is(err, errs.ErrNoUsableData)
}
