package rrd

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/rrdkit/rrdchart/errs"
	"github.com/rrdkit/rrdchart/internal/pool"
	"github.com/rrdkit/rrdchart/series"
)

// Heuristic scan parameters.
const (
	// scanStart skips the region where the header and datasource metadata
	// of a conforming file would sit.
	scanStart = 200
	// minRunLength is the minimum number of consecutive plausible values a
	// block needs to be retained.
	minRunLength = 30
	// syntheticStep is the spacing of synthesized timestamps, in seconds.
	// No real timestamps are recoverable in scan mode; one minute is the
	// dominant sampling interval of the snapshots this tool targets.
	syntheticStep = 60

	// Plausible sensor values lie strictly inside this magnitude interval.
	minPlausibleMagnitude = 0.0001
	maxPlausibleMagnitude = 10000
)

// scanState is the state of the run-detection machine.
type scanState uint8

const (
	stateSeeking      scanState = iota // outside a plausible run
	stateAccumulating                  // inside a plausible run
)

// plausible reports whether a double could be a real sensor reading.
func plausible(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	mag := math.Abs(v)

	return mag > minPlausibleMagnitude && mag < maxPlausibleMagnitude
}

// Scan is the fallback extractor for snapshots the structured parser cannot
// handle (unexpected format variants, corrupt metadata).
//
// It walks the raw bytes from a fixed offset past the expected header region
// as consecutive 8-byte big-endian doubles and collects runs of plausible
// values. Runs of at least 30 values form blocks; the longest block wins,
// first occurrence breaking ties. Timestamps are synthesized at one-minute
// spacing ending at now, which makes the result an explicit approximation,
// inferior to structured parsing.
//
// Parameters:
//   - data: Raw snapshot bytes
//   - now: End anchor for the synthesized timestamps
//
// Returns:
//   - []series.Sample: Samples of the selected block
//   - error: errs.ErrNoUsableData when no block qualifies (terminal for
//     the whole extraction)
func Scan(data []byte, now time.Time) ([]series.Sample, error) {
	acc, cleanup := pool.GetFloat64Slice(1024)
	defer cleanup()

	var best []float64
	flush := func() {
		if len(acc) >= minRunLength && len(acc) > len(best) {
			best = append([]float64(nil), acc...)
		}
		acc = acc[:0]
	}

	state := stateSeeking
	for off := scanStart; off+8 <= len(data); off += 8 {
		v := math.Float64frombits(binary.BigEndian.Uint64(data[off:]))
		if plausible(v) {
			state = stateAccumulating
			acc = append(acc, v)
			continue
		}
		if state == stateAccumulating {
			flush()
			state = stateSeeking
		}
	}
	if state == stateAccumulating {
		flush()
	}

	if len(best) == 0 {
		return nil, errs.ErrNoUsableData
	}

	end := now.Unix()
	samples := make([]series.Sample, len(best))
	for i, v := range best {
		samples[i] = series.Sample{
			Ts:  end - int64(len(best)-i-1)*syntheticStep,
			Val: v,
		}
	}

	return samples, nil
}
