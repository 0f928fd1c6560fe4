package rrd

import (
	"math"

	"github.com/rrdkit/rrdchart/series"
)

// Archive is one fixed-size circular buffer of consolidated samples at a
// specific resolution.
type Archive struct {
	// Steps multiplies the header step to give this archive's sample
	// interval in seconds.
	Steps uint32
	// Rows is the circular buffer length.
	Rows uint32
	// Pointer is the index of the next slot the writer would overwrite.
	Pointer uint32
	// Values holds the buffer contents in chronological order, oldest
	// first, newest last.
	Values []float64
}

// SampleStep returns the archive's sample interval in seconds for the given
// header step.
func (a *Archive) SampleStep(step uint64) uint64 {
	return step * uint64(a.Steps)
}

// Coverage returns the total time span the archive covers, in seconds.
func (a *Archive) Coverage(step uint64) uint64 {
	return uint64(a.Rows) * a.SampleStep(step)
}

// Samples materializes the archive's values as timestamped samples.
//
// The newest value sits at the end of the rotated buffer and is anchored at
// the header's lastUpdate; earlier values step back by the sample interval.
// NaN and infinite values are dropped without renumbering the survivors, so
// gaps in the spacing are possible but ordering is preserved.
func (a *Archive) Samples(h Header) []series.Sample {
	step := int64(a.SampleStep(h.Step))
	last := int64(h.LastUpdate)
	n := len(a.Values)

	samples := make([]series.Sample, 0, n)
	for i, v := range a.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		samples = append(samples, series.Sample{
			Ts:  last - int64(n-i-1)*step,
			Val: v,
		})
	}

	return samples
}

// rotate reorders a circular buffer into chronological order.
//
// The write pointer marks the next slot to overwrite, so values[pointer:]
// are the oldest entries and values[:pointer] the newest. Pointers outside
// (0, len) mean the buffer is already in order and is returned as-is.
func rotate(values []float64, pointer uint32) []float64 {
	p := int(pointer)
	if p <= 0 || p >= len(values) {
		return values
	}

	ordered := make([]float64, 0, len(values))
	ordered = append(ordered, values[p:]...)
	ordered = append(ordered, values[:p]...)

	return ordered
}
