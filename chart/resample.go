package chart

import (
	"math"
	"time"

	"github.com/rrdkit/rrdchart/series"
)

// DefaultMaxPoints is the point budget used when the caller passes a
// non-positive maximum.
const DefaultMaxPoints = 500

// Range padding and snapping parameters.
const (
	rangePadding = 0.15 // fraction of the span added on both sides
	minRangeStep = 0.01 // floor for the nice snapping step
)

// Result is a processed series ready for a renderer: a chronological sample
// sequence no longer than the point budget plus one, and the Y display
// range. YMin <= YMax always; the bounds may be padded beyond the data's
// true extremes.
type Result struct {
	Samples []series.Sample
	YMin    float64
	YMax    float64
}

// Resample restricts samples to the requested window, downsamples them to
// the point budget and computes a nice Y range.
//
// Steps, all order-preserving:
//
//  1. Keep samples with timestamps inside the last period duration. When the
//     window is empty, the most recent period.FallbackSamples() samples are
//     used instead, a designed degradation (assuming one-minute sampling)
//     rather than an error.
//  2. When the survivor count exceeds the budget, evenly-spaced samples are
//     selected by fractional index; the final sample is force-appended when
//     the selection would drop it, so the most recent point survives. The
//     result length is at most maxPoints+1.
//  3. The Y range is computed from exactly the emitted set, padded by 15%
//     and snapped outward to a power-of-ten-aligned step.
//
// Empty input yields an empty sequence with the default (0, 100) range.
//
// Parameters:
//   - samples: Chronological sample sequence
//   - period: Requested window
//   - maxPoints: Point budget (<= 0 selects DefaultMaxPoints)
//   - now: Window anchor
func Resample(samples []series.Sample, period series.Period, maxPoints int, now time.Time) Result {
	if len(samples) == 0 {
		return Result{YMin: 0, YMax: 100}
	}
	if maxPoints <= 0 {
		maxPoints = DefaultMaxPoints
	}

	cutoff := now.Unix() - period.Seconds()

	filtered := make([]series.Sample, 0, len(samples))
	dataMin := math.Inf(1)
	dataMax := math.Inf(-1)
	for _, s := range samples {
		if s.Ts < cutoff {
			continue
		}
		filtered = append(filtered, s)
		dataMin = math.Min(dataMin, s.Val)
		dataMax = math.Max(dataMax, s.Val)
	}

	if len(filtered) == 0 {
		n := period.FallbackSamples()
		if n > len(samples) {
			n = len(samples)
		}
		filtered = samples[len(samples)-n:]
		dataMin = math.Inf(1)
		dataMax = math.Inf(-1)
		for _, s := range filtered {
			dataMin = math.Min(dataMin, s.Val)
			dataMax = math.Max(dataMax, s.Val)
		}
	}

	if len(filtered) > maxPoints {
		step := float64(len(filtered)) / float64(maxPoints)
		picked := make([]series.Sample, 0, maxPoints+1)
		dataMin = math.Inf(1)
		dataMax = math.Inf(-1)

		last := -1
		for i := 0; i < maxPoints; i++ {
			idx := int(float64(i) * step)
			if idx >= len(filtered) {
				break
			}
			s := filtered[idx]
			picked = append(picked, s)
			dataMin = math.Min(dataMin, s.Val)
			dataMax = math.Max(dataMax, s.Val)
			last = idx
		}

		// The most recent point is never dropped.
		if last != len(filtered)-1 {
			s := filtered[len(filtered)-1]
			picked = append(picked, s)
			dataMin = math.Min(dataMin, s.Val)
			dataMax = math.Max(dataMax, s.Val)
		}

		filtered = picked
	}

	yMin, yMax := niceRange(dataMin, dataMax)

	return Result{Samples: filtered, YMin: yMin, YMax: yMax}
}

// niceRange expands a raw min/max into a presentable axis range: degenerate
// spans widened, 15% padding on both sides, bounds snapped outward to a
// power-of-ten-aligned step.
func niceRange(dataMin, dataMax float64) (float64, float64) {
	if math.IsInf(dataMin, 1) {
		return 0, 100
	}

	span := dataMax - dataMin
	if span == 0 {
		if dataMax != 0 {
			span = math.Abs(dataMax) * 0.1
		} else {
			span = 1
		}
	}

	yMin := dataMin - span*rangePadding
	yMax := dataMax + span*rangePadding

	step := math.Pow(10, math.Floor(math.Log10(span))) / 10
	if step < minRangeStep {
		step = minRangeStep
	}
	yMin = math.Floor(yMin/step) * step
	yMax = math.Ceil(yMax/step) * step

	if yMin == yMax {
		yMin--
		yMax++
	}

	return yMin, yMax
}
