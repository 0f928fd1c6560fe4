package chart

import (
	"time"

	"github.com/rrdkit/rrdchart/series"
)

// AxisLabel is one time-axis tick: display text plus a percentage offset
// along the axis (0 at the first sample, 100 at the last).
type AxisLabel struct {
	Text string
	Pos  float64
}

// endLabelCutoff: when the last generated tick sits below this position, an
// extra label anchored at 100 is appended so the right edge is always
// labeled.
const endLabelCutoff = 95

// labelLayout returns the tick interval in seconds and the time layout for
// the period. The hour view tightens to 10-minute ticks when the series
// spans less than a full hour; unknown periods fall back to ten evenly
// spaced ticks.
func labelLayout(period series.Period, span int64) (int64, string) {
	switch period {
	case series.PeriodHour:
		if span < 3600 {
			return 600, "15:04"
		}
		return 900, "15:04"
	case series.PeriodDay:
		return 2 * 3600, "15:04"
	case series.PeriodWeek:
		return 24 * 3600, "Mon"
	case series.PeriodMonth:
		return 5 * 24 * 3600, "Jan 2"
	case series.PeriodYear:
		return 30 * 24 * 3600, "Jan"
	default:
		return span / 10, "15:04"
	}
}

// Labels generates time-axis tick labels for a processed sample sequence.
//
// Ticks walk from the first to the last timestamp at a period-appropriate
// interval, each carrying its percentage position along the span. A
// zero-length span produces a single tick at position 50. When the final
// generated tick lands below position 95, one more label for the true end
// timestamp is appended at 100.
//
// Returns nil for an empty sequence.
func Labels(samples []series.Sample, period series.Period) []AxisLabel {
	if len(samples) == 0 {
		return nil
	}

	start := samples[0].Ts
	end := samples[len(samples)-1].Ts
	span := end - start

	interval, layout := labelLayout(period, span)
	if interval <= 0 {
		interval = 1
	}

	var labels []AxisLabel
	for current := start; current <= end; current += interval {
		pos := 50.0
		if span > 0 {
			pos = float64(current-start) / float64(span) * 100
		}
		labels = append(labels, AxisLabel{
			Text: time.Unix(current, 0).Format(layout),
			Pos:  pos,
		})
	}

	if labels[len(labels)-1].Pos < endLabelCutoff {
		labels = append(labels, AxisLabel{
			Text: time.Unix(end, 0).Format(layout),
			Pos:  100,
		})
	}

	return labels
}
