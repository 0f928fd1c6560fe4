// Package series defines the data model shared by the rrd parsing and chart
// preparation packages: individual samples and the symbolic time periods that
// drive archive selection, window filtering and label granularity.
package series

import "strings"

// Sample is a single extracted data point.
//
// Timestamps are Unix epoch seconds. Sample sequences produced by the rrd
// package are chronological and never contain NaN or infinite values.
type Sample struct {
	// Ts is the sample timestamp in Unix epoch seconds.
	Ts int64
	// Val is the sample value.
	Val float64
}

// Period is a symbolic request for a time window.
//
// The zero value (PeriodUnknown) is valid: it behaves like PeriodDay for
// duration-based decisions and selects the generic label layout.
type Period uint8

const (
	PeriodUnknown Period = 0x0 // PeriodUnknown represents an unrecognized period tag.
	PeriodHour    Period = 0x1 // PeriodHour represents the last hour.
	PeriodDay     Period = 0x2 // PeriodDay represents the last day.
	PeriodWeek    Period = 0x3 // PeriodWeek represents the last week.
	PeriodMonth   Period = 0x4 // PeriodMonth represents the last 30 days.
	PeriodYear    Period = 0x5 // PeriodYear represents the last 365 days.
)

// Period durations in seconds.
const (
	hourSeconds  = 3600
	daySeconds   = 24 * 3600
	weekSeconds  = 7 * 24 * 3600
	monthSeconds = 30 * 24 * 3600
	yearSeconds  = 365 * 24 * 3600
)

// ParsePeriod maps a period tag to a Period.
//
// It accepts the single-letter tags used by rrd charting tools ("h", "D",
// "W", "M", "Y") as well as word forms ("hour", "day", "week", "month",
// "year", case-insensitive). Anything else yields PeriodUnknown, which
// downstream code treats as a day-long window with generic labels.
func ParsePeriod(tag string) Period {
	switch tag {
	case "h", "H":
		return PeriodHour
	case "D", "d":
		return PeriodDay
	case "W", "w":
		return PeriodWeek
	case "M":
		return PeriodMonth
	case "Y", "y":
		return PeriodYear
	}

	switch strings.ToLower(tag) {
	case "hour":
		return PeriodHour
	case "day":
		return PeriodDay
	case "week":
		return PeriodWeek
	case "month":
		return PeriodMonth
	case "year":
		return PeriodYear
	default:
		return PeriodUnknown
	}
}

// Seconds returns the period duration in seconds.
//
// Unrecognized periods default to one day so an unknown tag still renders a
// useful chart.
func (p Period) Seconds() int64 {
	switch p {
	case PeriodHour:
		return hourSeconds
	case PeriodWeek:
		return weekSeconds
	case PeriodMonth:
		return monthSeconds
	case PeriodYear:
		return yearSeconds
	case PeriodDay, PeriodUnknown:
		return daySeconds
	default:
		return daySeconds
	}
}

// FallbackSamples returns the number of most-recent samples to keep when the
// requested window contains no data at all.
//
// The counts assume a dominant one-minute sampling interval (1 day = 1440
// samples). That assumption does not hold for archives with coarser steps;
// the counts are a compatibility heuristic, not a guarantee.
func (p Period) FallbackSamples() int {
	switch p {
	case PeriodHour:
		return 60
	case PeriodWeek:
		return 2016
	case PeriodMonth:
		return 4320
	case PeriodYear:
		return 8760
	default:
		return 1440
	}
}

func (p Period) String() string {
	switch p {
	case PeriodHour:
		return "hour"
	case PeriodDay:
		return "day"
	case PeriodWeek:
		return "week"
	case PeriodMonth:
		return "month"
	case PeriodYear:
		return "year"
	default:
		return "unknown"
	}
}
