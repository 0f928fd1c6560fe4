package rrd

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rrdkit/rrdchart/errs"
	"github.com/rrdkit/rrdchart/series"
)

var testNow = time.Unix(1700000000, 0)

func singleArchiveSpec(rows uint32, values []float64, pointer uint32) snapshotSpec {
	return snapshotSpec{
		step:       60,
		lastUpdate: 1700000000,
		datasources: []dsSpec{
			{name: "temp", dsType: "GAUGE", heartbeat: 120, min: math.NaN(), max: math.NaN(), lastValue: values[len(values)-1]},
		},
		archives: []arcSpec{
			{steps: 1, rows: rows, pointer: pointer, values: [][]float64{values}},
		},
	}
}

func TestParse_HeaderAndDatasources(t *testing.T) {
	data := buildSnapshot(singleArchiveSpec(3, []float64{1, 2, 3}, 0))

	f, err := Parse(data, testNow)
	require.NoError(t, err)

	require.Equal(t, uint64(60), f.Header.Step)
	require.Equal(t, uint32(1), f.Header.DSCount)
	require.Equal(t, uint32(1), f.Header.ArcCount)
	require.Equal(t, uint64(1700000000), f.Header.LastUpdate)

	require.Len(t, f.Datasources, 1)
	ds := f.Datasources[0]
	require.Equal(t, "temp", ds.Name)
	require.Equal(t, "GAUGE", ds.Type)
	require.Equal(t, uint64(120), ds.Heartbeat)
	require.True(t, math.IsNaN(ds.Min))
	require.NotZero(t, ds.ID())
	require.Equal(t, ds.ID(), f.Datasources[0].ID())
}

func TestParse_HeaderClamping(t *testing.T) {
	t.Run("Implausible step resets to 60", func(t *testing.T) {
		spec := singleArchiveSpec(2, []float64{1, 2}, 0)
		spec.step = 500000 // > 86400
		f, err := Parse(buildSnapshot(spec), testNow)
		require.NoError(t, err)
		require.Equal(t, uint64(60), f.Header.Step)
	})

	t.Run("Implausible lastUpdate resets to now", func(t *testing.T) {
		spec := singleArchiveSpec(2, []float64{1, 2}, 0)
		spec.lastUpdate = 12345 // before 2020
		f, err := Parse(buildSnapshot(spec), testNow)
		require.NoError(t, err)
		require.Equal(t, uint64(testNow.Unix()), f.Header.LastUpdate)
	})
}

func TestParse_RobinRotation(t *testing.T) {
	// File order [30, 10, 20] with pointer 1: slot 1 is the next write, so
	// chronological order is [10, 20, 30].
	data := buildSnapshot(singleArchiveSpec(3, []float64{30, 10, 20}, 1))

	f, err := Parse(data, testNow)
	require.NoError(t, err)
	require.Len(t, f.Archives, 1)
	require.Equal(t, []float64{10, 20, 30}, f.Archives[0].Values)
}

func TestParse_PointerOutOfRangeKeepsOrder(t *testing.T) {
	for _, pointer := range []uint32{0, 3, 7} {
		data := buildSnapshot(singleArchiveSpec(3, []float64{1, 2, 3}, pointer))
		f, err := Parse(data, testNow)
		require.NoError(t, err)
		require.Equal(t, []float64{1, 2, 3}, f.Archives[0].Values)
	}
}

func TestParse_MultipleDatasourcesFirstRobinOnly(t *testing.T) {
	spec := snapshotSpec{
		step:       60,
		lastUpdate: 1700000000,
		datasources: []dsSpec{
			{name: "power", dsType: "GAUGE"},
			{name: "energy", dsType: "COUNTER"},
		},
		archives: []arcSpec{
			{steps: 1, rows: 2, pointer: 0, values: [][]float64{{1.5, 2.5}, {99, 99}}},
			{steps: 30, rows: 2, pointer: 0, values: [][]float64{{3.5, 4.5}, {99, 99}}},
		},
	}

	f, err := Parse(buildSnapshot(spec), testNow)
	require.NoError(t, err)
	require.Len(t, f.Datasources, 2)
	require.Len(t, f.Archives, 2)
	require.Equal(t, []float64{1.5, 2.5}, f.Archives[0].Values)
	require.Equal(t, []float64{3.5, 4.5}, f.Archives[1].Values)
}

func TestParse_Malformed(t *testing.T) {
	t.Run("Empty input", func(t *testing.T) {
		_, err := Parse(nil, testNow)
		require.ErrorIs(t, err, errs.ErrTruncatedInput)
	})

	t.Run("Truncated header", func(t *testing.T) {
		_, err := Parse(make([]byte, 50), testNow)
		require.ErrorIs(t, err, errs.ErrTruncatedInput)
	})

	t.Run("Datasource count beyond buffer", func(t *testing.T) {
		data := buildSnapshot(singleArchiveSpec(2, []float64{1, 2}, 0))
		// Overwrite dsCount with a count the buffer cannot hold.
		data[48] = 0xff
		data[49] = 0xff
		_, err := Parse(data, testNow)
		require.ErrorIs(t, err, errs.ErrInvalidHeader)
	})

	t.Run("Archive count beyond buffer", func(t *testing.T) {
		data := buildSnapshot(singleArchiveSpec(2, []float64{1, 2}, 0))
		data[52] = 0xff
		data[53] = 0xff
		_, err := Parse(data, testNow)
		require.ErrorIs(t, err, errs.ErrInvalidArchiveCount)
	})

	t.Run("Row count beyond buffer", func(t *testing.T) {
		data := buildSnapshot(singleArchiveSpec(2, []float64{1, 2}, 0))
		truncated := data[:len(data)-8]
		_, err := Parse(truncated, testNow)
		require.ErrorIs(t, err, errs.ErrInvalidArchiveCount)
	})
}

func TestParseSeries_TimestampBackComputation(t *testing.T) {
	// lastUpdate 1000300 is below the plausible range and is clamped to the
	// injected clock; anchoring the clock at the same instant keeps the
	// fabricated value, so the expected timestamps are exact.
	now := time.Unix(1000300, 0)
	spec := snapshotSpec{
		step:       60,
		lastUpdate: 1000300,
		datasources: []dsSpec{
			{name: "t", dsType: "GAUGE"},
		},
		archives: []arcSpec{
			{steps: 1, rows: 5, pointer: 0, values: [][]float64{{1, 2, 3, 4, 5}}},
		},
	}

	samples, err := ParseSeries(buildSnapshot(spec), series.PeriodHour, now)
	require.NoError(t, err)
	require.Len(t, samples, 5)

	wantTs := []int64{1000060, 1000120, 1000180, 1000240, 1000300}
	for i, s := range samples {
		require.Equal(t, wantTs[i], s.Ts)
		require.Equal(t, float64(i+1), s.Val)
	}
}

func TestParseSeries_DropsNonFiniteWithoutRenumbering(t *testing.T) {
	values := []float64{1, math.NaN(), 3, math.Inf(1), 5}
	spec := singleArchiveSpec(5, values, 0)

	samples, err := ParseSeries(buildSnapshot(spec), series.PeriodHour, testNow)
	require.NoError(t, err)
	require.Len(t, samples, 3)

	// Timestamps keep their original slots; the gaps remain visible.
	last := int64(1700000000)
	require.Equal(t, last-4*60, samples[0].Ts)
	require.Equal(t, last-2*60, samples[1].Ts)
	require.Equal(t, last, samples[2].Ts)
	require.Equal(t, []float64{1, 3, 5}, []float64{samples[0].Val, samples[1].Val, samples[2].Val})
}

func TestParseSeries_AllNaN(t *testing.T) {
	values := []float64{math.NaN(), math.NaN(), math.NaN()}
	spec := singleArchiveSpec(3, values, 0)

	_, err := ParseSeries(buildSnapshot(spec), series.PeriodHour, testNow)
	require.ErrorIs(t, err, errs.ErrNoUsableData)
}

func TestParseSeries_NoArchives(t *testing.T) {
	spec := snapshotSpec{
		step:       60,
		lastUpdate: 1700000000,
		datasources: []dsSpec{
			{name: "t", dsType: "GAUGE"},
		},
	}

	_, err := ParseSeries(buildSnapshot(spec), series.PeriodDay, testNow)
	require.ErrorIs(t, err, errs.ErrNoUsableData)
}
