package rrd

import (
	"github.com/rrdkit/rrdchart/errs"
	"github.com/rrdkit/rrdchart/series"
)

// coverageThreshold is the fraction of the requested period an archive must
// cover to be selected outright. Accepting 80% keeps slightly-short archives
// usable; it is not a guarantee that the window is fully covered.
const coverageThreshold = 0.8

// SelectArchive chooses the archive that best matches the requested period.
//
// Scanning in file order, the first archive whose total coverage
// (rows * step * steps) reaches 80% of the period duration wins; file order
// runs fine-to-coarse in practice, so this favors the finest resolution that
// still spans the window. When no archive is long enough the one with the
// greatest coverage is used instead (first occurrence wins ties), degrading
// to "best available" rather than failing.
//
// Returns:
//   - *Archive: Selected archive (points into the archives slice)
//   - error: errs.ErrNoUsableData when archives is empty
func SelectArchive(archives []Archive, step uint64, period series.Period) (*Archive, error) {
	if len(archives) == 0 {
		return nil, errs.ErrNoUsableData
	}

	required := float64(period.Seconds())
	for i := range archives {
		if float64(archives[i].Coverage(step)) >= required*coverageThreshold {
			return &archives[i], nil
		}
	}

	best := 0
	for i := 1; i < len(archives); i++ {
		if archives[i].Coverage(step) > archives[best].Coverage(step) {
			best = i
		}
	}

	return &archives[best], nil
}
