package rrd

import "github.com/rrdkit/rrdchart/internal/hash"

// Datasource is the metadata of one datasource record.
//
// Values are still extracted from the first datasource only; the metadata of
// the others is surfaced so callers can label what the snapshot contains.
type Datasource struct {
	// Name is the datasource name (up to 20 chars).
	Name string
	// Type is the datasource type name, e.g. "GAUGE" or "COUNTER".
	Type string
	// Heartbeat is the maximum accepted silence in seconds.
	Heartbeat uint64
	// Min and Max are the accepted value bounds (NaN when unbounded).
	Min float64
	Max float64
	// LastValue is the most recently stored raw value (NaN when unknown).
	LastValue float64
}

// ID returns a stable 64-bit identifier derived from the datasource name.
func (d Datasource) ID() uint64 {
	return hash.ID(d.Name)
}

// parseDatasource reads one 128-byte datasource record. The trailing
// accumulated-value and nan-seconds state fields are skipped; they only
// matter to a writer.
func parseDatasource(r *Reader) (Datasource, error) {
	var d Datasource
	var err error

	if d.Name, err = r.String(stringFieldSize); err != nil {
		return Datasource{}, err
	}
	if d.Type, err = r.String(stringFieldSize); err != nil {
		return Datasource{}, err
	}
	if d.Heartbeat, err = r.Uint64(); err != nil {
		return Datasource{}, err
	}
	if d.Min, err = r.Float64(); err != nil {
		return Datasource{}, err
	}
	if d.Max, err = r.Float64(); err != nil {
		return Datasource{}, err
	}
	if d.LastValue, err = r.Float64(); err != nil {
		return Datasource{}, err
	}
	if err = r.Skip(16); err != nil { // accumValue + nanSeconds
		return Datasource{}, err
	}

	return d, nil
}
