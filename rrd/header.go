package rrd

import "time"

// Layout sizes in bytes.
const (
	signatureSize        = 40
	headerSize           = 24
	datasourceRecordSize = 128
	stringFieldSize      = 40
	archiveDefSize       = 56 // consolidation name 40 + xff 8 + steps 4 + rows 4
	arcStateSize         = 16 // accumValue 8 + nanSteps 8, per datasource
)

// Clamping bounds for implausible header fields. Snapshots in the wild carry
// garbage here more often than anywhere else, so out-of-range values are
// replaced instead of rejected.
const (
	minStep     = 1
	maxStep     = 86400
	defaultStep = 60

	minLastUpdate = 1577836800 // 2020-01-01T00:00:00Z
	maxLastUpdate = 2000000000 // 2033-05-18T03:33:20Z
)

// Header is the fixed 24-byte header following the snapshot signature.
type Header struct {
	// Step is the base sampling interval in seconds. Values outside
	// [1, 86400] are reset to 60.
	Step uint64
	// DSCount is the number of datasource records.
	DSCount uint32
	// ArcCount is the number of archives.
	ArcCount uint32
	// LastUpdate is the epoch-second timestamp of the most recent update.
	// Values outside [1577836800, 2000000000] are reset to now.
	LastUpdate uint64
}

// parseHeader reads the header fields and applies the clamping rules.
// The clock is injected so the lastUpdate clamp stays deterministic in tests.
func parseHeader(r *Reader, now time.Time) (Header, error) {
	var h Header
	var err error

	if h.Step, err = r.Uint64(); err != nil {
		return Header{}, err
	}
	if h.DSCount, err = r.Uint32(); err != nil {
		return Header{}, err
	}
	if h.ArcCount, err = r.Uint32(); err != nil {
		return Header{}, err
	}
	if h.LastUpdate, err = r.Uint64(); err != nil {
		return Header{}, err
	}

	if h.Step < minStep || h.Step > maxStep {
		h.Step = defaultStep
	}
	if h.LastUpdate < minLastUpdate || h.LastUpdate > maxLastUpdate {
		h.LastUpdate = uint64(now.Unix())
	}

	return h, nil
}
