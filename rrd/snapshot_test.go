package rrd

import (
	"encoding/binary"
	"math"
	"unicode/utf16"
)

// Test fixture builders fabricating snapshot bytes in the on-disk layout.

type dsSpec struct {
	name      string
	dsType    string
	heartbeat uint64
	min, max  float64
	lastValue float64
}

type arcSpec struct {
	steps   uint32
	rows    uint32
	pointer uint32
	// values holds robin contents in file order (pre-rotation), one slice
	// per datasource; missing slices are filled with zeros.
	values [][]float64
}

type snapshotSpec struct {
	step        uint64
	lastUpdate  uint64
	datasources []dsSpec
	archives    []arcSpec
}

func appendString40(buf []byte, s string) []byte {
	chars := utf16.Encode([]rune(s))
	for i := 0; i < stringFieldSize/2; i++ {
		var c uint16
		if i < len(chars) {
			c = chars[i]
		}
		buf = binary.BigEndian.AppendUint16(buf, c)
	}

	return buf
}

func appendFloat64(buf []byte, v float64) []byte {
	return binary.BigEndian.AppendUint64(buf, math.Float64bits(v))
}

func buildSnapshot(spec snapshotSpec) []byte {
	buf := make([]byte, signatureSize) // zeroed signature, never validated

	buf = binary.BigEndian.AppendUint64(buf, spec.step)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(spec.datasources)))
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(spec.archives)))
	buf = binary.BigEndian.AppendUint64(buf, spec.lastUpdate)

	for _, ds := range spec.datasources {
		buf = appendString40(buf, ds.name)
		buf = appendString40(buf, ds.dsType)
		buf = binary.BigEndian.AppendUint64(buf, ds.heartbeat)
		buf = appendFloat64(buf, ds.min)
		buf = appendFloat64(buf, ds.max)
		buf = appendFloat64(buf, ds.lastValue)
		buf = append(buf, make([]byte, 16)...) // accumValue + nanSeconds
	}

	for _, arc := range spec.archives {
		buf = appendString40(buf, "AVERAGE")
		buf = appendFloat64(buf, 0.5) // xff
		buf = binary.BigEndian.AppendUint32(buf, arc.steps)
		buf = binary.BigEndian.AppendUint32(buf, arc.rows)

		buf = append(buf, make([]byte, len(spec.datasources)*arcStateSize)...)

		for d := range spec.datasources {
			buf = binary.BigEndian.AppendUint32(buf, arc.pointer)
			var values []float64
			if d < len(arc.values) {
				values = arc.values[d]
			}
			for i := 0; i < int(arc.rows); i++ {
				var v float64
				if i < len(values) {
					v = values[i]
				}
				buf = appendFloat64(buf, v)
			}
		}
	}

	return buf
}
