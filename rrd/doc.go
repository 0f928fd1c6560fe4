// Package rrd extracts time-series data from round-robin database snapshots
// in the RRD4J on-disk format.
//
// The format is an undocumented, versioned, big-endian binary layout:
//
//   - signature (40 bytes, skipped rather than validated)
//   - header: step (u64), dsCount (u32), arcCount (u32), lastUpdate (u64)
//   - dsCount datasource records (128 bytes each)
//   - per archive: definition (consolidation name 40 + xff 8, skipped;
//     steps u32; rows u32), dsCount archive states (16 bytes each, skipped),
//     then one robin buffer per datasource (write pointer u32 + rows doubles)
//
// Only the first datasource's robin buffers are materialized; robins for the
// remaining datasources are skipped wholesale. Each robin is a fixed-size
// circular buffer; the write pointer marks the next slot to be overwritten,
// so the chronological order is values[pointer:] followed by values[:pointer].
//
// Parse is strict: any read past the buffer end or count implying one fails
// with a sentinel error instead of producing a partial result. Callers treat
// a parse failure as "try Scan", the heuristic fallback that looks for
// plausible runs of doubles in the raw bytes and synthesizes timestamps.
package rrd
