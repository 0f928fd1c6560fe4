package hash

import "github.com/cespare/xxhash/v2"

// Fingerprint computes the xxHash64 of the given bytes.
//
// It identifies snapshot content: batch chart generation renders several
// periods from one file and uses the fingerprint as the cache key for the
// parsed result.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// ID computes the xxHash64 of the given string, used for stable datasource
// name identifiers.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}
