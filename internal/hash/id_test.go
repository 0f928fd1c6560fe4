package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	data := []byte("snapshot content")

	require.Equal(t, Fingerprint(data), Fingerprint(data))
	require.NotEqual(t, Fingerprint(data), Fingerprint([]byte("snapshot content.")))
	require.NotZero(t, Fingerprint(nil))
}

func TestID(t *testing.T) {
	require.Equal(t, ID("temperature"), ID("temperature"))
	require.NotEqual(t, ID("temperature"), ID("humidity"))
}
