package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetFloat64Slice(t *testing.T) {
	buf, release := GetFloat64Slice(128)
	require.Empty(t, buf)
	require.GreaterOrEqual(t, cap(buf), 128)

	for i := 0; i < 128; i++ {
		buf = append(buf, float64(i))
	}
	require.Len(t, buf, 128)

	release()

	// A subsequent borrow starts empty even when the pool hands the same
	// backing array back.
	buf2, release2 := GetFloat64Slice(64)
	defer release2()
	require.Empty(t, buf2)
	require.GreaterOrEqual(t, cap(buf2), 64)
}
