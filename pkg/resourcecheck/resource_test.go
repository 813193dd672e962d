package resourcecheck

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealMemoryReader(t *testing.T) {
	switch runtime.GOOS {
	case "linux", "darwin", "windows":
	default:
		t.Skipf("memory detection not supported on %s", runtime.GOOS)
	}

	total, err := (&RealMemoryReader{}).TotalMemory()
	require.NoError(t, err)
	assert.Greater(t, total, uint64(0))
}
