//go:build !linux && !darwin && !windows

package resourcecheck

import (
	"fmt"
	"runtime"
)

func getSystemMemory() (uint64, error) {
	return 0, fmt.Errorf("memory check not supported on %s", runtime.GOOS)
}
