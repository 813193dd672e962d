//go:build darwin

package resourcecheck

import "golang.org/x/sys/unix"

// getSystemMemory returns total system memory on macOS.
func getSystemMemory() (uint64, error) {
	return unix.SysctlUint64("hw.memsize")
}
