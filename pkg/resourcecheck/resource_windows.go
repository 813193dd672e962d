//go:build windows

package resourcecheck

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// getSystemMemory returns total physical memory on Windows.
func getSystemMemory() (uint64, error) {
	status := windows.MemoryStatusEx{}
	status.Length = uint32(unsafe.Sizeof(status))
	if err := windows.GlobalMemoryStatusEx(&status); err != nil {
		return 0, err
	}
	return status.TotalPhys, nil
}
