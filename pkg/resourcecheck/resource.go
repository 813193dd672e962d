package resourcecheck

// MemoryReader abstracts system memory detection for testability.
type MemoryReader interface {
	// TotalMemory returns total physical memory in bytes.
	TotalMemory() (uint64, error)
}

// RealMemoryReader implements MemoryReader using actual system calls.
type RealMemoryReader struct{}

// TotalMemory returns total physical memory in bytes.
func (r *RealMemoryReader) TotalMemory() (uint64, error) {
	return getSystemMemory()
}
