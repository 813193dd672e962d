package resourcecheck

import (
	"math"

	"github.com/vertti/setupcheck/pkg/check"
)

const (
	// DefaultMinimum is the least memory the workflow can run with.
	DefaultMinimum = 2 * GB
	// DefaultRecommended is the memory the workflow is comfortable with.
	DefaultRecommended = 4 * GB
)

// Check grades total system memory against two thresholds.
type Check struct {
	Minimum     uint64 // below this the check fails (default: 2GB)
	Recommended uint64 // below this the check warns (default: 4GB)
	Reader      MemoryReader
}

// Gigabytes converts bytes to GiB rounded to two decimals.
func Gigabytes(bytes uint64) float64 {
	return math.Round(float64(bytes)/float64(GB)*100) / 100
}

// Evaluate grades a rounded GiB figure. Both thresholds are inclusive.
func Evaluate(gb, minimumGB, recommendedGB float64) check.Status {
	switch {
	case gb >= recommendedGB:
		return check.StatusOK
	case gb >= minimumGB:
		return check.StatusWarn
	default:
		return check.StatusFail
	}
}

// Run executes the memory check.
func (c *Check) Run() check.Result {
	result := check.Result{}

	reader := c.Reader
	if reader == nil {
		reader = &RealMemoryReader{}
	}
	minimum := c.Minimum
	if minimum == 0 {
		minimum = DefaultMinimum
	}
	recommended := c.Recommended
	if recommended == 0 {
		recommended = DefaultRecommended
	}

	total, err := reader.TotalMemory()
	if err != nil {
		return result.Failf("System memory: unknown (%v)", err)
	}

	gb := Gigabytes(total)
	switch Evaluate(gb, Gigabytes(minimum), Gigabytes(recommended)) {
	case check.StatusOK:
		return result.Passf("System memory: %.2f GB (recommended)", gb)
	case check.StatusWarn:
		return result.Warnf("System memory: %.2f GB (minimum, %s recommended)", gb, FormatSize(recommended))
	default:
		return result.Failf("System memory: %.2f GB (insufficient, minimum %s required)", gb, FormatSize(minimum))
	}
}
