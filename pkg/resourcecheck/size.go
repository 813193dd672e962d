package resourcecheck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Binary size units.
const (
	_         = iota
	KB uint64 = 1 << (10 * iota)
	MB
	GB
	TB
)

var (
	sizeRegex = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)\s*([KMGT]?B?)$`)

	unitMultipliers = map[string]uint64{
		"": 1, "B": 1,
		"K": KB, "KB": KB,
		"M": MB, "MB": MB,
		"G": GB, "GB": GB,
		"T": TB, "TB": TB,
	}
)

// ParseSize parses a memory size such as "4G", "512M" or "1.5GB" into bytes.
// Units are binary and case-insensitive.
func ParseSize(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty size string")
	}

	matches := sizeRegex.FindStringSubmatch(s)
	if matches == nil {
		return 0, fmt.Errorf("invalid size format: %q", s)
	}

	num, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number: %q", matches[1])
	}

	multiplier, ok := unitMultipliers[strings.ToUpper(matches[2])]
	if !ok {
		return 0, fmt.Errorf("unknown unit: %q", matches[2])
	}

	return uint64(num * float64(multiplier)), nil
}

// FormatSize formats bytes into a short human-readable string. Whole
// sizes drop the fraction: 4GB, 1.5GB.
func FormatSize(bytes uint64) string {
	switch {
	case bytes >= TB:
		return formatUnit(bytes, TB, "TB")
	case bytes >= GB:
		return formatUnit(bytes, GB, "GB")
	case bytes >= MB:
		return formatUnit(bytes, MB, "MB")
	case bytes >= KB:
		return formatUnit(bytes, KB, "KB")
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}

func formatUnit(bytes, unit uint64, suffix string) string {
	return strings.TrimSuffix(fmt.Sprintf("%.1f", float64(bytes)/float64(unit)), ".0") + suffix
}
