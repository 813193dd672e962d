// Package version extracts semantic versions from tool output.
package version

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// versionRegex matches version patterns like 1.2.3, v1.2, 18, etc.
var versionRegex = regexp.MustCompile(`v?\d+(?:\.\d+){0,2}`)

// Parse parses a complete version string such as "v18.17.0" or "22".
func Parse(s string) (*semver.Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty version string")
	}

	if versionRegex.FindString(s) != s {
		return nil, fmt.Errorf("invalid version format: %q", s)
	}

	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("invalid version format: %q: %w", s, err)
	}
	return v, nil
}

// Extract finds and parses the first version number in a string.
func Extract(s string) (*semver.Version, error) {
	match := versionRegex.FindString(s)
	if match == "" {
		return nil, fmt.Errorf("no version found in: %q", s)
	}
	return Parse(match)
}

// Major returns the major component of the first version found in s.
func Major(s string) (uint64, error) {
	v, err := Extract(s)
	if err != nil {
		return 0, err
	}
	return v.Major(), nil
}
