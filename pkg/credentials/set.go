// Package credentials resolves the API keys the connectivity probes need,
// from the environment first and interactively only when something is
// still missing.
package credentials

import (
	"sort"
	"strings"
)

// Logical credential names.
const (
	Firecrawl = "firecrawl"
	Gemini    = "gemini"
)

// Spec describes one credential to resolve.
type Spec struct {
	Name   string // logical name, e.g. "firecrawl"
	EnvVar string // environment variable holding the value
	Label  string // human name used in prompts
}

// DefaultSpecs returns the credentials the workflow needs, in prompt order.
func DefaultSpecs() []Spec {
	return []Spec{
		{Name: Firecrawl, EnvVar: "FIRECRAWL_API_KEY", Label: "Firecrawl API Key"},
		{Name: Gemini, EnvVar: "GEMINI_API_KEY", Label: "Google Gemini API Key"},
	}
}

// Set maps logical credential names to secrets. A Set is read-only once
// returned by Acquire. Empty values mean the user skipped that credential.
type Set struct {
	values map[string]string
}

// NewSet copies values into a new Set.
func NewSet(values map[string]string) Set {
	s := Set{values: make(map[string]string, len(values))}
	for k, v := range values {
		s.values[k] = v
	}
	return s
}

// Get returns the secret for name, or "" if it was not resolved.
func (s Set) Get(name string) string {
	return s.values[name]
}

// Resolved reports whether name has a non-empty value.
func (s Set) Resolved(name string) bool {
	return s.values[name] != ""
}

// Names returns the credential names in the set, sorted.
func (s Set) Names() []string {
	names := make([]string, 0, len(s.values))
	for k := range s.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// String describes which credentials are set without revealing them.
func (s Set) String() string {
	parts := make([]string, 0, len(s.values))
	for _, name := range s.Names() {
		state := "empty"
		if s.Resolved(name) {
			state = "set"
		}
		parts = append(parts, name+"="+state)
	}
	return strings.Join(parts, " ")
}
