package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"

	// StatusInfo marks a display-only result. It is never counted.
	StatusInfo Status = "INFO"
)

// Result holds the outcome of a single check.
type Result struct {
	Name    string   // headline, e.g. "System memory: 7.66 GB (recommended)"
	Status  Status   // OK, WARN, FAIL or INFO
	Details []string // human-readable details printed under the headline
	Err     error    // underlying error for failures
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Counted reports whether the result contributes to the pass/fail/warning tally.
func (r Result) Counted() bool {
	return r.Status == StatusOK || r.Status == StatusWarn || r.Status == StatusFail
}
