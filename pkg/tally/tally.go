// Package tally counts check outcomes for a single run and echoes each one
// to the terminal as it is recorded.
package tally

import (
	"github.com/vertti/setupcheck/pkg/check"
	"github.com/vertti/setupcheck/pkg/output"
)

// Counts is a snapshot of the recorder's counters.
type Counts struct {
	Passed   int
	Failed   int
	Warnings int
}

// Total returns the number of counted outcomes.
func (c Counts) Total() int {
	return c.Passed + c.Failed + c.Warnings
}

// Recorder accumulates outcomes. It has no locking: a run drives it from a
// single goroutine.
type Recorder struct {
	out    *output.Printer
	counts Counts
}

// New creates a Recorder that prints through p.
func New(p *output.Printer) *Recorder {
	return &Recorder{out: p}
}

// Passed prints msg as a pass and increments the passed counter.
func (r *Recorder) Passed(msg string) {
	r.out.Line(check.StatusOK, msg)
	r.counts.Passed++
}

// Failed prints msg as a failure and increments the failed counter.
func (r *Recorder) Failed(msg string) {
	r.out.Line(check.StatusFail, msg)
	r.counts.Failed++
}

// Warning prints msg as a warning and increments the warnings counter.
func (r *Recorder) Warning(msg string) {
	r.out.Line(check.StatusWarn, msg)
	r.counts.Warnings++
}

// Info prints msg without touching any counter.
func (r *Recorder) Info(msg string) {
	r.out.Line(check.StatusInfo, msg)
}

// Record prints a check result and counts it according to its status.
// INFO results, and results with no status, are printed but not counted.
func (r *Recorder) Record(res check.Result) {
	switch res.Status {
	case check.StatusOK:
		r.Passed(res.Name)
	case check.StatusWarn:
		r.Warning(res.Name)
	case check.StatusFail:
		r.Failed(res.Name)
	default:
		r.Info(res.Name)
	}
	for _, d := range res.Details {
		r.out.Detail(res.Status, d)
	}
}

// Counts returns the current counters.
func (r *Recorder) Counts() Counts {
	return r.counts
}

// Printer returns the printer the recorder writes through.
func (r *Recorder) Printer() *output.Printer {
	return r.out
}
