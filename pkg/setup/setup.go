// Package setup runs the full setup check: local environment checks, key
// acquisition, API probes and the summary, in that fixed order.
package setup

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/vertti/setupcheck/pkg/apicheck"
	"github.com/vertti/setupcheck/pkg/check"
	"github.com/vertti/setupcheck/pkg/cmdcheck"
	"github.com/vertti/setupcheck/pkg/credentials"
	"github.com/vertti/setupcheck/pkg/logger"
	"github.com/vertti/setupcheck/pkg/output"
	"github.com/vertti/setupcheck/pkg/resourcecheck"
	"github.com/vertti/setupcheck/pkg/runtimecheck"
	"github.com/vertti/setupcheck/pkg/summary"
	"github.com/vertti/setupcheck/pkg/syscheck"
	"github.com/vertti/setupcheck/pkg/tally"
)

const (
	title    = "🚀 E-Commerce Video Automation - Setup Check"
	subtitle = "Verifying system requirements and API connectivity...\n"
)

// Runner holds everything a run talks to. Zero-value fields fall back to
// the real implementations.
type Runner struct {
	Out io.Writer // default: os.Stdout

	Cmd    cmdcheck.Runner
	Memory resourcecheck.MemoryReader
	Sys    syscheck.SysInfo
	HTTP   apicheck.HTTPClient

	Env      credentials.EnvGetter
	Sources  []credentials.Source
	Prompter credentials.Prompter

	ToolTimeout       time.Duration
	MinMemory         uint64
	RecommendedMemory uint64
	GeminiModel       string
	FirecrawlURL      string
	GeminiURL         string
}

// Run executes every check in order and prints the summary. It returns the
// final counts. An error means the run itself broke, not that a check
// failed; a panic in any step is recovered into such an error.
func (r *Runner) Run() (counts tally.Counts, err error) {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	p := output.New(out)
	rec := tally.New(p)

	defer func() {
		if v := recover(); v != nil {
			logger.Debug("run panicked", "panic", v, "stack", string(debug.Stack()))
			counts = rec.Counts()
			err = fmt.Errorf("%v", v)
		}
	}()

	p.Banner(title, subtitle)

	p.Section("System Requirements")
	for _, c := range r.localChecks() {
		rec.Record(c.Run())
	}

	p.Section("API Connectivity")
	acq := &credentials.Acquirer{
		Env:      r.Env,
		Sources:  r.Sources,
		Prompter: r.Prompter,
		Out:      p,
	}
	keys, err := acq.Acquire(credentials.DefaultSpecs())
	if err != nil {
		return rec.Counts(), fmt.Errorf("acquiring API keys: %w", err)
	}
	logger.Debug("credentials acquired", "keys", keys.String())

	for _, c := range r.probes(keys) {
		rec.Record(c.Run())
	}

	return summary.Print(rec), nil
}

// localChecks returns the environment checks in display order.
func (r *Runner) localChecks() []check.Checker {
	return []check.Checker{
		&syscheck.Check{Info: r.Sys},
		&runtimecheck.Check{
			Timeout: r.ToolTimeout,
			Runner:  r.Cmd,
		},
		&resourcecheck.Check{
			Minimum:     r.MinMemory,
			Recommended: r.RecommendedMemory,
			Reader:      r.Memory,
		},
		&cmdcheck.Check{
			Name:        "n8n",
			Label:       "N8N",
			Missing:     check.StatusWarn,
			MissingNote: "in PATH (may be using N8N Cloud or Docker)",
			Timeout:     r.ToolTimeout,
			Runner:      r.Cmd,
		},
		&cmdcheck.Check{
			Name:        "ffmpeg",
			Label:       "FFmpeg",
			VersionArgs: []string{"-version"},
			Missing:     check.StatusInfo,
			MissingNote: "(optional, needed for video post-processing)",
			Timeout:     r.ToolTimeout,
			Runner:      r.Cmd,
		},
	}
}

// probes returns the API probes in display order.
func (r *Runner) probes(keys credentials.Set) []check.Checker {
	return []check.Checker{
		apicheck.Firecrawl(r.FirecrawlURL, keys.Get(credentials.Firecrawl), r.HTTP),
		apicheck.Gemini(r.GeminiURL, r.GeminiModel, keys.Get(credentials.Gemini), r.HTTP),
	}
}
