// Package summary prints the end-of-run verdict and next steps.
package summary

import (
	"github.com/vertti/setupcheck/pkg/check"
	"github.com/vertti/setupcheck/pkg/tally"
)

// Verdict is the overall result of a run.
type Verdict int

const (
	VerdictReady Verdict = iota
	VerdictWarnings
	VerdictFailed
)

// String returns the verdict line shown to the user.
func (v Verdict) String() string {
	switch v {
	case VerdictFailed:
		return "❌ Some checks failed. Fix the issues before running the workflow."
	case VerdictWarnings:
		return "⚠️  Some warnings detected. Review them before proceeding."
	default:
		return "🎉 All checks passed! You're ready to run the workflow."
	}
}

// Choose picks the verdict for c. Failures outrank warnings.
func Choose(c tally.Counts) Verdict {
	switch {
	case c.Failed > 0:
		return VerdictFailed
	case c.Warnings > 0:
		return VerdictWarnings
	default:
		return VerdictReady
	}
}

// NextSteps is printed after every summary, whatever the verdict.
var NextSteps = []string{
	"1. Import the workflow: workflows/product-video-generator.json",
	"2. Configure credentials in N8N",
	"3. Test with a sample URL",
}

// SetupDoc is where detailed setup instructions live.
const SetupDoc = "docs/SETUP.md"

// Status returns the severity the verdict line is shown with.
func (v Verdict) Status() check.Status {
	switch v {
	case VerdictFailed:
		return check.StatusFail
	case VerdictWarnings:
		return check.StatusWarn
	default:
		return check.StatusOK
	}
}

// Print writes the summary for the recorder's counts and returns them.
// The verdict line is display-only and does not change the counts.
func Print(rec *tally.Recorder) tally.Counts {
	counts := rec.Counts()
	p := rec.Printer()

	p.Section("Setup Check Summary")
	p.Plain("")
	p.Count("Checks passed:", counts.Passed, check.StatusOK)
	p.Count("Checks failed:", counts.Failed, check.StatusFail)
	p.Count("Warnings:", counts.Warnings, check.StatusWarn)
	p.Plain("")

	verdict := Choose(counts)
	p.Line(verdict.Status(), verdict.String())

	p.Plain("\nNext Steps:")
	for _, step := range NextSteps {
		rec.Info("  " + step)
	}
	rec.Info("For detailed setup instructions, see: " + SetupDoc)

	return counts
}
