package cmdcheck

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vertti/setupcheck/pkg/check"
	"github.com/vertti/setupcheck/pkg/logger"
)

// Check verifies that an external tool is installed and answers its
// version flag.
type Check struct {
	Name        string        // binary name looked up in PATH
	Label       string        // display name (default: Name)
	VersionArgs []string      // args to get version (default: --version)
	Missing     check.Status  // status reported when the tool is unavailable
	MissingNote string        // appended to the "not found" headline
	Timeout     time.Duration // timeout for version command (default: 10s)
	Runner      Runner        // injected for testing
}

// Run executes the tool check.
func (c *Check) Run() check.Result {
	result := check.Result{}

	label := c.Label
	if label == "" {
		label = c.Name
	}

	runner := c.Runner
	if runner == nil {
		runner = &RealRunner{}
	}

	path, err := runner.LookPath(c.Name)
	if err != nil {
		logger.Debug("tool lookup failed", "tool", c.Name, "err", err)
		return c.missing(&result, label, err)
	}
	logger.Debug("tool found", "tool", c.Name, "path", path)

	args := c.VersionArgs
	if len(args) == 0 {
		args = []string{"--version"}
	}

	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	stdout, stderr, err := runner.RunCommandContext(ctx, c.Name, args...)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("version command timed out after %s", timeout)
		}
		logger.Debug("version command failed", "tool", c.Name, "err", err, "stderr", FirstLine(stderr))
		return c.missing(&result, label, err)
	}

	versionOutput := FirstLine(stdout)
	if versionOutput == "" {
		versionOutput = FirstLine(stderr)
	}

	return result.Passf("%s installed: %s", label, versionOutput)
}

func (c *Check) missing(result *check.Result, label string, err error) check.Result {
	headline := fmt.Sprintf("%s not found", label)
	if c.MissingNote != "" {
		headline += " " + c.MissingNote
	}

	result.Err = err
	switch c.Missing {
	case check.StatusInfo:
		return result.Info(headline)
	case check.StatusFail:
		return result.Fail(headline, err)
	default:
		return result.Warn(headline)
	}
}

// FirstLine returns the first non-empty line of s, trimmed.
func FirstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
