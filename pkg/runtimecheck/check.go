// Package runtimecheck verifies the JavaScript runtime the workflow engine
// runs on is recent enough.
package runtimecheck

import (
	"context"
	"fmt"
	"time"

	"github.com/vertti/setupcheck/pkg/check"
	"github.com/vertti/setupcheck/pkg/cmdcheck"
	"github.com/vertti/setupcheck/pkg/version"
)

// DefaultMinMajor is the oldest supported Node.js major version.
const DefaultMinMajor = 18

// Check verifies the runtime's major version.
type Check struct {
	Command  string          // runtime binary (default: node)
	Label    string          // display name (default: Node.js)
	MinMajor uint64          // minimum major version, inclusive (default: 18)
	Timeout  time.Duration   // timeout for the version command
	Runner   cmdcheck.Runner // injected for testing
}

// Evaluate grades a major version against the minimum.
func Evaluate(major, minMajor uint64) check.Status {
	if major >= minMajor {
		return check.StatusOK
	}
	return check.StatusFail
}

// Run executes the runtime version check.
func (c *Check) Run() check.Result {
	result := check.Result{}

	command := c.Command
	if command == "" {
		command = "node"
	}
	label := c.Label
	if label == "" {
		label = "Node.js"
	}
	minMajor := c.MinMajor
	if minMajor == 0 {
		minMajor = DefaultMinMajor
	}
	timeout := c.Timeout
	if timeout == 0 {
		timeout = cmdcheck.DefaultTimeout
	}
	runner := c.Runner
	if runner == nil {
		runner = &cmdcheck.RealRunner{}
	}

	requirement := fmt.Sprintf("requires v%d or higher", minMajor)

	if _, err := runner.LookPath(command); err != nil {
		return result.Fail(fmt.Sprintf("%s not found in PATH (%s)", label, requirement), err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	stdout, _, err := runner.RunCommandContext(ctx, command, "--version")
	if err != nil {
		return result.Fail(fmt.Sprintf("%s version could not be determined (%s)", label, requirement), err)
	}

	raw := cmdcheck.FirstLine(stdout)
	major, err := version.Major(raw)
	if err != nil {
		result.AddDetailf("output: %q", raw)
		return result.Fail(fmt.Sprintf("%s version could not be parsed (%s)", label, requirement), err)
	}

	if Evaluate(major, minMajor) == check.StatusOK {
		return result.Passf("%s version: %s (compatible)", label, raw)
	}
	return result.Failf("%s version: %s (%s)", label, raw, requirement)
}
