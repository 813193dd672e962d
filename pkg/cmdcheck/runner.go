package cmdcheck

import (
	"bytes"
	"context"
	"os/exec"
	"time"
)

// DefaultTimeout bounds a version command when Check.Timeout is unset.
const DefaultTimeout = 10 * time.Second

// Runner abstracts command execution for testability.
type Runner interface {
	LookPath(file string) (string, error)
	RunCommandContext(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)
}

// RealRunner implements Runner using actual OS commands.
type RealRunner struct{}

// LookPath searches for an executable in PATH.
func (r *RealRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// RunCommandContext executes a command and returns its output.
// The process is killed when ctx expires.
func (r *RealRunner) RunCommandContext(ctx context.Context, name string, args ...string) (stdout, stderr string, err error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err = cmd.Run()
	return outBuf.String(), errBuf.String(), err
}

// MockRunner is a test double for Runner.
type MockRunner struct {
	LookPathFunc   func(file string) (string, error)
	RunCommandFunc func(ctx context.Context, name string, args ...string) (string, string, error)
}

// LookPath calls the mock function.
func (m *MockRunner) LookPath(file string) (string, error) {
	return m.LookPathFunc(file)
}

// RunCommandContext calls the mock function.
func (m *MockRunner) RunCommandContext(ctx context.Context, name string, args ...string) (stdout, stderr string, err error) {
	return m.RunCommandFunc(ctx, name, args...)
}
