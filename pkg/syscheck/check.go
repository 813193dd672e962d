package syscheck

import (
	"runtime"

	"github.com/vertti/setupcheck/pkg/check"
)

// SysInfo abstracts system information for testability.
type SysInfo interface {
	OS() string
	Arch() string
	CPUs() int
}

// RealSysInfo returns actual system information.
type RealSysInfo struct{}

func (r *RealSysInfo) OS() string   { return runtime.GOOS }
func (r *RealSysInfo) Arch() string { return runtime.GOARCH }
func (r *RealSysInfo) CPUs() int    { return runtime.NumCPU() }

// Check reports the host platform. The result is informational only.
type Check struct {
	Info SysInfo // injected for testing
}

func (c *Check) Run() check.Result {
	result := check.Result{}

	info := c.Info
	if info == nil {
		info = &RealSysInfo{}
	}

	result.AddDetailf("cpus: %d", info.CPUs())
	return result.Infof("Platform: %s/%s", info.OS(), info.Arch())
}
