package check

import (
	"fmt"
)

// Pass sets the result to OK status with the given headline.
func (r *Result) Pass(name string) Result {
	r.Status = StatusOK
	r.Name = name
	return *r
}

// Passf sets the result to OK status with a formatted headline.
func (r *Result) Passf(format string, args ...any) Result {
	return r.Pass(fmt.Sprintf(format, args...))
}

// Warn sets the result to WARN status with the given headline.
func (r *Result) Warn(name string) Result {
	r.Status = StatusWarn
	r.Name = name
	return *r
}

// Warnf sets the result to WARN status with a formatted headline.
func (r *Result) Warnf(format string, args ...any) Result {
	return r.Warn(fmt.Sprintf(format, args...))
}

// Fail sets the result to FAIL status with the given headline.
func (r *Result) Fail(name string, err error) Result {
	r.Status = StatusFail
	r.Name = name
	r.Err = err
	return *r
}

// Failf sets the result to FAIL status with a formatted headline.
func (r *Result) Failf(format string, args ...any) Result {
	return r.Fail(fmt.Sprintf(format, args...), fmt.Errorf(format, args...))
}

// Info sets the result to INFO status with the given headline.
func (r *Result) Info(name string) Result {
	r.Status = StatusInfo
	r.Name = name
	return *r
}

// Infof sets the result to INFO status with a formatted headline.
func (r *Result) Infof(format string, args ...any) Result {
	return r.Info(fmt.Sprintf(format, args...))
}

// AddDetail appends a detail line to the result.
func (r *Result) AddDetail(detail string) *Result {
	r.Details = append(r.Details, detail)
	return r
}

// AddDetailf appends a formatted detail line to the result.
func (r *Result) AddDetailf(format string, args ...any) *Result {
	return r.AddDetail(fmt.Sprintf(format, args...))
}
