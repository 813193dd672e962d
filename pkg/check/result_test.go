package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusOK, "OK"},
		{StatusWarn, "WARN"},
		{StatusFail, "FAIL"},
		{StatusInfo, "INFO"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, string(tt.status))
	}
}

func TestResultOK(t *testing.T) {
	result := Result{Status: StatusOK}
	assert.True(t, result.OK())

	result.Status = StatusWarn
	assert.False(t, result.OK())
}

func TestResultCounted(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusOK, true},
		{StatusWarn, true},
		{StatusFail, true},
		{StatusInfo, false},
		{Status(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, Result{Status: tt.status}.Counted())
		})
	}
}
