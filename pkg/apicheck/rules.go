package apicheck

import (
	"fmt"

	"github.com/vertti/setupcheck/pkg/check"
)

// Rule is the outcome for one HTTP status code.
type Rule struct {
	Status  check.Status
	Message string
}

// StatusRules maps status codes to outcomes. Codes not listed are reported
// as a warning.
type StatusRules map[int]Rule

// Classify returns the rule for code.
func (r StatusRules) Classify(code int) Rule {
	if rule, ok := r[code]; ok {
		return rule
	}
	return Rule{Status: check.StatusWarn, Message: fmt.Sprintf("Unexpected status %d", code)}
}

const (
	msgConnected  = "Connected (API key valid)"
	msgAuthFailed = "Authentication failed (invalid API key)"
)

// FirecrawlRules interprets the scrape endpoint. A 400 means the key was
// accepted and only the stub payload was rejected.
var FirecrawlRules = StatusRules{
	200: {check.StatusOK, msgConnected},
	400: {check.StatusOK, msgConnected},
	401: {check.StatusFail, msgAuthFailed},
}

// GeminiRules interprets the generateContent endpoint.
var GeminiRules = StatusRules{
	200: {check.StatusOK, msgConnected},
	400: {check.StatusOK, "API key valid (test request failed as expected)"},
	401: {check.StatusFail, msgAuthFailed},
	403: {check.StatusFail, msgAuthFailed},
}
