// Package testutil holds test doubles shared across check packages.
package testutil

import (
	"io"
	"net/http"
	"strings"
	"sync/atomic"
)

// MockHTTPClient is a test double for HTTP clients. It counts requests.
type MockHTTPClient struct {
	DoFunc func(req *http.Request) (*http.Response, error)

	calls atomic.Int32
}

func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	m.calls.Add(1)
	return m.DoFunc(req)
}

// Calls returns how many requests were made.
func (m *MockHTTPClient) Calls() int {
	return int(m.calls.Load())
}

// MockResponse creates an http.Response with given status and body.
func MockResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

// ContainsDetail checks if any detail string contains the given substring.
func ContainsDetail(details []string, substr string) bool {
	for _, d := range details {
		if strings.Contains(d, substr) {
			return true
		}
	}
	return false
}
