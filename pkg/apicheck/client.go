package apicheck

import (
	"net/http"

	"github.com/hashicorp/go-cleanhttp"
)

// HTTPClient abstracts HTTP requests for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewHTTPClient returns a client with its own transport and no overall
// request timeout, so a probe waits for the platform's dial and TLS limits.
func NewHTTPClient() HTTPClient {
	return cleanhttp.DefaultClient()
}
