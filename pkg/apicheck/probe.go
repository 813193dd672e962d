// Package apicheck probes the remote APIs the workflow depends on. Each
// probe makes at most one request and maps the response status to an
// outcome through a per-API rule table.
package apicheck

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"

	"github.com/vertti/setupcheck/pkg/check"
	"github.com/vertti/setupcheck/pkg/logger"
)

// AuthStyle selects how the key is attached to the request.
type AuthStyle int

const (
	// AuthBearer sends "Authorization: Bearer <key>".
	AuthBearer AuthStyle = iota
	// AuthQuery sends the key as a query parameter.
	AuthQuery
)

// maxErrorBody caps how much of a response is read to find an error message.
const maxErrorBody = 64 << 10

// Probe checks that an API is reachable and accepts a key.
type Probe struct {
	Name       string      // short name used in the skip message, e.g. "Gemini"
	Label      string      // display name, e.g. "Google Gemini API"
	EnvVar     string      // variable that supplies the key, for the skip hint
	URL        string      // full endpoint URL
	Auth       AuthStyle   // how the key is sent
	QueryParam string      // query parameter name for AuthQuery (default: key)
	Payload    any         // request body, encoded as JSON
	Rules      StatusRules // status interpretation
	Key        string      // credential; empty skips the probe
	Client     HTTPClient  // injected for testing
}

// Run executes the probe.
func (p *Probe) Run() check.Result {
	result := check.Result{}

	if p.Key == "" {
		result.AddDetailf("Set %s environment variable to test", p.EnvVar)
		return result.Infof("%s API key not provided (skipping connectivity test)", p.Name)
	}

	req, err := p.newRequest()
	if err != nil {
		return result.Failf("%s: could not build request (%v)", p.Label, err)
	}

	client := p.Client
	if client == nil {
		client = NewHTTPClient()
	}

	logger.Debug("probe request", "api", p.Label, "method", req.Method, "host", req.URL.Host, "path", req.URL.Path)

	resp, err := client.Do(req)
	if err != nil {
		err = transportError(err)
		logger.Debug("probe transport error", "api", p.Label, "err", err)
		return result.Fail(fmt.Sprintf("%s: Connection failed (%v)", p.Label, err), err)
	}
	defer func() { _ = resp.Body.Close() }()

	logger.Debug("probe response", "api", p.Label, "status", resp.StatusCode)

	rule := p.Rules.Classify(resp.StatusCode)
	headline := fmt.Sprintf("%s: %s", p.Label, rule.Message)

	switch rule.Status {
	case check.StatusOK:
		return result.Pass(headline)
	case check.StatusFail:
		addAPIError(&result, resp.Body)
		return result.Fail(headline, fmt.Errorf("%s returned status %d", p.Label, resp.StatusCode))
	default:
		addAPIError(&result, resp.Body)
		return result.Warn(headline)
	}
}

func (p *Probe) newRequest() (*http.Request, error) {
	body, err := json.Marshal(p.Payload)
	if err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}

	u, err := url.Parse(p.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid URL: %q", p.URL)
	}

	if p.Auth == AuthQuery {
		param := p.QueryParam
		if param == "" {
			param = "key"
		}
		q := u.Query()
		q.Set(param, p.Key)
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequest(http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if p.Auth == AuthBearer {
		req.Header.Set("Authorization", "Bearer "+p.Key)
	}
	return req, nil
}

// transportError strips the *url.Error wrapper, whose text repeats the
// request URL and with it any query-string key.
func transportError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err
	}
	return err
}

// addAPIError adds the API's own error message, if the body carries one.
func addAPIError(result *check.Result, body io.Reader) {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || !gjson.ValidBytes(data) {
		return
	}

	for _, path := range []string{"error.message", "error", "message"} {
		if v := gjson.GetBytes(data, path); v.Exists() && v.Type == gjson.String && v.String() != "" {
			result.AddDetailf("api error: %s", v.String())
			return
		}
	}
}
