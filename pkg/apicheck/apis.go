package apicheck

import (
	"fmt"
	"strings"
)

// Default API endpoints.
const (
	FirecrawlBaseURL   = "https://api.firecrawl.dev"
	GeminiBaseURL      = "https://generativelanguage.googleapis.com"
	DefaultGeminiModel = "gemini-pro"
)

// Firecrawl returns the content-extraction probe. An empty baseURL uses
// FirecrawlBaseURL.
func Firecrawl(baseURL, key string, client HTTPClient) *Probe {
	if baseURL == "" {
		baseURL = FirecrawlBaseURL
	}
	return &Probe{
		Name:    "Firecrawl",
		Label:   "Firecrawl API",
		EnvVar:  "FIRECRAWL_API_KEY",
		URL:     strings.TrimSuffix(baseURL, "/") + "/v1/scrape",
		Auth:    AuthBearer,
		Payload: map[string]string{"url": "https://example.com"},
		Rules:   FirecrawlRules,
		Key:     key,
		Client:  client,
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

// Gemini returns the generative-text probe. Empty baseURL and model use
// the defaults.
func Gemini(baseURL, model, key string, client HTTPClient) *Probe {
	if baseURL == "" {
		baseURL = GeminiBaseURL
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	return &Probe{
		Name:       "Gemini",
		Label:      "Google Gemini API",
		EnvVar:     "GEMINI_API_KEY",
		URL:        fmt.Sprintf("%s/v1/models/%s:generateContent", strings.TrimSuffix(baseURL, "/"), model),
		Auth:       AuthQuery,
		QueryParam: "key",
		Payload:    geminiRequest{Contents: []geminiContent{{Parts: []geminiPart{{Text: "Hello"}}}}},
		Rules:      GeminiRules,
		Key:        key,
		Client:     client,
	}
}
