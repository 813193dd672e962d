package main

import (
	"fmt"
	"time"

	"github.com/vertti/setupcheck/pkg/apicheck"
	"github.com/vertti/setupcheck/pkg/cmdcheck"
	"github.com/vertti/setupcheck/pkg/resourcecheck"
)

var (
	envFile           string
	useKeyring        bool
	noInput           bool
	strict            bool
	verbose           bool
	logFormat         string
	toolTimeout       time.Duration
	geminiModel       string
	minMemory         string
	recommendedMemory string
	firecrawlURL      string
	geminiURL         string
)

func init() {
	f := rootCmd.Flags()

	// Credentials
	f.StringVar(&envFile, "env-file", "", "read API keys from this dotenv file when unset in the environment")
	f.BoolVar(&useKeyring, "keyring", false, "read API keys from the OS keyring when unset in the environment")
	f.BoolVar(&noInput, "no-input", false, "never prompt; treat missing API keys as skipped")

	// Behaviour
	f.BoolVar(&strict, "strict", false, "exit 1 when any check fails")
	f.BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
	f.StringVar(&logFormat, "log-format", "text", "diagnostic log format (text, json)")
	f.DurationVar(&toolTimeout, "tool-timeout", cmdcheck.DefaultTimeout, "timeout for each tool version command")

	// Thresholds
	f.StringVar(&geminiModel, "gemini-model", apicheck.DefaultGeminiModel, "Gemini model used for the connectivity test")
	f.StringVar(&minMemory, "min-memory", "2G", "memory below which the check fails")
	f.StringVar(&recommendedMemory, "recommended-memory", "4G", "memory below which the check warns")

	// Endpoint overrides for testing against a local server
	f.StringVar(&firecrawlURL, "firecrawl-url", apicheck.FirecrawlBaseURL, "Firecrawl API base URL")
	f.StringVar(&geminiURL, "gemini-url", apicheck.GeminiBaseURL, "Gemini API base URL")
	_ = f.MarkHidden("firecrawl-url")
	_ = f.MarkHidden("gemini-url")
}

func validateLogFormat() error {
	switch logFormat {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("invalid --log-format %q: must be text or json", logFormat)
	}
}

func memoryThresholds() (minBytes, recBytes uint64, err error) {
	if minBytes, err = resourcecheck.ParseSize(minMemory); err != nil {
		return 0, 0, fmt.Errorf("invalid --min-memory value: %w", err)
	}
	if recBytes, err = resourcecheck.ParseSize(recommendedMemory); err != nil {
		return 0, 0, fmt.Errorf("invalid --recommended-memory value: %w", err)
	}
	if minBytes == 0 || recBytes == 0 {
		return 0, 0, fmt.Errorf("memory thresholds must be greater than zero")
	}
	if minBytes > recBytes {
		return 0, 0, fmt.Errorf("--min-memory %s exceeds --recommended-memory %s",
			resourcecheck.FormatSize(minBytes), resourcecheck.FormatSize(recBytes))
	}
	return minBytes, recBytes, nil
}
