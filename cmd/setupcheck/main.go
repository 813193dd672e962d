package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, ErrCheckFailed) && !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "setupcheck",
	Short: "Check this machine is ready to run the video automation workflow",
	Long: `setupcheck verifies system requirements and API connectivity before
running the e-commerce video automation workflow.

It checks the Node.js version, system memory, the n8n and FFmpeg binaries,
then tests the Firecrawl and Google Gemini API keys. Keys are read from
FIRECRAWL_API_KEY and GEMINI_API_KEY, or from --env-file and --keyring when
given; any that are missing are asked for interactively.

The summary is advisory: the exit code is 0 even when checks fail, unless
--strict is given.`,
	Example: `  setupcheck
  FIRECRAWL_API_KEY=fc-... GEMINI_API_KEY=AIza... setupcheck
  setupcheck --env-file .env --no-input --strict`,
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runSetupCheck,
}
