package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vertti/setupcheck/pkg/check"
	"github.com/vertti/setupcheck/pkg/credentials"
	"github.com/vertti/setupcheck/pkg/logger"
	"github.com/vertti/setupcheck/pkg/output"
	"github.com/vertti/setupcheck/pkg/setup"
)

// ErrCheckFailed is returned in --strict mode when a check failed.
// The returned error causes a non-zero exit.
var ErrCheckFailed = errors.New("check failed")

// errReported marks errors already shown to the user.
var errReported = errors.New("reported")

func runSetupCheck(cmd *cobra.Command, _ []string) error {
	if err := validateLogFormat(); err != nil {
		return err
	}
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger.Init(&logger.Config{Level: level, Format: logFormat, Output: cmd.ErrOrStderr()})

	runner, err := newRunner(cmd)
	if err != nil {
		return err
	}

	counts, err := runner.Run()
	if err != nil {
		logger.Error("setup check aborted", "err", err)
		output.New(cmd.OutOrStdout()).Line(check.StatusFail, fmt.Sprintf("Unexpected error: %v", err))
		return fmt.Errorf("%w: %w", errReported, err)
	}

	logger.Info("setup check finished",
		"passed", counts.Passed, "failed", counts.Failed, "warnings", counts.Warnings)

	if strict && counts.Failed > 0 {
		return fmt.Errorf("%w: %d failed", ErrCheckFailed, counts.Failed)
	}
	return nil
}

func newRunner(cmd *cobra.Command) (*setup.Runner, error) {
	minMem, recMem, err := memoryThresholds()
	if err != nil {
		return nil, err
	}

	var sources []credentials.Source
	if envFile != "" {
		sources = append(sources, &credentials.DotenvSource{Path: envFile})
	}
	if useKeyring {
		sources = append(sources, &credentials.KeyringSource{})
	}

	var prompter credentials.Prompter = &credentials.NoInputPrompter{}
	if !noInput {
		prompter = credentials.NewTerminalPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	return &setup.Runner{
		Out:               cmd.OutOrStdout(),
		Env:               &credentials.RealEnvGetter{},
		Sources:           sources,
		Prompter:          prompter,
		ToolTimeout:       toolTimeout,
		MinMemory:         minMem,
		RecommendedMemory: recMem,
		GeminiModel:       geminiModel,
		FirecrawlURL:      firecrawlURL,
		GeminiURL:         geminiURL,
	}, nil
}
