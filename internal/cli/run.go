package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/danieljhkim/refolder/internal/config"
	"github.com/danieljhkim/refolder/internal/engine"
	"github.com/danieljhkim/refolder/internal/naming"
	"github.com/danieljhkim/refolder/internal/report"
)

const noMatchesMessage = "No files matched pattern. Nothing to do."

// runOutput is the JSON shape of a run.
type runOutput struct {
	Root    string          `json:"root"`
	Summary report.Summary  `json:"summary"`
	Actions []engine.Action `json:"actions"`
	Aborted bool            `json:"aborted,omitempty"`
	Message string          `json:"message,omitempty"`
}

func runRefolder(cmd *cobra.Command, root string, flags *runFlags) error {
	logger := flags.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	opts, err := buildOptions(cmd, root, flags, logger)
	if err != nil {
		return err
	}

	eng := newEngine(logger)
	result, runErr := eng.Run(context.Background(), &engine.RunRequest{Options: opts})
	if result == nil {
		return runErr
	}

	out := cmd.OutOrStdout()

	if flags.jsonOutput {
		output := runOutput{
			Root:    result.Root,
			Summary: report.Summarize(result),
			Actions: result.Actions,
			Aborted: result.Aborted,
		}
		if result.Empty() {
			output.Message = noMatchesMessage
		}
		if err := outputJSON(out, output); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		return runErr
	}

	if result.Empty() {
		PrintInfo(out, noMatchesMessage)
		return runErr
	}

	// A preflight conflict stops the run before any action is taken.
	if errors.Is(runErr, engine.ErrDestinationConflict) {
		return runErr
	}

	report.New(out).Write(result)
	if result.Aborted {
		PrintWarning(cmd.ErrOrStderr(), "Stopped after the first failure (--fail-fast)")
	}
	return runErr
}

// buildOptions layers built-in defaults, the defaults file, explicit flags
// and the positional path, in that order.
func buildOptions(cmd *cobra.Command, root string, flags *runFlags, logger *zap.Logger) (config.Options, error) {
	opts := config.DefaultOptions()

	path, required := flags.configPath, true
	if path == "" {
		required = false
		paths, err := config.DefaultPaths()
		if err != nil {
			logger.Debug("no default config location", zap.Error(err))
		} else {
			path = paths.Config
		}
	}

	file, err := config.LoadFile(path, required, logger)
	if err != nil {
		return opts, fmt.Errorf("%w: %w", engine.ErrInvalidConfig, err)
	}
	opts, err = file.Apply(opts)
	if err != nil {
		return opts, fmt.Errorf("%w: %w", engine.ErrInvalidConfig, err)
	}

	f := cmd.Flags()
	if f.Changed("matching") {
		opts.Pattern = flags.matching
	}
	if f.Changed("prefix") {
		opts.Prefix = flags.prefix
	}
	if f.Changed("suffix") {
		style, err := naming.ParseStyle(flags.suffix)
		if err != nil {
			return opts, fmt.Errorf("%w: %w", engine.ErrInvalidConfig, err)
		}
		opts.Suffix = style
	}
	if f.Changed("recursive") {
		opts.Recursive = flags.recursive
	}
	if f.Changed("fail-fast") {
		opts.FailFast = flags.failFast
	}
	if f.Changed("case-sensitive") {
		opts.CaseSensitive = flags.caseSensitive
	}

	opts.Root = root
	opts.Subfolders = flags.subfolders
	opts.DryRun = flags.dryRun
	opts.Force = flags.force

	logger.Debug("options resolved",
		zap.String("root", opts.Root),
		zap.String("pattern", opts.Pattern),
		zap.Int("subfolders", opts.Subfolders),
		zap.String("prefix", opts.Prefix),
		zap.String("suffix", string(opts.Suffix)),
		zap.Bool("recursive", opts.Recursive),
		zap.String("mode", opts.Mode()),
	)
	return opts, nil
}
