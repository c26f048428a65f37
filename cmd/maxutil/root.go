package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/JonMunkholm/maxutil/internal/config"
	"github.com/JonMunkholm/maxutil/internal/core"
	"github.com/JonMunkholm/maxutil/internal/logging"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// errReported marks a failure whose user message was already printed.
var errReported = errors.New("transform failed")

type options struct {
	input  string
	output string
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "maxutil -f <input.csv> -o <output.csv>",
		Short: "Append a MaxUtil column to an equipment CSV file",
		Long: `maxutil reads a CSV file with Value and Utilization columns and writes
a copy with one extra column:

  MaxUtil = Value / Utilization * 100, rounded to 2 decimal places

Utilization may carry a trailing '%'. Rows with missing or non-numeric
Value or Utilization are left out of the output.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), stdout, cmd.ErrOrStderr(), opts)
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.Flags().StringVarP(&opts.input, "file", "f", "", "CSV input file")
	cmd.Flags().StringVarP(&opts.output, "output_file", "o", "", "CSV output file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func run(ctx context.Context, stdout, stderr io.Writer, opts *options) error {
	// Load .env if present; real environment variables take precedence
	envErr := godotenv.Load()

	// Logging settings never stop a run; bad values fall back to defaults
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = config.Default()
	}
	logging.Setup(stderr, cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.AddSource)

	if cfgErr != nil {
		slog.Warn("invalid logging configuration, using defaults", "error", cfgErr)
	}
	if envErr != nil {
		slog.Debug("no .env file loaded", "error", envErr)
	}
	slog.Debug("configuration loaded", "config", cfg.String())

	ctx = logging.WithRunID(ctx, uuid.NewString())
	logger := logging.WithFields(ctx, "input", opts.input, "output", opts.output)

	transformer, err := core.New(core.DefaultOptions())
	if err != nil {
		return err
	}

	res, err := transformer.TransformFile(ctx, opts.input, opts.output)
	if err != nil {
		ue := core.NewUserError(err)
		logger.Error("transform failed", "error", ue.Technical, "code", ue.User.Code)
		fmt.Fprintln(stderr, core.FormatUserError(err))
		return errReported
	}

	if !res.HeaderValid {
		fmt.Fprintln(stdout, core.IncorrectDataMessage)
		return nil
	}

	attrs := []any{
		"rows_read", res.RowsRead,
		"rows_written", res.RowsWritten,
		"rows_skipped", res.SkippedTotal(),
		"bytes_read", res.BytesRead,
		"duration_ms", res.Duration.Milliseconds(),
	}
	for reason, n := range res.Skipped {
		attrs = append(attrs, "skipped_"+string(reason), n)
	}
	if s := res.Summary; s != nil {
		attrs = append(attrs,
			"max_util_min", s.Min,
			"max_util_max", s.Max,
			"max_util_mean", s.Mean,
			"max_util_median", s.Median,
		)
	}
	logger.Info("transform completed", attrs...)

	return nil
}
