// Package main implements the main entry point for a firmware memory image
// inspection and report generation tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/firmtools/gohexdump/internal/cli"
	"github.com/firmtools/gohexdump/internal/config"
	"github.com/firmtools/gohexdump/internal/options"
	"github.com/firmtools/gohexdump/internal/pipeline"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(opts)
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	printBanner(opts)

	if err := run(ctx, logger, opts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Inspection failed", log.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	var writer io.Writer = os.Stdout
	if opts.Output != "" {
		file, err := os.Create(opts.Output)
		if err != nil {
			return fmt.Errorf("creating file '%s': %w", opts.Output, err)
		}
		defer func() { _ = file.Close() }()
		writer = file
	}

	return pipeline.New(logger).Execute(ctx, opts, writer)
}

func printBanner(opts options.Program) {
	if !opts.Quiet {
		fmt.Println("[--------------------------------------------]")
		fmt.Println("[ gohexdump - firmware memory image inspector ]")
		fmt.Printf("[--------------------------------------------]\n\n")
		fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
	}
}
