// Package pipeline orchestrates the inspection workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/firmtools/gohexdump/internal/crc"
	"github.com/firmtools/gohexdump/internal/detector"
	"github.com/firmtools/gohexdump/internal/dump"
	"github.com/firmtools/gohexdump/internal/memaccess"
	"github.com/firmtools/gohexdump/internal/memimage"
	"github.com/firmtools/gohexdump/internal/options"
	"github.com/firmtools/gohexdump/internal/printer"
	"github.com/firmtools/gohexdump/internal/report"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete inspection workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
}

// New creates a new inspection pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
	}
}

// Execute loads the image and runs the selected command, writing command
// output to writer. Loading errors surface before any command runs.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, writer io.Writer) error {
	format := p.detector.Detect(opts)

	image, err := memimage.Load(opts.Input, format, opts.Base)
	if err != nil {
		return fmt.Errorf("loading image: %w", err)
	}
	p.printInfo(opts, image, format)

	if err := ctx.Err(); err != nil {
		return err
	}
	return p.ExecuteWithImage(opts, image, writer)
}

// ExecuteWithImage runs the selected command against a pre-loaded image.
// This is useful for testing and programmatic usage.
func (p *Pipeline) ExecuteWithImage(opts options.Program, image *memimage.Image, writer io.Writer) error {
	switch opts.Command {
	case options.CommandChecksum:
		return p.runChecksum(opts, image, writer)
	case options.CommandDump:
		return p.runDump(opts, image, writer)
	case options.CommandReport:
		return p.runReport(opts, image, writer)
	default:
		return fmt.Errorf("unsupported command '%s'", opts.Command)
	}
}

func (p *Pipeline) printInfo(opts options.Program, image *memimage.Image, format detector.Format) {
	if opts.Quiet {
		return
	}
	p.logger.Info("Processing image",
		log.String("file", opts.Input),
		log.String("format", string(format)),
		log.String("bytes", fmt.Sprintf("%d", image.Size())),
	)
}

func (p *Pipeline) runChecksum(opts options.Program, image *memimage.Image, writer io.Writer) error {
	cfg := crc.Config{
		Polynomial:    opts.Checksum.Polynomial,
		RegisterWidth: opts.Checksum.BitWidth,
		Seed:          opts.Checksum.Seed,
		ReflectInput:  opts.Checksum.ReflectInput,
		ReflectOutput: opts.Checksum.ReflectOutput,
		FinalXOR:      opts.Checksum.FinalXOR,
	}
	if opts.Checksum.ReflectRegister {
		cfg.OutputReflection = crc.ReflectRegister
	}

	rng := crc.Range{
		Start: opts.Checksum.StartAddress,
		End:   opts.Checksum.EndAddress,
	}
	result, err := crc.Compute(image, rng, cfg)
	if err != nil {
		return fmt.Errorf("calculating checksum: %w", err)
	}

	if _, err := fmt.Fprintln(writer, printer.FormatValue(result, cfg.RegisterWidth)); err != nil {
		return fmt.Errorf("writing checksum: %w", err)
	}
	return nil
}

func (p *Pipeline) runDump(opts options.Program, image *memimage.Image, writer io.Writer) error {
	access, err := memaccess.ByName(opts.Dump.DataType)
	if err != nil {
		return fmt.Errorf("selecting data type: %w", err)
	}
	if err := dump.Write(writer, image, opts.Dump.Address, opts.Dump.Count, access); err != nil {
		return fmt.Errorf("dumping memory: %w", err)
	}
	return nil
}

func (p *Pipeline) runReport(opts options.Program, image *memimage.Image, writer io.Writer) error {
	file, err := os.Open(opts.Report.Template)
	if err != nil {
		return fmt.Errorf("opening template %s: %w", opts.Report.Template, err)
	}
	defer func() { _ = file.Close() }()

	generator := report.New(p.logger, image)
	name := filepath.Base(opts.Report.Template)
	if err := generator.Generate(name, opts.Input, file, writer); err != nil {
		return fmt.Errorf("generating report: %w", err)
	}
	return nil
}
