// Package detector handles input file format detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/firmtools/gohexdump/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Format identifies the input file format.
type Format string

// Supported input file formats.
const (
	FormatIntelHex Format = "ihex"
	FormatBinary   Format = "binary"
)

// FormatFromString maps a format option value to a Format.
func FormatFromString(s string) (Format, bool) {
	switch strings.ToLower(s) {
	case "ihex", "hex", "intelhex":
		return FormatIntelHex, true
	case "binary", "bin":
		return FormatBinary, true
	default:
		return "", false
	}
}

// Detector handles input format detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new format detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the input format from options or file auto-detection.
// An explicitly specified format wins, otherwise the file extension decides.
func (d *Detector) Detect(opts options.Program) Format {
	format, ok := FormatFromString(opts.Format)
	if !ok {
		format = d.detectFromFile(opts.Input)
		d.logger.Debug("Auto-detected input format",
			log.String("format", string(format)),
			log.String("file", opts.Input))
	}
	return format
}

// detectFromFile determines the format based on the file extension.
func (d *Detector) detectFromFile(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".hex", ".ihex", ".ihx":
		return FormatIntelHex
	default:
		// anything else is treated as a raw binary dump
		return FormatBinary
	}
}
