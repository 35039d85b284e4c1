// Package report executes user-supplied text templates against a memory
// image. Templates call into a fixed macro registry for checksum
// calculation, word reads and value formatting.
package report

import (
	"fmt"
	"io"
	"text/template"

	"github.com/firmtools/gohexdump/internal/memimage"
	"github.com/google/uuid"
	"github.com/retroenv/retrogolib/log"
)

// Context is the data made available to a report template.
type Context struct {
	File  string // input image file name
	RunID string // unique identifier of this report generation run
}

// Generator executes report templates against a memory image.
// The macro registry is built once per run and not modified afterwards.
type Generator struct {
	logger *log.Logger
	image  *memimage.Image
	funcs  template.FuncMap
	runID  string
}

// New creates a new report generator for the given image.
func New(logger *log.Logger, image *memimage.Image) *Generator {
	return &Generator{
		logger: logger,
		image:  image,
		funcs:  newMacros(image),
		runID:  uuid.NewString(),
	}
}

// RunID returns the identifier of this report generation run.
func (g *Generator) RunID() string {
	return g.runID
}

// Generate parses the template and executes it against the image,
// writing the rendered report to w.
func (g *Generator) Generate(name, inputFile string, r io.Reader, w io.Writer) error {
	text, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Funcs(g.funcs).Parse(string(text))
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", name, err)
	}

	g.logger.Debug("Generating report",
		log.String("template", name),
		log.String("run", g.runID))

	ctx := Context{
		File:  inputFile,
		RunID: g.runID,
	}
	if err := tmpl.Execute(w, ctx); err != nil {
		return fmt.Errorf("executing template %s: %w", name, err)
	}
	return nil
}
