// Package pipeline orchestrates one ranking run: documents in, ranked
// output record out.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sectionrank/sectionrank/internal/embed"
	"github.com/sectionrank/sectionrank/internal/index"
	"github.com/sectionrank/sectionrank/internal/outline"
	"github.com/sectionrank/sectionrank/internal/report"
	"github.com/sectionrank/sectionrank/internal/section"
	"github.com/sectionrank/sectionrank/internal/source"
)

// Pipeline runs the end-to-end flow. Documents are processed strictly
// in input order, one at a time; the index is built once after all
// documents and queried exactly once.
type Pipeline struct {
	embedder embed.Embedder
	topK     int
	log      *slog.Logger

	// test seams
	open func(path string) (source.Document, error)
	now  func() time.Time
}

// Request is one ranking request.
type Request struct {
	Input      InputConfig
	Folder     string
	NumResults int
}

// New creates a pipeline. topK <= 0 uses the default retrieval depth.
func New(embedder embed.Embedder, topK int, log *slog.Logger) *Pipeline {
	if topK <= 0 {
		topK = index.DefaultTopK
	}
	return &Pipeline{
		embedder: embedder,
		topK:     topK,
		log:      log,
		open:     source.Open,
		now:      time.Now,
	}
}

// runContext accumulates per-document results for one run. Documents
// only ever append; no entry is mutated after its document completes.
type runContext struct {
	inputDocuments []string
	sections       []section.Section
}

// Run executes the pipeline. A nil Output with a nil error means the
// run stopped early with nothing to report; the reason is logged and
// the caller should exit cleanly.
func (p *Pipeline) Run(ctx context.Context, req Request) (*report.Output, error) {
	run := &runContext{}

	for _, name := range req.Input.Documents {
		path := filepath.Join(req.Folder, name)
		if _, err := os.Stat(path); err != nil {
			p.log.Info("missing document, skipping", "file", name)
			continue
		}
		if err := p.processDocument(name, path, run); err != nil {
			p.log.Info("document yielded no outline, stopping", "file", name, "error", err)
			return nil, nil
		}
	}

	if len(run.sections) == 0 {
		p.log.Info("no content found")
		return nil, nil
	}

	idx, err := index.Build(ctx, p.embedder, run.sections)
	if err != nil {
		return nil, fmt.Errorf("build index: %w", err)
	}
	if idx.Len() == 0 {
		p.log.Info("nothing to index")
		return nil, nil
	}

	query := req.Input.Persona + " " + req.Input.Job
	results, err := idx.Search(ctx, query, p.topK)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	out := report.Assemble(req.Input.Persona, req.Input.Job, run.inputDocuments, results, req.NumResults, p.now())
	return out, nil
}

// processDocument extracts the outline, resolves the title and segments
// one document, appending its sections to the run context. An error
// means the document produced no usable outline.
func (p *Pipeline) processDocument(name, path string, run *runContext) error {
	doc, err := p.open(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer doc.Close()

	headings := outline.Extract(doc, p.log)
	if len(headings) == 0 {
		return fmt.Errorf("no headings extracted")
	}
	title := outline.Resolve(doc, headings)

	bounds := outline.TopLevel(headings)
	if len(bounds) == 0 {
		// A document whose only structure is promoted labels still
		// gets sectioned rather than discarded wholesale.
		bounds = headings
	}

	secs := section.Split(lineStream(doc), bounds)
	for i := range secs {
		secs[i].Document = name
	}

	run.sections = append(run.sections, secs...)
	run.inputDocuments = append(run.inputDocuments, name)

	p.log.Info("processed document", "file", name, "title", title, "headings", len(headings), "sections", len(secs))
	return nil
}

// lineStream flattens a document into page-attributed lines in reading
// order.
func lineStream(doc source.Document) []section.Line {
	var lines []section.Line
	for i := 0; i < doc.PageCount(); i++ {
		for _, text := range strings.Split(doc.PageText(i), "\n") {
			lines = append(lines, section.Line{Text: text, Page: i})
		}
	}
	return lines
}
