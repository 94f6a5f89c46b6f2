// Package report assembles ranked sections into the output record and
// writes it as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/sectionrank/sectionrank/internal/index"
	"github.com/sectionrank/sectionrank/internal/normalize"
)

// minRefinedRunes filters out sections whose reflowed content is too
// short to be a real body (a heading with no text under it).
const minRefinedRunes = 10

// Metadata describes the run that produced an output record.
type Metadata struct {
	InputDocuments      []string `json:"input_documents"`
	Persona             string   `json:"persona"`
	JobToBeDone         string   `json:"job_to_be_done"`
	ProcessingTimestamp string   `json:"processing_timestamp"`
}

// ExtractedSection is one ranked outline entry. PageNumber is 1-based.
type ExtractedSection struct {
	Document       string `json:"document"`
	SectionTitle   string `json:"section_title"`
	ImportanceRank int    `json:"importance_rank"`
	PageNumber     int    `json:"page_number"`
}

// Subsection carries the human-readable summary of a ranked section.
type Subsection struct {
	Document    string `json:"document"`
	RefinedText string `json:"refined_text"`
	PageNumber  int    `json:"page_number"`
}

// Output is the complete result record of one run.
type Output struct {
	Metadata           Metadata           `json:"metadata"`
	ExtractedSections  []ExtractedSection `json:"extracted_sections"`
	SubsectionAnalysis []Subsection       `json:"subsection_analysis"`
}

// Assemble filters, ranks and truncates scored sections. Results whose
// reflowed content is too short are dropped before ranks are assigned,
// so importance_rank is a dense 1..N sequence over the kept results.
// Both lists are cut from the same ranked sequence, keeping them
// index-aligned up to numResults.
func Assemble(persona, job string, inputDocs []string, results []index.Result, numResults int, now time.Time) *Output {
	out := &Output{
		Metadata: Metadata{
			InputDocuments:      append([]string{}, inputDocs...),
			Persona:             persona,
			JobToBeDone:         job,
			ProcessingTimestamp: now.Format(time.RFC3339),
		},
		ExtractedSections:  []ExtractedSection{},
		SubsectionAnalysis: []Subsection{},
	}

	rank := 0
	for _, r := range results {
		refined := normalize.CombineLines(r.Section.Content)
		if utf8.RuneCountInString(refined) <= minRefinedRunes {
			continue
		}
		rank++
		out.ExtractedSections = append(out.ExtractedSections, ExtractedSection{
			Document:       r.Section.Document,
			SectionTitle:   r.Section.Title,
			ImportanceRank: rank,
			PageNumber:     r.Section.Page + 1,
		})
		out.SubsectionAnalysis = append(out.SubsectionAnalysis, Subsection{
			Document:    r.Section.Document,
			RefinedText: r.Section.Title + " - " + refined,
			PageNumber:  r.Section.Page + 1,
		})
	}

	if numResults >= 0 && len(out.ExtractedSections) > numResults {
		out.ExtractedSections = out.ExtractedSections[:numResults]
		out.SubsectionAnalysis = out.SubsectionAnalysis[:numResults]
	}

	return out
}

// Write serializes the output record to path as indented UTF-8 JSON,
// creating the output directory if absent. Non-ASCII is preserved.
func Write(path string, out *Output) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		f.Close()
		return fmt.Errorf("encode output: %w", err)
	}

	return f.Close()
}
