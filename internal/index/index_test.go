package index

import (
	"context"
	"strings"
	"testing"

	"github.com/sectionrank/sectionrank/internal/section"
)

// directionEmbedder returns a fixed unit vector per keyword, so
// similarity ordering in tests is fully deterministic.
type directionEmbedder struct {
	directions map[string][]float32
	fallback   []float32
}

func (e *directionEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	for kw, vec := range e.directions {
		if strings.Contains(text, kw) {
			return vec, nil
		}
	}
	return e.fallback, nil
}

func testEmbedder() *directionEmbedder {
	return &directionEmbedder{
		directions: map[string][]float32{
			"baking":   {1, 0, 0},
			"hiking":   {0.6, 0.8, 0},
			"plumbing": {0, 0, 1},
		},
		fallback: []float32{0, 1, 0},
	}
}

func longContent(topic string) string {
	return "detailed notes about " + topic + " covering everything a reader could need.\n"
}

func TestBuild_AdmissionThreshold(t *testing.T) {
	sections := []section.Section{
		{Document: "a.pdf", Title: "Baking", Content: longContent("baking")},
		{Document: "b.pdf", Title: "x", Content: "y"}, // too short, skipped
	}

	idx, err := Build(context.Background(), testEmbedder(), sections)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if idx.Len() != 1 {
		t.Errorf("expected 1 admitted section, got %d", idx.Len())
	}
}

func TestBuild_EmptyIndex(t *testing.T) {
	sections := []section.Section{
		{Document: "a.pdf", Title: "x", Content: ""},
	}

	idx, err := Build(context.Background(), testEmbedder(), sections)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if idx.Len() != 0 {
		t.Errorf("expected empty index, got %d", idx.Len())
	}

	results, err := idx.Search(context.Background(), "anything", DefaultTopK)
	if err != nil {
		t.Fatalf("Search on empty index: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestSearch_ScoresDescending(t *testing.T) {
	sections := []section.Section{
		{Document: "trail.pdf", Title: "Hiking", Content: longContent("hiking")},
		{Document: "oven.pdf", Title: "Baking", Content: longContent("baking")},
		{Document: "pipes.pdf", Title: "Plumbing", Content: longContent("plumbing")},
	}

	idx, err := Build(context.Background(), testEmbedder(), sections)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	results, err := idx.Search(context.Background(), "all about baking bread", DefaultTopK)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results (k clamped to index size), got %d", len(results))
	}

	for i := 1; i < len(results); i++ {
		if results[i-1].Score < results[i].Score {
			t.Errorf("scores not descending at %d: %f < %f", i, results[i-1].Score, results[i].Score)
		}
	}

	if results[0].Section.Document != "oven.pdf" {
		t.Errorf("best match = %q, want oven.pdf", results[0].Section.Document)
	}
	if results[0].Score < 0.99 {
		t.Errorf("aligned vectors should score ~1, got %f", results[0].Score)
	}
}

func TestSearch_RespectsK(t *testing.T) {
	sections := []section.Section{
		{Document: "trail.pdf", Title: "Hiking", Content: longContent("hiking")},
		{Document: "oven.pdf", Title: "Baking", Content: longContent("baking")},
		{Document: "pipes.pdf", Title: "Plumbing", Content: longContent("plumbing")},
	}

	idx, err := Build(context.Background(), testEmbedder(), sections)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	results, err := idx.Search(context.Background(), "all about baking bread", 2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected 2 results, got %d", len(results))
	}
}
