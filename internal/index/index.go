// Package index builds an in-memory inner-product vector index over
// document sections and answers top-k similarity queries.
package index

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	chromem "github.com/philippgille/chromem-go"

	"github.com/sectionrank/sectionrank/internal/embed"
	"github.com/sectionrank/sectionrank/internal/section"
)

const (
	// MinEmbedRunes is the admission threshold: sections whose embedding
	// text is shorter carry too little signal to index.
	MinEmbedRunes = 30

	// DefaultTopK is the default retrieval depth before filtering.
	DefaultTopK = 25
)

// Index holds admitted sections alongside their vectors. Built once per
// run, queried once, never persisted.
type Index struct {
	coll     *chromem.Collection
	sections []section.Section
	embedder embed.Embedder
}

// Result pairs an admitted section with its similarity to a query,
// in [-1, 1], higher is more relevant.
type Result struct {
	Score   float32
	Section section.Section
}

// Build embeds every admissible section and adds it to a fresh index.
// The embedding text is the document name, title and raw content joined
// by spaces. Check Len before querying; a run where nothing survives
// admission produces an empty index, not an error.
func Build(ctx context.Context, embedder embed.Embedder, sections []section.Section) (*Index, error) {
	db := chromem.NewDB()
	coll, err := db.CreateCollection("sections", nil, func(ctx context.Context, text string) ([]float32, error) {
		return embedder.Embed(ctx, text)
	})
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}

	idx := &Index{coll: coll, embedder: embedder}

	var docs []chromem.Document
	for _, s := range sections {
		full := s.Document + " " + s.Title + " " + s.Content
		if utf8.RuneCountInString(strings.TrimSpace(full)) < MinEmbedRunes {
			continue
		}
		vec, err := embedder.Embed(ctx, full)
		if err != nil {
			return nil, fmt.Errorf("embed section %q: %w", s.Title, err)
		}
		docs = append(docs, chromem.Document{
			ID:        strconv.Itoa(len(idx.sections)),
			Content:   full,
			Embedding: embed.Normalize(vec),
		})
		idx.sections = append(idx.sections, s)
	}

	if len(docs) > 0 {
		if err := coll.AddDocuments(ctx, docs, 1); err != nil {
			return nil, fmt.Errorf("add documents: %w", err)
		}
	}

	return idx, nil
}

// Len reports how many sections were admitted.
func (x *Index) Len() int { return len(x.sections) }

// Search embeds the query and returns up to k sections by descending
// similarity. Ties keep insertion order.
func (x *Index) Search(ctx context.Context, query string, k int) ([]Result, error) {
	if k > len(x.sections) {
		k = len(x.sections)
	}
	if k <= 0 {
		return nil, nil
	}

	vec, err := x.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	found, err := x.coll.QueryEmbedding(ctx, embed.Normalize(vec), k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("query index: %w", err)
	}

	results := make([]Result, 0, len(found))
	for _, r := range found {
		i, err := strconv.Atoi(r.ID)
		if err != nil || i < 0 || i >= len(x.sections) {
			continue
		}
		results = append(results, Result{Score: r.Similarity, Section: x.sections[i]})
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })

	return results, nil
}
