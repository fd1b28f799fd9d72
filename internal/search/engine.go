package search

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"sealcheck/internal/models"
)

// Scoring tiers, summed per query token. A token scores at most one tier
// per category: an exact name match outranks an exact keyword match, which
// outranks a substring overlap. The weights are a starting policy and may
// be tuned, but exact keyword matches must always outrank substring-only
// matches and the ordering must stay deterministic.
const (
	scoreNameExact    = 3
	scoreKeywordExact = 2
	scoreSubstring    = 1
)

// Engine ranks categories against free-text queries using an immutable
// index snapshot. It is a pure computation: no I/O, no locking, and
// identical input always produces identical ordered output.
type Engine struct {
	index *Index
}

// NewEngine returns an engine over the given index snapshot.
func NewEngine(ix *Index) *Engine {
	return &Engine{index: ix}
}

// Search resolves a raw query string into a ranked, de-duplicated list of
// categories. The query is normalized, split into tokens, and each token is
// matched against the index; per-token tier scores are summed per category
// so that candidates matching more of the query rank higher. When the query
// has several tokens, the full normalized query is additionally matched
// against category names as a unit, so multi-word names like "eye drops"
// win over their individual words.
//
// Ties are broken by requiresSeal (true first), then by name, then by slug,
// ascending. Names are not unique, so the slug (which is) makes the order a
// total one regardless of map iteration order.
// A query that matches nothing returns an empty list, never an error.
// Callers enforce the minimum query length; the engine accepts any input.
func (e *Engine) Search(rawQuery string) []*models.Category {
	norm := Normalize(rawQuery)
	if norm == "" {
		return []*models.Category{}
	}

	tokens := strings.Fields(norm)

	type candidate struct {
		category *models.Category
		score    int
	}
	scores := make(map[uuid.UUID]*candidate)

	for _, token := range tokens {
		for _, h := range e.index.Lookup(token) {
			tier := hitTier(h, false)
			if tier == 0 {
				continue
			}
			c, ok := scores[h.Category.ID]
			if !ok {
				c = &candidate{category: h.Category}
				scores[h.Category.ID] = c
			}
			c.score += tier
		}
	}

	// The unsplit query acts as one extra token matched against names only.
	if len(tokens) > 1 {
		for _, h := range e.index.Lookup(norm) {
			tier := hitTier(h, true)
			if tier == 0 {
				continue
			}
			c, ok := scores[h.Category.ID]
			if !ok {
				c = &candidate{category: h.Category}
				scores[h.Category.ID] = c
			}
			c.score += tier
		}
	}

	ranked := make([]candidate, 0, len(scores))
	for _, c := range scores {
		ranked = append(ranked, *c)
	}
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.score != b.score {
			return a.score > b.score
		}
		if a.category.RequiresSeal != b.category.RequiresSeal {
			return a.category.RequiresSeal
		}
		if an, bn := Normalize(a.category.Name), Normalize(b.category.Name); an != bn {
			return an < bn
		}
		return a.category.Slug < b.category.Slug
	})

	results := make([]*models.Category, len(ranked))
	for i, c := range ranked {
		results[i] = c.category
	}
	return results
}

// hitTier maps one token's match paths to its score tier. With nameOnly set,
// keyword paths are ignored; that mode serves the full-query token, which
// only matches against category names.
func hitTier(h Hit, nameOnly bool) int {
	if nameOnly {
		switch {
		case h.NameExact:
			return scoreNameExact
		case h.NameSubstring:
			return scoreSubstring
		}
		return 0
	}
	switch {
	case h.NameExact:
		return scoreNameExact
	case h.KeywordExact:
		return scoreKeywordExact
	case h.NameSubstring || h.KeywordSubstring:
		return scoreSubstring
	}
	return 0
}
