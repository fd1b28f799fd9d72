package search

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"sealcheck/internal/models"
)

// MalformedRecordError identifies a category or keyword record that cannot
// be indexed. A build fails as a whole on the first malformed record rather
// than silently indexing around it.
type MalformedRecordError struct {
	Kind   string // "category" or "keyword"
	ID     uuid.UUID
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed %s record %s: %s", e.Kind, e.ID, e.Reason)
}

// entry is one indexed category with its normalized name and keyword set.
type entry struct {
	category *models.Category
	name     string
	keywords []string
	kwSet    map[string]struct{}
}

// Index is an immutable snapshot of the category and keyword data set,
// queryable by normalized token. Build a new Index and swap it into a
// Holder to pick up data changes; an Index is never mutated after Build,
// so it is safe for unlimited concurrent readers.
type Index struct {
	entries  []entry
	children map[uuid.UUID][]uuid.UUID // parent ID -> child IDs, tree depth capped at 2
	keywords int
}

// Build constructs an index from the full category and keyword data set.
// An empty data set produces a valid empty index. Records that would corrupt
// search results are rejected with a MalformedRecordError: categories with a
// blank name, parent references to unknown or non-top-level categories, and
// keywords that are blank or reference an unknown category.
func Build(categories []models.Category, keywords []models.Keyword) (*Index, error) {
	ix := &Index{
		children: make(map[uuid.UUID][]uuid.UUID),
	}

	byID := make(map[uuid.UUID]int, len(categories))
	for i := range categories {
		c := &categories[i]
		name := Normalize(c.Name)
		if name == "" {
			return nil, &MalformedRecordError{Kind: "category", ID: c.ID, Reason: "empty name"}
		}
		if _, dup := byID[c.ID]; dup {
			return nil, &MalformedRecordError{Kind: "category", ID: c.ID, Reason: "duplicate id"}
		}
		byID[c.ID] = len(ix.entries)
		ix.entries = append(ix.entries, entry{
			category: c,
			name:     name,
			kwSet:    make(map[string]struct{}),
		})
	}

	// Validate parent links: a parent must exist and must itself be a root,
	// keeping the tree at most two levels deep with no cycles.
	for i := range ix.entries {
		c := ix.entries[i].category
		if c.ParentID == nil {
			continue
		}
		if *c.ParentID == c.ID {
			return nil, &MalformedRecordError{Kind: "category", ID: c.ID, Reason: "category is its own parent"}
		}
		pi, ok := byID[*c.ParentID]
		if !ok {
			return nil, &MalformedRecordError{Kind: "category", ID: c.ID, Reason: "parent category does not exist"}
		}
		if ix.entries[pi].category.ParentID != nil {
			return nil, &MalformedRecordError{Kind: "category", ID: c.ID, Reason: "parent is not a top-level category"}
		}
		ix.children[*c.ParentID] = append(ix.children[*c.ParentID], c.ID)
	}

	for _, kw := range keywords {
		text := Normalize(kw.Keyword)
		if text == "" {
			return nil, &MalformedRecordError{Kind: "keyword", ID: kw.ID, Reason: "empty keyword text"}
		}
		ei, ok := byID[kw.CategoryID]
		if !ok {
			return nil, &MalformedRecordError{Kind: "keyword", ID: kw.ID, Reason: "keyword references unknown category"}
		}
		e := &ix.entries[ei]
		if _, seen := e.kwSet[text]; seen {
			continue
		}
		e.kwSet[text] = struct{}{}
		e.keywords = append(e.keywords, text)
		ix.keywords++
	}

	return ix, nil
}

// Hit describes every path by which a single category matched one token.
// A category appears at most once per Lookup call regardless of how many
// keywords matched.
type Hit struct {
	Category         *models.Category
	NameExact        bool
	KeywordExact     bool
	NameSubstring    bool
	KeywordSubstring bool
}

// Lookup returns the categories whose normalized name or keyword set matches
// token exactly or contains it as a substring. Results are de-duplicated by
// category identity. The token must already be normalized.
func (ix *Index) Lookup(token string) []Hit {
	if token == "" {
		return nil
	}

	// The vocabulary is curated and small (a few thousand keywords at most),
	// so the whole lookup is a plain linear scan over the entries.
	hits := make([]Hit, 0, 4)
	for i := range ix.entries {
		e := &ix.entries[i]
		h := Hit{Category: e.category}

		h.NameExact = e.name == token
		if !h.NameExact && strings.Contains(e.name, token) {
			h.NameSubstring = true
		}
		if _, ok := e.kwSet[token]; ok {
			h.KeywordExact = true
		} else {
			for _, kw := range e.keywords {
				if strings.Contains(kw, token) {
					h.KeywordSubstring = true
					break
				}
			}
		}

		if h.NameExact || h.KeywordExact || h.NameSubstring || h.KeywordSubstring {
			hits = append(hits, h)
		}
	}
	return hits
}

// ChildrenOf returns the IDs of the direct children of a top-level category,
// in data-set order. Built alongside the keyword index so render-time code
// never chases parent pointers.
func (ix *Index) ChildrenOf(parentID uuid.UUID) []uuid.UUID {
	return ix.children[parentID]
}

// Categories returns the number of indexed categories.
func (ix *Index) Categories() int { return len(ix.entries) }

// Keywords returns the number of indexed keywords after normalization and
// per-category de-duplication.
func (ix *Index) Keywords() int { return ix.keywords }
