package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"sealcheck/internal/cache"
	"sealcheck/internal/models"
	"sealcheck/internal/search"
)

// searchResponse is the envelope returned by the search endpoint. Total
// always equals the length of Categories; there is no pagination because
// the keyword vocabulary is curated and result sets stay small.
type searchResponse struct {
	Categories []models.CategorySummary `json:"categories"`
	Query      string                   `json:"query"`
	Total      int                      `json:"total"`
}

// Search serves the keyword-to-category search endpoint. It validates the
// query, delegates to the match engine behind the index holder, and shapes
// the ranked categories into summary projections. searchCache may be nil.
type Search struct {
	holder      *search.Holder
	searchCache *cache.SearchCache
}

// NewSearch creates the search handler group.
func NewSearch(holder *search.Holder, searchCache *cache.SearchCache) *Search {
	return &Search{holder: holder, searchCache: searchCache}
}

// Query handles GET /api/search?q=.
func (h *Search) Query(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	raw := r.URL.Query().Get("q")

	query, errMsg := validateQuery(raw)
	if errMsg != "" {
		respondError(w, http.StatusBadRequest, errMsg)
		return
	}

	// Cached responses are keyed by the validated query text, not its
	// normalized form: the envelope echoes the query as the client sent
	// it, so "TYLENOL" and "tylenol" must not share a cached body.
	norm := search.Normalize(query)
	if body, ok := h.searchCache.Get(ctx, query); ok {
		respondRaw(w, http.StatusOK, body)
		return
	}

	eng, err := h.holder.Engine()
	if err != nil {
		// Index not built yet: transient, the client should retry shortly.
		respondError(w, http.StatusServiceUnavailable, "Search index is still loading. Try again in a moment.")
		return
	}

	results := eng.Search(norm)
	summaries := make([]models.CategorySummary, 0, len(results))
	for _, c := range results {
		summaries = append(summaries, c.Summary())
	}

	resp := searchResponse{
		Categories: summaries,
		Query:      query,
		Total:      len(summaries),
	}

	body, err := json.Marshal(resp)
	if err != nil {
		slog.Error("marshal search response failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	h.searchCache.Set(ctx, query, body)
	respondRaw(w, http.StatusOK, body)
}
