package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"sealcheck/internal/models"
	"sealcheck/internal/store"
)

// Categories serves the category listing and detail endpoints. Both are
// plain read-throughs to the store; searching happens elsewhere.
type Categories struct {
	categoryStore *store.CategoryStore
}

// NewCategories creates the category handler group.
func NewCategories(categoryStore *store.CategoryStore) *Categories {
	return &Categories{categoryStore: categoryStore}
}

// List handles GET /api/categories with optional parent_id and
// requires_seal filters.
func (h *Categories) List(w http.ResponseWriter, r *http.Request) {
	var parentID *uuid.UUID
	if v := r.URL.Query().Get("parent_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "parent_id must be a valid UUID.")
			return
		}
		parentID = &id
	}

	var requiresSeal *bool
	switch r.URL.Query().Get("requires_seal") {
	case "":
	case "true":
		v := true
		requiresSeal = &v
	case "false":
		v := false
		requiresSeal = &v
	default:
		respondError(w, http.StatusBadRequest, "requires_seal must be true or false.")
		return
	}

	categories, err := h.categoryStore.List(parentID, requiresSeal)
	if err != nil {
		slog.Error("list categories failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	summaries := make([]models.CategorySummary, 0, len(categories))
	for i := range categories {
		summaries = append(summaries, categories[i].Summary())
	}
	respondJSON(w, http.StatusOK, summaries)
}

// Detail handles GET /api/categories/{slug}, returning the full category
// record including regulation text, seal guidance, keywords, and relations.
func (h *Categories) Detail(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")

	category, err := h.categoryStore.FindBySlug(slugParam)
	if err != nil {
		slog.Error("find category by slug failed", "error", err, "slug", slugParam)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if category == nil {
		respondError(w, http.StatusNotFound, "Category not found.")
		return
	}

	respondJSON(w, http.StatusOK, category)
}
