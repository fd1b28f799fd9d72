package handlers

import (
	"log/slog"
	"net/http"

	"sealcheck/internal/models"
	"sealcheck/internal/store"
)

// SealTypes serves the seal type reference vocabulary.
type SealTypes struct {
	sealTypeStore *store.SealTypeStore
}

// NewSealTypes creates the seal type handler group.
func NewSealTypes(sealTypeStore *store.SealTypeStore) *SealTypes {
	return &SealTypes{sealTypeStore: sealTypeStore}
}

// List handles GET /api/seal-types.
func (h *SealTypes) List(w http.ResponseWriter, r *http.Request) {
	sealTypes, err := h.sealTypeStore.List()
	if err != nil {
		slog.Error("list seal types failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if sealTypes == nil {
		sealTypes = []models.SealType{}
	}
	respondJSON(w, http.StatusOK, sealTypes)
}
