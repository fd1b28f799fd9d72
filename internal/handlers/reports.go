package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"sealcheck/internal/models"
	"sealcheck/internal/storage"
	"sealcheck/internal/store"
)

// maxPhotoSize caps report photo uploads at 5 MB.
const maxPhotoSize = 5 << 20

// reportResponse is the envelope returned after a report is created.
// It intentionally echoes back only a subset of what was submitted.
type reportResponse struct {
	ID          uuid.UUID           `json:"id"`
	ProductName string              `json:"product_name"`
	Brand       *string             `json:"brand"`
	Status      models.ReportStatus `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
}

// Reports serves user report submission. Reports are insert-only here;
// moderation happens through an external process. storageClient may be nil
// when photo uploads are not configured.
type Reports struct {
	reportStore   *store.ReportStore
	storageClient *storage.Client
}

// NewReports creates the report handler group.
func NewReports(reportStore *store.ReportStore, storageClient *storage.Client) *Reports {
	return &Reports{reportStore: reportStore, storageClient: storageClient}
}

// Create handles POST /api/reports.
func (h *Reports) Create(w http.ResponseWriter, r *http.Request) {
	var in reportInput
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Request body must be valid JSON.")
		return
	}

	if msg := validateReport(&in); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	report, err := h.reportStore.Create(&models.Report{
		ProductName:   in.ProductName,
		Brand:         optional(in.Brand),
		UPC:           optional(in.UPC),
		StoreName:     optional(in.StoreName),
		StoreLocation: optional(in.StoreLocation),
		Description:   in.Description,
		PhotoURL:      optional(in.PhotoURL),
		Email:         optional(in.Email),
	})
	if err != nil {
		slog.Error("create report failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respondJSON(w, http.StatusCreated, reportResponse{
		ID:          report.ID,
		ProductName: report.ProductName,
		Brand:       report.Brand,
		Status:      report.Status,
		CreatedAt:   report.CreatedAt,
	})
}

// UploadPhoto handles POST /api/reports/photo. The photo is stored first
// and its URL submitted with the report afterwards, so a failed report
// submission never strands the user re-uploading.
func (h *Reports) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	if h.storageClient == nil {
		respondError(w, http.StatusServiceUnavailable, "Photo uploads are not available.")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoSize)
	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		respondError(w, http.StatusBadRequest, "Photo must be a multipart upload of at most 5 MB.")
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Missing photo file field.")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(w, http.StatusBadRequest, "Photo must be an image.")
		return
	}

	key := "reports/" + uuid.NewString() + strings.ToLower(path.Ext(header.Filename))
	if err := h.storageClient.Upload(r.Context(), key, contentType, file, header.Size); err != nil {
		slog.Error("upload report photo failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{
		"photo_url": h.storageClient.FileURL(key),
	})
}

// optional maps an empty string to a nil pointer for nullable columns.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
