package store

import (
	"database/sql"
	"fmt"

	"sealcheck/internal/models"
)

// ReportStore handles user-submitted tampering reports. Reports are only
// ever inserted here; moderation happens through an external process.
type ReportStore struct {
	db *sql.DB
}

// NewReportStore creates a new ReportStore with the given database connection.
func NewReportStore(db *sql.DB) *ReportStore {
	return &ReportStore{db: db}
}

// Create inserts a new report with status pending and returns it with the
// generated ID and creation timestamp.
func (s *ReportStore) Create(r *models.Report) (*models.Report, error) {
	result := &models.Report{}
	err := s.db.QueryRow(`
		INSERT INTO reports (product_name, brand, upc, store_name,
		                     store_location, description, photo_url, email, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, product_name, brand, upc, store_name,
		          store_location, description, photo_url, email, status, created_at
	`, r.ProductName, r.Brand, r.UPC, r.StoreName,
		r.StoreLocation, r.Description, r.PhotoURL, r.Email, models.ReportStatusPending,
	).Scan(
		&result.ID, &result.ProductName, &result.Brand, &result.UPC, &result.StoreName,
		&result.StoreLocation, &result.Description, &result.PhotoURL, &result.Email,
		&result.Status, &result.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}
	return result, nil
}
