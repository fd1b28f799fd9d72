package models

import (
	"time"

	"github.com/google/uuid"
)

// ReportStatus tracks where a user-submitted report sits in the moderation
// pipeline. Reports are always created pending; status changes happen in an
// external moderation process, never through this service.
type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusReviewed ReportStatus = "reviewed"
	ReportStatusVerified ReportStatus = "verified"
)

// Valid reports whether s is a known report status.
func (s ReportStatus) Valid() bool {
	switch s {
	case ReportStatusPending, ReportStatusReviewed, ReportStatusVerified:
		return true
	}
	return false
}

// Report is a user submission describing a suspected tampering problem with
// a specific product. Only product name and description are required.
type Report struct {
	ID            uuid.UUID    `json:"id"`
	ProductName   string       `json:"product_name"`
	Brand         *string      `json:"brand"`
	UPC           *string      `json:"upc"`
	StoreName     *string      `json:"store_name"`
	StoreLocation *string      `json:"store_location"`
	Description   string       `json:"description"`
	PhotoURL      *string      `json:"photo_url"`
	Email         *string      `json:"email"`
	Status        ReportStatus `json:"status"`
	CreatedAt     time.Time    `json:"created_at"`
}
