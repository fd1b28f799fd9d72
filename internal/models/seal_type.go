package models

import "github.com/google/uuid"

// SealType is a reference vocabulary entry describing one tamper-evident
// mechanism (foil inner seal, shrink band, and so on). Categories reference
// seal types loosely by slug in their SealTypes list, not by foreign key.
type SealType struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	Description      *string   `json:"description"`
	HowToCheck       *string   `json:"how_to_check"`
	SignsOfTampering []string  `json:"signs_of_tampering"`
	CommonProducts   []string  `json:"common_products"`
	ImageURL         *string   `json:"image_url"`
}
