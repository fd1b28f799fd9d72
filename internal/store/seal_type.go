package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"sealcheck/internal/models"
)

// SealTypeStore handles seal type reference vocabulary queries.
type SealTypeStore struct {
	db *sql.DB
}

// NewSealTypeStore creates a new SealTypeStore with the given database connection.
func NewSealTypeStore(db *sql.DB) *SealTypeStore {
	return &SealTypeStore{db: db}
}

// List returns all seal types ordered by name.
func (s *SealTypeStore) List() ([]models.SealType, error) {
	rows, err := s.db.Query(`
		SELECT id, name, slug, description, how_to_check,
		       signs_of_tampering, common_products, image_url
		FROM seal_types
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("list seal types: %w", err)
	}
	defer rows.Close()

	var sealTypes []models.SealType
	for rows.Next() {
		var st models.SealType
		var signs, products []byte
		if err := rows.Scan(
			&st.ID, &st.Name, &st.Slug, &st.Description, &st.HowToCheck,
			&signs, &products, &st.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("scan seal type: %w", err)
		}
		if len(signs) > 0 {
			if err := json.Unmarshal(signs, &st.SignsOfTampering); err != nil {
				return nil, fmt.Errorf("decode signs_of_tampering: %w", err)
			}
		}
		if len(products) > 0 {
			if err := json.Unmarshal(products, &st.CommonProducts); err != nil {
				return nil, fmt.Errorf("decode common_products: %w", err)
			}
		}
		sealTypes = append(sealTypes, st)
	}
	return sealTypes, rows.Err()
}
