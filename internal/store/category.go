// Package store contains the data access layer: one store per aggregate,
// each wrapping hand-written SQL over a shared *sql.DB pool. All data is
// created and updated by the offline seeding process; at request-serving
// time every store here is read-only except ReportStore.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"sealcheck/internal/models"
)

// categoryColumns is the full column list selected for every category query,
// kept in one place so Scan calls stay in sync.
const categoryColumns = `id, name, slug, description, requires_seal,
	       regulation_code, regulation_name, regulation_summary, regulation_url,
	       seal_types, seal_description, what_to_do,
	       parent_category_id, created_at, updated_at`

// CategoryStore handles all product category and keyword database operations.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore creates a new CategoryStore with the given database connection.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// scanCategory scans one category row, decoding the seal_types JSONB array.
func scanCategory(row interface{ Scan(...any) error }) (*models.Category, error) {
	c := &models.Category{}
	var sealTypes []byte
	err := row.Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.RequiresSeal,
		&c.RegulationCode, &c.RegulationName, &c.RegulationSummary, &c.RegulationURL,
		&sealTypes, &c.SealDescription, &c.WhatToDo,
		&c.ParentID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(sealTypes) > 0 {
		if err := json.Unmarshal(sealTypes, &c.SealTypes); err != nil {
			return nil, fmt.Errorf("decode seal_types: %w", err)
		}
	}
	return c, nil
}

// List returns categories ordered by name, optionally filtered by parent
// and/or seal requirement. A nil filter means "any".
func (s *CategoryStore) List(parentID *uuid.UUID, requiresSeal *bool) ([]models.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM product_categories WHERE 1=1`
	args := []any{}
	if parentID != nil {
		args = append(args, *parentID)
		query += fmt.Sprintf(" AND parent_category_id = $%d", len(args))
	}
	if requiresSeal != nil {
		args = append(args, *requiresSeal)
		query += fmt.Sprintf(" AND requires_seal = $%d", len(args))
	}
	query += " ORDER BY name"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}

// ListAll returns every category in the data set, in no particular order.
// Used by the search index builder.
func (s *CategoryStore) ListAll() ([]models.Category, error) {
	return s.List(nil, nil)
}

// ListKeywords returns every keyword record with its owning category ID.
// Used by the search index builder.
func (s *CategoryStore) ListKeywords() ([]models.Keyword, error) {
	rows, err := s.db.Query(`
		SELECT id, category_id, keyword
		FROM product_keywords
		ORDER BY keyword
	`)
	if err != nil {
		return nil, fmt.Errorf("list keywords: %w", err)
	}
	defer rows.Close()

	var keywords []models.Keyword
	for rows.Next() {
		var kw models.Keyword
		if err := rows.Scan(&kw.ID, &kw.CategoryID, &kw.Keyword); err != nil {
			return nil, fmt.Errorf("scan keyword: %w", err)
		}
		keywords = append(keywords, kw)
	}
	return keywords, rows.Err()
}

// FindBySlug retrieves full category detail by slug, including its keyword
// list, child category summaries, and parent summary. Returns nil if the
// slug is unknown.
func (s *CategoryStore) FindBySlug(slug string) (*models.Category, error) {
	c, err := scanCategory(s.db.QueryRow(
		`SELECT `+categoryColumns+` FROM product_categories WHERE slug = $1`, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by slug: %w", err)
	}

	rows, err := s.db.Query(`
		SELECT keyword FROM product_keywords
		WHERE category_id = $1
		ORDER BY keyword
	`, c.ID)
	if err != nil {
		return nil, fmt.Errorf("load category keywords: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var kw string
		if err := rows.Scan(&kw); err != nil {
			return nil, fmt.Errorf("scan category keyword: %w", err)
		}
		c.Keywords = append(c.Keywords, kw)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	children, err := s.List(&c.ID, nil)
	if err != nil {
		return nil, fmt.Errorf("load child categories: %w", err)
	}
	for i := range children {
		c.Children = append(c.Children, children[i].Summary())
	}

	if c.ParentID != nil {
		parent, err := scanCategory(s.db.QueryRow(
			`SELECT `+categoryColumns+` FROM product_categories WHERE id = $1`, *c.ParentID))
		if err != nil && err != sql.ErrNoRows {
			return nil, fmt.Errorf("load parent category: %w", err)
		}
		if parent != nil {
			summary := parent.Summary()
			c.Parent = &summary
		}
	}

	return c, nil
}
