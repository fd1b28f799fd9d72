package models

import (
	"time"

	"github.com/google/uuid"
)

// Category represents one regulatory product classification, carrying the
// tamper-evident packaging requirement that applies to products in it.
// Categories form a two-level tree via ParentID: a child always points at a
// top-level category, never at another child.
type Category struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	Slug              string     `json:"slug"`
	Description       *string    `json:"description"`
	RequiresSeal      bool       `json:"requires_seal"`
	RegulationCode    *string    `json:"regulation_code"`
	RegulationName    *string    `json:"regulation_name"`
	RegulationSummary *string    `json:"regulation_summary"`
	RegulationURL     *string    `json:"regulation_url"`
	SealTypes         []string   `json:"seal_types"`
	SealDescription   *string    `json:"seal_description"`
	WhatToDo          *string    `json:"what_to_do"`
	ParentID          *uuid.UUID `json:"parent_category_id"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`

	// Virtual fields populated by store methods for the detail view.
	Keywords []string          `json:"keywords,omitempty"`
	Children []CategorySummary `json:"children,omitempty"`
	Parent   *CategorySummary  `json:"parent,omitempty"`
}

// CategorySummary is the lightweight projection used in listings and search
// results. Regulation text and seal detail are deliberately withheld; they
// are served only by the category-detail endpoint.
type CategorySummary struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Slug           string     `json:"slug"`
	Description    *string    `json:"description"`
	RequiresSeal   bool       `json:"requires_seal"`
	RegulationCode *string    `json:"regulation_code"`
	ParentID       *uuid.UUID `json:"parent_category_id"`
}

// Summary returns the listing projection of the category.
func (c *Category) Summary() CategorySummary {
	return CategorySummary{
		ID:             c.ID,
		Name:           c.Name,
		Slug:           c.Slug,
		Description:    c.Description,
		RequiresSeal:   c.RequiresSeal,
		RegulationCode: c.RegulationCode,
		ParentID:       c.ParentID,
	}
}

// Keyword is a single search term owned by exactly one category. Keyword
// text need not be unique across categories; ambiguity is resolved by
// ranking, not by uniqueness constraints.
type Keyword struct {
	ID         uuid.UUID `json:"id"`
	CategoryID uuid.UUID `json:"category_id"`
	Keyword    string    `json:"keyword"`
}
