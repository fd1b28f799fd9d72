package models

import (
	"time"

	"github.com/google/uuid"
)

// Article is a static educational content page written in Markdown.
// Articles are read-only at serving time; only published articles are
// visible through the API.
type Article struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Content         string    `json:"content"`
	MetaDescription *string   `json:"meta_description"`
	Published       bool      `json:"published"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ArticleSummary is the listing projection of an article, without the body.
type ArticleSummary struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	MetaDescription *string   `json:"meta_description"`
	CreatedAt       time.Time `json:"created_at"`
}

// Summary returns the listing projection of the article.
func (a *Article) Summary() ArticleSummary {
	return ArticleSummary{
		ID:              a.ID,
		Title:           a.Title,
		Slug:            a.Slug,
		MetaDescription: a.MetaDescription,
		CreatedAt:       a.CreatedAt,
	}
}
