package store

import (
	"database/sql"
	"fmt"

	"sealcheck/internal/models"
)

// ArticleStore handles educational article queries. Only published articles
// are served; drafts stay invisible to the API.
type ArticleStore struct {
	db *sql.DB
}

// NewArticleStore creates a new ArticleStore with the given database connection.
func NewArticleStore(db *sql.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// ListPublished returns all published articles, newest first.
func (s *ArticleStore) ListPublished() ([]models.Article, error) {
	rows, err := s.db.Query(`
		SELECT id, title, slug, content, meta_description, published, created_at, updated_at
		FROM articles
		WHERE published = true
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list published articles: %w", err)
	}
	defer rows.Close()

	var articles []models.Article
	for rows.Next() {
		var a models.Article
		if err := rows.Scan(
			&a.ID, &a.Title, &a.Slug, &a.Content, &a.MetaDescription,
			&a.Published, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// FindPublishedBySlug retrieves a published article by slug. Returns nil
// when the slug is unknown or the article is a draft.
func (s *ArticleStore) FindPublishedBySlug(slug string) (*models.Article, error) {
	a := &models.Article{}
	err := s.db.QueryRow(`
		SELECT id, title, slug, content, meta_description, published, created_at, updated_at
		FROM articles
		WHERE slug = $1 AND published = true
	`, slug).Scan(
		&a.ID, &a.Title, &a.Slug, &a.Content, &a.MetaDescription,
		&a.Published, &a.CreatedAt, &a.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find article by slug: %w", err)
	}
	return a, nil
}
