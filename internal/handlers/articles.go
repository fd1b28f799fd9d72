package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sealcheck/internal/markdown"
	"sealcheck/internal/models"
	"sealcheck/internal/store"
)

// articleDetailResponse carries the article with its Markdown body rendered
// to HTML, so clients do not need their own renderer.
type articleDetailResponse struct {
	models.Article
	ContentHTML string `json:"content_html"`
}

// Articles serves the educational article endpoints. Only published
// articles are visible.
type Articles struct {
	articleStore *store.ArticleStore
}

// NewArticles creates the article handler group.
func NewArticles(articleStore *store.ArticleStore) *Articles {
	return &Articles{articleStore: articleStore}
}

// List handles GET /api/articles.
func (h *Articles) List(w http.ResponseWriter, r *http.Request) {
	articles, err := h.articleStore.ListPublished()
	if err != nil {
		slog.Error("list articles failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	summaries := make([]models.ArticleSummary, 0, len(articles))
	for i := range articles {
		summaries = append(summaries, articles[i].Summary())
	}
	respondJSON(w, http.StatusOK, summaries)
}

// Detail handles GET /api/articles/{slug}.
func (h *Articles) Detail(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")

	article, err := h.articleStore.FindPublishedBySlug(slugParam)
	if err != nil {
		slog.Error("find article by slug failed", "error", err, "slug", slugParam)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if article == nil {
		respondError(w, http.StatusNotFound, "Article not found.")
		return
	}

	html, err := markdown.ToHTML(article.Content)
	if err != nil {
		slog.Error("render article markdown failed", "error", err, "slug", slugParam)
		// Omit the rendered body rather than failing the whole request;
		// clients still get the raw Markdown in content.
		html = ""
	}

	respondJSON(w, http.StatusOK, articleDetailResponse{
		Article:     *article,
		ContentHTML: html,
	})
}
