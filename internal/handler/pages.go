package handler

import (
	"errors"
	"net/http"

	"github.com/Ze-Austin/ze-blog/internal/service"
)

// Home lists every published article.
// GET /
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	articles, err := h.articles.List(r.Context())
	if err != nil {
		h.serverError(w, r, "list articles", err)
		return
	}
	h.render(w, r, http.StatusOK, "home", "Home", articles)
}

// About renders the static informational page.
// GET /about
func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "about", "About", nil)
}

// Article shows a single article, or the 404 page when it is absent.
// GET /article/{id}
func (h *Handler) Article(w http.ResponseWriter, r *http.Request) {
	id := articleID(r)
	if id == 0 {
		h.NotFound(w, r)
		return
	}

	article, err := h.articles.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			h.NotFound(w, r)
			return
		}
		h.serverError(w, r, "load article", err)
		return
	}

	h.render(w, r, http.StatusOK, "article", article.Title, article)
}
