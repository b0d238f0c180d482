package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Ze-Austin/ze-blog/internal/auth"
	"github.com/Ze-Austin/ze-blog/internal/service"
)

// ContributeForm renders the new-article form.
// GET /contribute
func (h *Handler) ContributeForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "contribute", "Contribute", nil)
}

// Contribute publishes a new article owned by the current user, then
// returns to the form so another post can follow. Titles are unique
// across the whole blog.
// POST /contribute
func (h *Handler) Contribute(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	article, err := h.articles.Create(r.Context(), user,
		r.PostFormValue("title"),
		r.PostFormValue("content"),
	)
	if err != nil {
		if errors.Is(err, service.ErrTitleTaken) {
			h.flash(w, r, "This article already exists. Please choose a new title.")
			http.Redirect(w, r, "/contribute", http.StatusSeeOther)
			return
		}
		h.serverError(w, r, "create article", err)
		return
	}

	h.logger.Info("article created",
		"article_id", article.ID,
		"user_id", user.ID,
	)

	h.flash(w, r, "Thanks for sharing your thoughts.")
	http.Redirect(w, r, "/contribute", http.StatusSeeOther)
}

// EditForm renders the edit form pre-filled with the article, after the
// same ownership check the submission runs.
// GET /edit/{id}
func (h *Handler) EditForm(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

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

	if !article.OwnedBy(user.ID) {
		h.flash(w, r, "You cannot edit another user's article.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.render(w, r, http.StatusOK, "edit", "Edit "+article.Title, article)
}

// Edit overwrites an article's title and content if the current user
// owns it, then shows the updated article.
// POST /edit/{id}
func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	id := articleID(r)
	if id == 0 {
		h.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	article, err := h.articles.Update(r.Context(), user, id,
		r.PostFormValue("title"),
		r.PostFormValue("content"),
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrArticleNotFound):
			h.NotFound(w, r)
		case errors.Is(err, service.ErrNotOwner):
			h.flash(w, r, "You cannot edit another user's article.")
			http.Redirect(w, r, "/", http.StatusSeeOther)
		case errors.Is(err, service.ErrTitleTaken):
			h.flash(w, r, "This article already exists. Please choose a new title.")
			http.Redirect(w, r, fmt.Sprintf("/edit/%d", id), http.StatusSeeOther)
		default:
			h.serverError(w, r, "update article", err)
		}
		return
	}

	h.logger.Info("article updated",
		"article_id", article.ID,
		"user_id", user.ID,
	)

	h.flash(w, r, "Your changes have been saved.")
	http.Redirect(w, r, fmt.Sprintf("/article/%d", article.ID), http.StatusSeeOther)
}

// Delete removes an article if the current user owns it.
// GET /delete/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	id := articleID(r)
	if id == 0 {
		h.NotFound(w, r)
		return
	}

	err := h.articles.Delete(r.Context(), user, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrArticleNotFound):
			h.NotFound(w, r)
		case errors.Is(err, service.ErrNotOwner):
			h.flash(w, r, "You cannot delete another user's article.")
			http.Redirect(w, r, "/", http.StatusSeeOther)
		default:
			h.serverError(w, r, "delete article", err)
		}
		return
	}

	h.logger.Info("article deleted",
		"article_id", id,
		"user_id", user.ID,
	)

	h.flash(w, r, "That article is gone!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
