// Package handler provides HTTP request handlers for the web pages.
package handler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Ze-Austin/ze-blog/internal/auth"
	"github.com/Ze-Austin/ze-blog/internal/model"
	"github.com/Ze-Austin/ze-blog/internal/service"
	"github.com/Ze-Austin/ze-blog/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// pages that render inside the shared layout.
var pageNames = []string{
	"home",
	"about",
	"article",
	"contribute",
	"edit",
	"signup",
	"login",
	"contact",
	"notfound",
}

// Handler wraps the application dependencies shared by all page handlers.
type Handler struct {
	accounts *service.AccountService
	articles *service.ArticleService
	contact  *service.ContactService
	sessions *session.Manager
	logger   *slog.Logger
	pages    map[string]*template.Template
}

// New creates a Handler with every page template parsed up front, so a
// broken template fails at startup rather than on first request.
func New(
	accounts *service.AccountService,
	articles *service.ArticleService,
	contact *service.ContactService,
	sessions *session.Manager,
	logger *slog.Logger,
) (*Handler, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.ParseFS(templateFS,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Handler{
		accounts: accounts,
		articles: articles,
		contact:  contact,
		sessions: sessions,
		logger:   logger,
		pages:    pages,
	}, nil
}

// pageData is the payload every template receives.
type pageData struct {
	Title   string
	User    *model.User
	Flashes []string
	Data    any
}

// render executes a page template inside the layout. The page is built
// into a buffer first so a template error never leaks a half-written
// response.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page, title string, data any) {
	tmpl, ok := h.pages[page]
	if !ok {
		h.serverError(w, r, "render page", fmt.Errorf("unknown template %q", page))
		return
	}

	payload := pageData{
		Title:   title,
		User:    auth.UserFromContext(r.Context()),
		Flashes: h.sessions.PopFlashes(r),
		Data:    data,
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", payload); err != nil {
		h.serverError(w, r, "render page", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// flash queues a one-time notice for the next rendered page.
// A failed flash is logged, never surfaced: the redirect still happens.
func (h *Handler) flash(w http.ResponseWriter, r *http.Request, message string) {
	if err := h.sessions.Flash(w, r, message); err != nil {
		h.logger.Warn("flash not stored",
			"error", err,
			"path", r.URL.Path,
		)
	}
}

// serverError logs the cause and replies with a plain 500.
func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.logger.Error(msg,
		"error", err,
		"method", r.Method,
		"path", r.URL.Path,
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// articleID parses the {id} route parameter. A zero return means the
// parameter was absent or not a number.
func articleID(r *http.Request) int64 {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0
	}
	return id
}

// NotFound renders the 404 page.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "notfound", "Not Found", nil)
}

// MethodNotAllowed handles 405 responses.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
