package handler

import (
	"embed"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// Static serves the embedded assets under /static/.
func (h *Handler) Static() http.Handler {
	return http.FileServer(http.FS(staticFS))
}
