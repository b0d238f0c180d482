package handler

import (
	"net/http"

	"github.com/Ze-Austin/ze-blog/internal/service"
)

// ContactForm renders the contact form. Signed-in visitors get their
// name and email pre-filled.
// GET /contact
func (h *Handler) ContactForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "contact", "Contact", nil)
}

// Contact stores a message from any visitor. Submissions are accepted
// as-is and the visitor always lands back on the article list with a
// confirmation.
// POST /contact
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	message, err := h.contact.Submit(r.Context(), service.SubmitInput{
		Sender:   r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Title:    r.PostFormValue("title"),
		Body:     r.PostFormValue("message"),
		Priority: r.PostFormValue("priority"),
	})
	if err != nil {
		h.serverError(w, r, "store message", err)
		return
	}

	h.logger.Info("message received",
		"message_id", message.ID,
		"priority", message.Priority,
	)

	h.flash(w, r, "Message sent. Thanks for reaching out!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
