package handler

import (
	"errors"
	"net/http"

	"github.com/Ze-Austin/ze-blog/internal/service"
)

// SignupForm renders the registration form.
// GET /signup
func (h *Handler) SignupForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "signup", "Sign Up", nil)
}

// Signup registers a new account. Conflicts flash a notice and send the
// visitor back to the form with their input discarded; success sends
// them to the login page.
// POST /signup
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	input := service.RegisterInput{
		Username:  r.PostFormValue("username"),
		FirstName: r.PostFormValue("first_name"),
		LastName:  r.PostFormValue("last_name"),
		Email:     r.PostFormValue("email"),
		Password:  r.PostFormValue("password"),
	}

	user, err := h.accounts.Register(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			h.flash(w, r, "This username already exists.")
			http.Redirect(w, r, "/signup", http.StatusSeeOther)
		case errors.Is(err, service.ErrEmailTaken):
			h.flash(w, r, "This email is already registered.")
			http.Redirect(w, r, "/signup", http.StatusSeeOther)
		default:
			h.serverError(w, r, "register user", err)
		}
		return
	}

	h.logger.Info("user registered",
		"user_id", user.ID,
		"username", user.Username,
	)

	h.flash(w, r, "You are now signed up.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// LoginForm renders the login form.
// GET /login
func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "login", "Log In", nil)
}

// Login checks credentials and establishes the browser session.
// Unknown usernames and wrong passwords get the same notice.
// POST /login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	user, err := h.accounts.Authenticate(r.Context(),
		r.PostFormValue("username"),
		r.PostFormValue("password"),
	)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.flash(w, r, "Please provide valid credentials.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		h.serverError(w, r, "authenticate user", err)
		return
	}

	if err := h.sessions.Login(w, r, user.ID); err != nil {
		h.serverError(w, r, "establish session", err)
		return
	}

	h.logger.Info("user logged in",
		"user_id", user.ID,
		"username", user.Username,
	)

	h.flash(w, r, "You are now logged in.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout clears the session identity. Safe for anonymous visitors.
// GET /logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(w, r); err != nil {
		h.serverError(w, r, "clear session", err)
		return
	}

	h.flash(w, r, "You have been logged out.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
