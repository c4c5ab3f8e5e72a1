package handler

import (
	"fmt"
	"html/template"
	"net/http"

	middleware "classadmin/internal/midlleware"
	"classadmin/internal/repository"
	"classadmin/internal/session"
	"classadmin/internal/templates"
)

// One message for both unknown id and wrong password, so the form does
// not leak which ids exist.
const loginErrorMessage = "ID or password incorrect."

type LoginHandler struct {
	users    repository.UserStore
	sessions *session.Manager
	auth     *middleware.Auth
	tmpl     *template.Template
}

func NewLoginHandler(users repository.UserStore, sessions *session.Manager, auth *middleware.Auth) *LoginHandler {
	return &LoginHandler{
		users:    users,
		sessions: sessions,
		auth:     auth,
		tmpl:     templates.Must("login.html"),
	}
}

func (h *LoginHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if h.auth.CurrentUser(r) != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	h.renderForm(w, "", map[string]string{})
}

func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "failed to parse form", http.StatusBadRequest)
		return
	}

	userID := r.FormValue("user_id")
	password := r.FormValue("password")

	user, err := h.users.Get(userID)
	if err != nil {
		fmt.Printf("login lookup failed for %s: %v\n", userID, err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	// Plain comparison, stored as-is (see DESIGN.md)
	if user == nil || user.Password != password {
		h.renderForm(w, loginErrorMessage, map[string]string{"user_id": userID})
		return
	}

	// The role written here is the stored one, never a submitted value
	if err := h.sessions.Create(w, r, user.UserID, user.Role); err != nil {
		fmt.Printf("failed to save session for %s: %v\n", userID, err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout clears the session whether or not one exists.
func (h *LoginHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w, r)
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *LoginHandler) renderForm(w http.ResponseWriter, errMsg string, form map[string]string) {
	h.tmpl.Execute(w, map[string]interface{}{
		"Error": errMsg,
		"Form":  form,
	})
}
