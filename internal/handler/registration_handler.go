package handler

import (
	"fmt"
	"html/template"
	"net/http"

	"classadmin/internal/entity"
	middleware "classadmin/internal/midlleware"
	"classadmin/internal/repository"
	"classadmin/internal/templates"
)

type RegistrationHandler struct {
	users repository.UserStore
	auth  *middleware.Auth
	tmpl  *template.Template
}

func NewRegistrationHandler(users repository.UserStore, auth *middleware.Auth) *RegistrationHandler {
	return &RegistrationHandler{
		users: users,
		auth:  auth,
		tmpl:  templates.Must("register.html"),
	}
}

func (h *RegistrationHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if h.auth.CurrentUser(r) != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	h.renderForm(w, "", map[string]string{})
}

func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "failed to parse form", http.StatusBadRequest)
		return
	}

	userID := r.FormValue("user_id")
	password := r.FormValue("password")
	role := r.FormValue("role")

	if !entity.ValidRole(role) {
		http.Error(w, "unknown role", http.StatusBadRequest)
		return
	}

	form := map[string]string{
		"user_id": userID,
		"role":    role,
	}

	if userID == "" || password == "" {
		h.renderForm(w, "Both ID and password are required.", form)
		return
	}

	created, err := h.users.Register(userID, password, role)
	if err != nil {
		fmt.Printf("registration failed for %s: %v\n", userID, err)
		http.Error(w, "registration failed", http.StatusInternalServerError)
		return
	}

	if !created {
		h.renderForm(w, fmt.Sprintf("'%s' is already taken.", userID), form)
		return
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *RegistrationHandler) renderForm(w http.ResponseWriter, errMsg string, form map[string]string) {
	h.tmpl.Execute(w, map[string]interface{}{
		"Error": errMsg,
		"Form":  form,
	})
}
