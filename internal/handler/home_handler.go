package handler

import (
	"html/template"
	"net/http"

	middleware "classadmin/internal/midlleware"
	"classadmin/internal/templates"
)

type HomeHandler struct {
	auth *middleware.Auth
	tmpl *template.Template
}

func NewHomeHandler(auth *middleware.Auth) *HomeHandler {
	return &HomeHandler{
		auth: auth,
		tmpl: templates.Must("index.html"),
	}
}

func (h *HomeHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	user := h.auth.CurrentUser(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	h.tmpl.Execute(w, map[string]interface{}{
		"User": user,
	})
}
