package handler

import (
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"classadmin/internal/entity"
	middleware "classadmin/internal/midlleware"
	"classadmin/internal/repository"
	"classadmin/internal/templates"
)

type ClassroomHandler struct {
	classrooms repository.ClassroomStore
	auth       *middleware.Auth
	listTmpl   *template.Template
	formTmpl   *template.Template
}

func NewClassroomHandler(classrooms repository.ClassroomStore, auth *middleware.Auth) *ClassroomHandler {
	return &ClassroomHandler{
		classrooms: classrooms,
		auth:       auth,
		listTmpl:   templates.Must("classrooms.html"),
		formTmpl:   templates.Must("classroom_form.html"),
	}
}

// List is open to any authenticated role; everything below is admin-only.
func (h *ClassroomHandler) List(w http.ResponseWriter, r *http.Request) {
	user := h.auth.RequireAuth(w, r)
	if user == nil {
		return
	}

	classrooms, err := h.classrooms.List()
	if err != nil {
		fmt.Printf("failed to list classrooms: %v\n", err)
		http.Error(w, "failed to list classrooms", http.StatusInternalServerError)
		return
	}

	h.listTmpl.Execute(w, map[string]interface{}{
		"User":       user,
		"IsAdmin":    user.Role == entity.RoleAdmin,
		"Classrooms": classrooms,
	})
}

func (h *ClassroomHandler) CreatePage(w http.ResponseWriter, r *http.Request) {
	if h.auth.RequireAdmin(w, r) == nil {
		return
	}

	h.formTmpl.Execute(w, map[string]interface{}{
		"Mode":      "create",
		"Action":    "/classrooms/create",
		"Classroom": nil,
	})
}

func (h *ClassroomHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h.auth.RequireAdmin(w, r) == nil {
		return
	}

	name, location, capacity, equipment, ok := parseClassroomForm(w, r)
	if !ok {
		return
	}

	if _, err := h.classrooms.Create(name, location, capacity, equipment); err != nil {
		fmt.Printf("failed to create classroom: %v\n", err)
		http.Error(w, "failed to create classroom", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/classrooms", http.StatusSeeOther)
}

func (h *ClassroomHandler) EditPage(w http.ResponseWriter, r *http.Request) {
	if h.auth.RequireAdmin(w, r) == nil {
		return
	}

	id := pathID(r)
	classroom, err := h.classrooms.Get(id)
	if err != nil {
		fmt.Printf("failed to get classroom %d: %v\n", id, err)
		http.Error(w, "failed to get classroom", http.StatusInternalServerError)
		return
	}
	if classroom == nil {
		http.Error(w, "classroom not found", http.StatusNotFound)
		return
	}

	h.formTmpl.Execute(w, map[string]interface{}{
		"Mode":      "edit",
		"Action":    fmt.Sprintf("/classrooms/%d/edit", id),
		"Classroom": classroom,
	})
}

func (h *ClassroomHandler) Edit(w http.ResponseWriter, r *http.Request) {
	if h.auth.RequireAdmin(w, r) == nil {
		return
	}

	name, location, capacity, equipment, ok := parseClassroomForm(w, r)
	if !ok {
		return
	}

	id := pathID(r)
	updated, err := h.classrooms.Update(id, name, location, capacity, equipment)
	if err != nil {
		fmt.Printf("failed to update classroom %d: %v\n", id, err)
		http.Error(w, "failed to update classroom", http.StatusInternalServerError)
		return
	}
	if !updated {
		http.Error(w, "classroom not found", http.StatusNotFound)
		return
	}

	http.Redirect(w, r, "/classrooms", http.StatusSeeOther)
}

func (h *ClassroomHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h.auth.RequireAdmin(w, r) == nil {
		return
	}

	id := pathID(r)
	deleted, err := h.classrooms.Delete(id)
	if err != nil {
		fmt.Printf("failed to delete classroom %d: %v\n", id, err)
		http.Error(w, "failed to delete classroom", http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "classroom not found", http.StatusNotFound)
		return
	}

	http.Redirect(w, r, "/classrooms", http.StatusSeeOther)
}

// pathID reads the {id} route variable. The route pattern constrains it
// to digits, so Atoi cannot fail on a matched request.
func pathID(r *http.Request) int {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	return id
}

// parseClassroomForm reads the shared create/edit form. A capacity that
// does not parse as an integer fails the request with 400. Only checked
// equipment flags end up in the map; unchecked ones are simply absent.
func parseClassroomForm(w http.ResponseWriter, r *http.Request) (name, location string, capacity int, equipment map[string]bool, ok bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "failed to parse form", http.StatusBadRequest)
		return
	}

	name = r.FormValue("name")
	location = r.FormValue("location")

	capacity, err := strconv.Atoi(r.FormValue("capacity"))
	if err != nil {
		http.Error(w, "capacity must be an integer", http.StatusBadRequest)
		return
	}

	equipment = map[string]bool{}
	if checkboxOn(r.FormValue("projector")) {
		equipment["projector"] = true
	}
	if checkboxOn(r.FormValue("whiteboard")) {
		equipment["whiteboard"] = true
	}

	return name, location, capacity, equipment, true
}

func checkboxOn(v string) bool {
	switch v {
	case "on", "true", "1":
		return true
	}
	return false
}
