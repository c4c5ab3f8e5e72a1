package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"classadmin/internal/entity"
	middleware "classadmin/internal/midlleware"
	"classadmin/internal/session"
)

// In-memory stands-ins for the Postgres repositories.

type fakeUserStore struct {
	users map[string]*entity.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*entity.User{}}
}

func (s *fakeUserStore) Register(userID, password, role string) (bool, error) {
	if _, exists := s.users[userID]; exists {
		return false, nil
	}
	s.users[userID] = &entity.User{UserID: userID, Password: password, Role: role}
	return true, nil
}

func (s *fakeUserStore) Get(userID string) (*entity.User, error) {
	return s.users[userID], nil
}

type fakeClassroomStore struct {
	rooms  map[int]*entity.Classroom
	nextID int
}

func newFakeClassroomStore() *fakeClassroomStore {
	return &fakeClassroomStore{rooms: map[int]*entity.Classroom{}, nextID: 1}
}

func (s *fakeClassroomStore) Create(name, location string, capacity int, equipment map[string]bool) (int, error) {
	id := s.nextID
	s.nextID++
	s.rooms[id] = &entity.Classroom{
		ID:        id,
		Name:      name,
		Location:  location,
		Capacity:  capacity,
		Equipment: equipment,
	}
	return id, nil
}

func (s *fakeClassroomStore) Get(id int) (*entity.Classroom, error) {
	return s.rooms[id], nil
}

func (s *fakeClassroomStore) List() ([]*entity.Classroom, error) {
	var rooms []*entity.Classroom
	for id := 1; id < s.nextID; id++ {
		if room, exists := s.rooms[id]; exists {
			rooms = append(rooms, room)
		}
	}
	return rooms, nil
}

func (s *fakeClassroomStore) Update(id int, name, location string, capacity int, equipment map[string]bool) (bool, error) {
	room, exists := s.rooms[id]
	if !exists {
		return false, nil
	}
	room.Name = name
	room.Location = location
	room.Capacity = capacity
	room.Equipment = equipment
	return true, nil
}

func (s *fakeClassroomStore) Delete(id int) (bool, error) {
	if _, exists := s.rooms[id]; !exists {
		return false, nil
	}
	delete(s.rooms, id)
	return true, nil
}

type testEnv struct {
	users      *fakeUserStore
	classrooms *fakeClassroomStore
	sessions   *session.Manager
	router     *mux.Router
}

// newTestEnv wires handlers and routes the same way cmd/server does,
// with in-memory stores behind them.
func newTestEnv() *testEnv {
	users := newFakeUserStore()
	classrooms := newFakeClassroomStore()
	sessions := session.NewManager("test-secret")
	auth := middleware.NewAuth(sessions, users)

	registrationHandler := NewRegistrationHandler(users, auth)
	loginHandler := NewLoginHandler(users, sessions, auth)
	homeHandler := NewHomeHandler(auth)
	classroomHandler := NewClassroomHandler(classrooms, auth)

	r := mux.NewRouter()
	r.HandleFunc("/register", registrationHandler.RegisterPage).Methods(http.MethodGet)
	r.HandleFunc("/register", registrationHandler.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", loginHandler.LoginPage).Methods(http.MethodGet)
	r.HandleFunc("/login", loginHandler.Login).Methods(http.MethodPost)
	r.HandleFunc("/logout", loginHandler.Logout).Methods(http.MethodGet)
	r.HandleFunc("/", homeHandler.HomePage).Methods(http.MethodGet)
	r.HandleFunc("/classrooms", classroomHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/classrooms/create", classroomHandler.CreatePage).Methods(http.MethodGet)
	r.HandleFunc("/classrooms/create", classroomHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/classrooms/{id:[0-9]+}/edit", classroomHandler.EditPage).Methods(http.MethodGet)
	r.HandleFunc("/classrooms/{id:[0-9]+}/edit", classroomHandler.Edit).Methods(http.MethodPost)
	r.HandleFunc("/classrooms/{id:[0-9]+}/delete", classroomHandler.Delete).Methods(http.MethodPost)

	return &testEnv{
		users:      users,
		classrooms: classrooms,
		sessions:   sessions,
		router:     r,
	}
}

// loginCookies creates a signed session directly, bypassing the login form.
func (e *testEnv) loginCookies(t *testing.T, userID, role string) []*http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	if err := e.sessions.Create(rec, req, userID, role); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	return rec.Result().Cookies()
}

func (e *testEnv) do(method, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}
