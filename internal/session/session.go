package session

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const sessionName = "app-session"

// Manager keeps the login state in a signed cookie. There is no
// server-side session table; the cookie itself carries user_id and role.
type Manager struct {
	store *sessions.CookieStore
}

func NewManager(secret string) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options.HttpOnly = true
	store.Options.Path = "/"
	return &Manager{store: store}
}

// Create writes user_id and role into the session cookie.
func (m *Manager) Create(w http.ResponseWriter, r *http.Request, userID, role string) error {
	session, _ := m.store.Get(r, sessionName)
	session.Values["user_id"] = userID
	session.Values["role"] = role
	return session.Save(r, w)
}

// Read returns the stored user_id and role, with ok=false for an
// empty or unreadable session.
func (m *Manager) Read(r *http.Request) (userID, role string, ok bool) {
	session, _ := m.store.Get(r, sessionName)

	userID, userIDOk := session.Values["user_id"].(string)
	role, _ = session.Values["role"].(string)

	if !userIDOk || userID == "" {
		return "", "", false
	}
	return userID, role, true
}

// Clear drops the session cookie. Safe to call without a session.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, sessionName)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
