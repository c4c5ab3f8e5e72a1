package middleware

import (
	"net/http"

	"classadmin/internal/entity"
	"classadmin/internal/repository"
	"classadmin/internal/session"
)

// Auth derives the current user from the session cookie. The user record
// is re-read from the store on every call, so the role is always the
// stored one and a deleted account stops authenticating immediately.
type Auth struct {
	sessions *session.Manager
	users    repository.UserStore
}

func NewAuth(sessions *session.Manager, users repository.UserStore) *Auth {
	return &Auth{
		sessions: sessions,
		users:    users,
	}
}

// CurrentUser returns nil when there is no session or the session's
// user no longer exists.
func (a *Auth) CurrentUser(r *http.Request) *entity.User {
	userID, _, ok := a.sessions.Read(r)
	if !ok {
		return nil
	}

	user, err := a.users.Get(userID)
	if err != nil || user == nil {
		return nil
	}

	return user
}

// RequireAuth writes 401 and returns nil when the request carries no
// valid session.
func (a *Auth) RequireAuth(w http.ResponseWriter, r *http.Request) *entity.User {
	user := a.CurrentUser(r)
	if user == nil {
		http.Error(w, "login required", http.StatusUnauthorized)
		return nil
	}
	return user
}

// RequireAdmin writes 401 for an unauthenticated request and 403 for a
// non-admin one.
func (a *Auth) RequireAdmin(w http.ResponseWriter, r *http.Request) *entity.User {
	user := a.RequireAuth(w, r)
	if user == nil {
		return nil
	}
	if user.Role != entity.RoleAdmin {
		http.Error(w, "admin privileges required", http.StatusForbidden)
		return nil
	}
	return user
}
