package api

import (
	"net/http"

	"github.com/dgallion1/saesum/internal/session"
)

const (
	sessionCookie = "sae_session"
	sessionHeader = "X-Session-ID"
)

// sessionFromRequest returns the caller's session id from the cookie or,
// for non-browser clients, the X-Session-ID header.
func sessionFromRequest(r *http.Request) (string, bool) {
	if c, err := r.Cookie(sessionCookie); err == nil && session.Valid(c.Value) {
		return c.Value, true
	}
	if v := r.Header.Get(sessionHeader); session.Valid(v) {
		return v, true
	}
	return "", false
}

// sessionFor returns the caller's session id, starting a new session when
// the request carries none. The id is echoed in a cookie and header.
func (s *Server) sessionFor(w http.ResponseWriter, r *http.Request) string {
	sid, ok := sessionFromRequest(r)
	if !ok {
		sid = session.NewID()
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sid,
		Path:     "/",
		MaxAge:   int(s.cfg.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set(sessionHeader, sid)
	return sid
}
