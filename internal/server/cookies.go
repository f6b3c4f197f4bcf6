package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	// CookieName is the name of the session cookie
	CookieName = "hostel_session"
	// CookieMaxAge is the duration the cookie is valid
	CookieMaxAge = 24 * time.Hour
)

// SetSessionCookie sets an HTTP-only session cookie
func SetSessionCookie(w http.ResponseWriter, sessionID string) {
	cookie := &http.Cookie{
		Name:     CookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(CookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   false, // Set to true in production with HTTPS
	}
	http.SetCookie(w, cookie)
}

// GetSessionCookie reads the session ID from the cookie
func GetSessionCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", err
	}
	return cookie.Value, nil
}

// getOrCreateSessionID gets the existing session ID or mints a new one,
// setting the cookie. Used only to correlate log lines; no state hangs off
// the session.
func getOrCreateSessionID(r *http.Request, w http.ResponseWriter) string {
	if sid, err := GetSessionCookie(r); err == nil && sid != "" {
		return sid
	}
	sid := uuid.NewString()
	SetSessionCookie(w, sid)
	return sid
}
