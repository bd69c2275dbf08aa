package theme

import (
	"net/http"
	"time"
)

// cookieMaxAge keeps the preference for a year, mirroring durable local
// storage on the client.
const cookieMaxAge = 365 * 24 * time.Hour

// CookieStore adapts the Store interface to an HTTP request/response pair,
// so the server resolves the visitor's preference per request.
type CookieStore struct {
	r *http.Request
	w http.ResponseWriter
}

// NewCookieStore creates a cookie-backed store. w may be nil for read-only
// resolution (e.g. static export previews).
func NewCookieStore(w http.ResponseWriter, r *http.Request) *CookieStore {
	return &CookieStore{r: r, w: w}
}

// Load returns the stored preference from the theme cookie.
func (s *CookieStore) Load() (string, bool) {
	if s.r == nil {
		return "", false
	}
	cookie, err := s.r.Cookie(StorageKey)
	if err != nil {
		return "", false
	}
	return cookie.Value, true
}

// Save writes the preference cookie.
func (s *CookieStore) Save(value string) {
	if s.w == nil {
		return
	}
	http.SetCookie(s.w, &http.Cookie{
		Name:     StorageKey,
		Value:    value,
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// FromRequest resolves the theme for an incoming request. The platform
// signal is approximated by the Sec-CH-Prefers-Color-Scheme client hint when
// the browser sends it.
func FromRequest(w http.ResponseWriter, r *http.Request) *Controller {
	return NewController(
		WithStore(NewCookieStore(w, r)),
		WithSystemPreference(func() bool {
			return r != nil && r.Header.Get("Sec-CH-Prefers-Color-Scheme") == "dark"
		}),
	)
}
