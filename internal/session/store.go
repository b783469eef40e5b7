package session

import (
	"net/http"
	"time"
)

// CookieName is the name of the session cookie.
const CookieName = "session"

// Store persists the session token in an HTTP cookie. There is no
// server-side session table: every Read re-verifies the signed token.
type Store struct {
	codec  *Codec
	secure bool
}

// NewStore creates a cookie-backed session store. secure controls the
// cookie's Secure attribute and should be true in production.
func NewStore(codec *Codec, secure bool) *Store {
	return &Store{codec: codec, secure: secure}
}

// Create issues a session token for the identity and sets it as the
// session cookie. The cookie expiry matches the token expiry.
func (s *Store) Create(w http.ResponseWriter, p *Payload) error {
	token, err := s.codec.Encode(p)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  p.ExpiresAt,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Read returns the session payload from the request cookie, or nil when
// the cookie is absent, malformed, tampered with, or expired.
func (s *Store) Read(r *http.Request) *Payload {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	payload, err := s.codec.Decode(cookie.Value)
	if err != nil {
		return nil
	}
	return payload
}

// Destroy removes the session cookie immediately.
func (s *Store) Destroy(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
