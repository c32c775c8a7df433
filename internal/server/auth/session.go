// Package auth implements the stateless session: a sealed HS256 token carrying
// a single claim (the user id), delivered in an HTTP cookie. The token itself
// is the only record of the session; nothing is stored server-side.
package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the fixed name of the session cookie.
const CookieName = "kudos_session"

// Claims includes the registered claims plus the user id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// SessionManager seals and unseals session tokens and builds the cookies that
// carry them. It is constructed once at startup and passed to the handlers.
type SessionManager struct {
	secret []byte
	maxAge time.Duration
	secure bool
}

// NewSessionManager fails when the sealing secret is absent: running without
// one would make every session forgeable.
func NewSessionManager(secret string, maxAge time.Duration, secure bool) (*SessionManager, error) {
	if secret == "" {
		return nil, errors.New("session secret must be set")
	}
	return &SessionManager{
		secret: []byte(secret),
		maxAge: maxAge,
		secure: secure,
	}, nil
}

// Create seals a token encoding exactly the given user id.
func (m *SessionManager) Create(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.maxAge)),
		},
		UserID: userID,
	})
	return token.SignedString(m.secret)
}

// Read unseals a token and returns the user id it carries. A missing,
// malformed, tampered or expired token yields ok=false, never an error: the
// caller treats all of those identically to "no session".
func (m *SessionManager) Read(raw string) (userID string, ok bool) {
	if raw == "" {
		return "", false
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid || claims.UserID == "" {
		return "", false
	}

	return claims.UserID, true
}

// Cookie wraps a sealed token in the session cookie with its full attribute
// set: HttpOnly, SameSite=Lax, Path=/, Max-Age per config, Secure only in
// production.
func (m *SessionManager) Cookie(token string) fiber.Cookie {
	return fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.maxAge.Seconds()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   m.secure,
	}
}

// Expire produces the invalidation cookie: same attributes, empty value,
// already expired. Sending it overwrites the client's session.
func (m *SessionManager) Expire() fiber.Cookie {
	return fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   m.secure,
	}
}
