package core

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

var (
	ErrInvalidSession = errors.New("invalid or expired session")
	ErrNoSession      = errors.New("no active session")
)

// Claims represents the authorization claims transmitted via a JWT.
// Tokens are issued by the external auth collaborator at sign-in; this
// application only parses and carries them.
type Claims struct {
	jwt.StandardClaims
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// Session is the explicit credential object threaded into every component
// that talks to an external collaborator. It is acquired once at sign-in and
// invalidated at sign-out; nothing reads credentials from ambient storage.
type Session struct {
	Email     string
	Name      string
	ExpiresAt time.Time

	token string
}

// NewSession verifies `token` against `secretKey` (HS256) and wraps it.
func NewSession(token, secretKey string) (*Session, error) {
	claims := new(Claims)
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return []byte(secretKey), nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidSession
	}
	return SessionFromClaims(token, claims), nil
}

// SessionFromClaims wraps an already-verified token. Callers sitting behind
// an authenticating middleware use this instead of re-parsing.
func SessionFromClaims(token string, claims *Claims) *Session {
	var exp time.Time
	if claims.ExpiresAt > 0 {
		exp = time.Unix(claims.ExpiresAt, 0)
	}
	return &Session{
		Email:     claims.Email,
		Name:      claims.Name,
		ExpiresAt: exp,
		token:     token,
	}
}

// Bearer returns the credential to attach to outbound requests.
func (s *Session) Bearer() string {
	if s == nil {
		return ""
	}
	return s.token
}

func (s *Session) Valid() bool {
	if s == nil || s.token == "" {
		return false
	}
	return s.ExpiresAt.IsZero() || time.Now().Before(s.ExpiresAt)
}

// Invalidate drops the credential; subsequent outbound calls will fail auth
// rather than silently reuse a stale token.
func (s *Session) Invalidate() {
	if s != nil {
		s.token = ""
		s.ExpiresAt = time.Time{}
	}
}
