package core

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
)

const testSecret = "secret"

func signToken(t *testing.T, claims *Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	ss, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return ss
}

func TestNewSession(t *testing.T) {
	now := time.Now()
	valid := signToken(t, &Claims{
		StandardClaims: jwt.StandardClaims{ExpiresAt: now.Add(time.Hour).Unix(), IssuedAt: now.Unix()},
		Email:          "student@gmail.com",
	})
	expired := signToken(t, &Claims{
		StandardClaims: jwt.StandardClaims{ExpiresAt: now.Add(-time.Hour).Unix()},
		Email:          "student@gmail.com",
	})

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{name: "no token", token: "", wantErr: true},
		{name: "garbage", token: "lol.lol.lol", wantErr: true},
		{name: "expired", token: expired, wantErr: true},
		{name: "valid", token: valid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, err := NewSession(tt.token, testSecret)
			if tt.wantErr {
				if err != ErrInvalidSession {
					t.Errorf("NewSession() error = %v, want %v", err, ErrInvalidSession)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewSession() unexpected error: %v", err)
			}
			if sess.Email != "student@gmail.com" {
				t.Errorf("Email = %q", sess.Email)
			}
			if !sess.Valid() {
				t.Error("Valid() = false, want true")
			}
			if sess.Bearer() != tt.token {
				t.Error("Bearer() does not round-trip the token")
			}

			sess.Invalidate()
			if sess.Valid() {
				t.Error("Valid() = true after Invalidate()")
			}
			if sess.Bearer() != "" {
				t.Error("Bearer() non-empty after Invalidate()")
			}
		})
	}
}

func TestSessionWrongKey(t *testing.T) {
	token := signToken(t, &Claims{Email: "student@gmail.com"})
	if _, err := NewSession(token, "other-secret"); err != ErrInvalidSession {
		t.Errorf("NewSession() error = %v, want %v", err, ErrInvalidSession)
	}
}
