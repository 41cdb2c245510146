package echoapi

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/Panthutk/UniPlan/core"
)

const contextTokenKey = "sessionToken"

func newJWTConfig(conf *core.Config) middleware.JWTConfig {
	return middleware.JWTConfig{
		SigningKey:    []byte(conf.SecretKey),
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    contextTokenKey,
		Claims:        new(core.Claims),
	}
}

// GetSessionClaims builds the claims shape the auth collaborator mints at
// sign-in. This server never issues tokens itself; the helper exists so
// tests and local tooling can simulate an externally-issued credential.
func GetSessionClaims(conf *core.Config, email, name string) *core.Claims {
	now := time.Now()
	return &core.Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    conf.AppName,
			Subject:   email,
			ExpiresAt: now.Add(conf.Server.JWTExpirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
		Email: email,
		Name:  name,
	}
}

// GenerateToken signs Claims into a JWT string. Like GetSessionClaims it is
// a stand-in for the external issuer, not part of the request path.
func GenerateToken(conf *core.Config, claims *core.Claims) (string, error) {
	method := jwt.GetSigningMethod(middleware.AlgorithmHS256)
	token := jwt.NewWithClaims(method, claims)

	ss, err := token.SignedString([]byte(conf.SecretKey))
	return ss, errors.Wrap(err, "signing token")
}

// contextSession wraps the JWT the auth middleware already verified into the
// Session threaded through every service call.
func contextSession(ctx echo.Context) (*core.Session, error) {
	if token, ok := ctx.Get(contextTokenKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*core.Claims); ok {
			return core.SessionFromClaims(token.Raw, claims), nil
		}
	}
	return nil, errUnauthorized
}
