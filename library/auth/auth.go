// Package auth issues and verifies the admin bearer credential.
package auth

import (
	"time"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	"github.com/golang-jwt/jwt/v5"
)

// TokenLifetime is how long an issued credential stays valid.
// There is no refresh mechanism; clients re-login after expiry.
const TokenLifetime = time.Hour

// RoleAdmin is the single elevated role gating all mutating endpoints.
const RoleAdmin = "admin"

// UserClaims is the claim set embedded in issued tokens.
type UserClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Auth signs and parses tokens with a server-held HS256 secret.
type Auth struct {
	secret []byte
}

// New creates an Auth with the given signing secret.
func New(secret []byte) (*Auth, error) {
	if len(secret) == 0 {
		return nil, errors.New("empty jwt secret")
	}

	return &Auth{secret: secret}, nil
}

// Issue signs a token embedding the subject id and role.
func (a *Auth) Issue(subject, role string) (string, error) {
	now := gutils.Clock.GetUTCNow()
	claims := &UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
		},
		Role: role,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString(a.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return token, nil
}

// Parse verifies the token's signature and expiry and returns its claims.
func (a *Auth) Parse(token string) (*UserClaims, error) {
	claims := new(UserClaims)
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.Errorf("unexpected signing method %q", t.Header["alg"])
			}

			return a.secret, nil
		},
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
