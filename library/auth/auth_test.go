package auth

import (
	"testing"
	"time"

	gutils "github.com/Laisky/go-utils/v6"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := New(nil)
	require.Error(t, err)

	a, err := New([]byte("secret"))
	require.NoError(t, err)
	require.NotNil(t, a)
}

func TestIssueAndParse(t *testing.T) {
	t.Parallel()

	a, err := New([]byte("secret"))
	require.NoError(t, err)

	token, err := a.Issue("6619f0a0a0a0a0a0a0a0a0a0", RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := a.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "6619f0a0a0a0a0a0a0a0a0a0", claims.Subject)
	require.Equal(t, RoleAdmin, claims.Role)
	require.WithinDuration(t,
		gutils.Clock.GetUTCNow().Add(TokenLifetime),
		claims.ExpiresAt.Time, 5*time.Second)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	a, err := New([]byte("secret"))
	require.NoError(t, err)
	b, err := New([]byte("another"))
	require.NoError(t, err)

	token, err := a.Issue("uid", RoleAdmin)
	require.NoError(t, err)

	_, err = b.Parse(token)
	require.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	t.Parallel()

	a, err := New([]byte("secret"))
	require.NoError(t, err)

	past := gutils.Clock.GetUTCNow().Add(-2 * TokenLifetime)
	claims := &UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "uid",
			IssuedAt:  jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(TokenLifetime)),
		},
		Role: RoleAdmin,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = a.Parse(token)
	require.Error(t, err)
}

func TestParseRejectsMissingExpiry(t *testing.T) {
	t.Parallel()

	a, err := New([]byte("secret"))
	require.NoError(t, err)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "uid"},
		Role:             RoleAdmin,
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = a.Parse(token)
	require.Error(t, err)
}

func TestParseRejectsWrongAlgorithm(t *testing.T) {
	t.Parallel()

	a, err := New([]byte("secret"))
	require.NoError(t, err)

	// alg=none with an empty signature must never pass
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, &UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "uid",
			ExpiresAt: jwt.NewNumericDate(gutils.Clock.GetUTCNow().Add(time.Hour)),
		},
		Role: RoleAdmin,
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = a.Parse(token)
	require.Error(t, err)
}
