package auth

import (
	"strings"

	"github.com/Laisky/errors/v2"
	"github.com/gin-gonic/gin"

	"github.com/satindersinghsall/portfolio-api/library/httperr"
)

// ctxKeyClaims is the gin context key holding the decoded claim set.
const ctxKeyClaims = "auth_user_claims"

// RequireLogin extracts and verifies the bearer credential, attaching the
// decoded claims to the request context for downstream handlers.
func (a *Auth) RequireLogin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		raw := ctx.GetHeader("Authorization")
		if raw == "" {
			httperr.Abort(ctx, errors.Wrap(httperr.ErrUnauthenticated, "missing bearer token"))
			return
		}

		token, ok := strings.CutPrefix(raw, "Bearer ")
		if !ok {
			httperr.Abort(ctx, errors.Wrap(httperr.ErrUnauthenticated, "malformed authorization header"))
			return
		}

		claims, err := a.Parse(strings.TrimSpace(token))
		if err != nil {
			httperr.Abort(ctx, errors.WithStack(httperr.ErrUnauthenticated))
			return
		}

		ctx.Set(ctxKeyClaims, claims)
		ctx.Next()
	}
}

// RequireAdmin rejects requests whose decoded role claim is not admin.
// It must run after RequireLogin.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, ok := GetClaims(ctx)
		if !ok {
			httperr.Abort(ctx, errors.Wrap(httperr.ErrUnauthenticated, "no claims in context"))
			return
		}

		if claims.Role != RoleAdmin {
			httperr.Abort(ctx, errors.WithStack(httperr.ErrForbidden))
			return
		}

		ctx.Next()
	}
}

// GetClaims returns the claim set attached by RequireLogin.
func GetClaims(ctx *gin.Context) (*UserClaims, bool) {
	val, ok := ctx.Get(ctxKeyClaims)
	if !ok {
		return nil, false
	}

	claims, ok := val.(*UserClaims)
	return claims, ok
}
