package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *Auth) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	a, err := New([]byte("test-secret"))
	require.NoError(t, err)

	engine := gin.New()
	engine.GET("/admin",
		a.RequireLogin(),
		RequireAdmin(),
		func(ctx *gin.Context) {
			claims, ok := GetClaims(ctx)
			require.True(t, ok)
			ctx.JSON(http.StatusOK, gin.H{"sub": claims.Subject})
		})

	return engine, a
}

func doRequest(engine *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRequireLogin(t *testing.T) {
	t.Parallel()

	engine, a := newTestRouter(t)

	t.Run("missing header", func(t *testing.T) {
		w := doRequest(engine, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := doRequest(engine, "Basic dXNlcjpwYXNz")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := doRequest(engine, "Bearer not-a-token")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid admin token", func(t *testing.T) {
		token, err := a.Issue("uid-1", RoleAdmin)
		require.NoError(t, err)

		w := doRequest(engine, "Bearer "+token)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "uid-1")
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	engine, a := newTestRouter(t)

	token, err := a.Issue("uid-2", "viewer")
	require.NoError(t, err)

	w := doRequest(engine, "Bearer "+token)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetClaimsWithoutLogin(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetClaims(ctx)
	require.False(t, ok)
}
