package httperr

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Laisky/errors/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	t.Parallel()

	require.Equal(t, http.StatusBadRequest,
		statusOf(errors.Wrap(ErrValidation, "title is required")))
	require.Equal(t, http.StatusUnauthorized,
		statusOf(errors.Wrap(ErrUnauthenticated, "missing bearer token")))
	require.Equal(t, http.StatusForbidden, statusOf(ErrForbidden))
	require.Equal(t, http.StatusNotFound,
		statusOf(errors.Wrap(ErrNotFound, "post not found")))
	require.Equal(t, http.StatusInternalServerError,
		statusOf(errors.New("connection reset")))
}

func TestMessageNeverLeaksInternalErrors(t *testing.T) {
	t.Parallel()

	require.Equal(t, "internal server error",
		message(errors.New("dial tcp 10.0.0.1:27017: i/o timeout")))
	require.Equal(t, "post not found: not found",
		message(errors.Wrap(ErrNotFound, "post not found")))
}

func TestAbort(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/boom", func(ctx *gin.Context) {
		Abort(ctx, errors.Wrap(ErrValidation, "bad payload"))
	})
	engine.GET("/internal", func(ctx *gin.Context) {
		Abort(ctx, errors.New("mongo: topology closed"))
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "bad payload")

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/internal", nil))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	body, err = io.ReadAll(w.Body)
	require.NoError(t, err)
	require.NotContains(t, string(body), "topology")
	require.Contains(t, string(body), "internal server error")
}
