// Package httperr maps service errors to HTTP responses.
//
// Handlers wrap one of the sentinel errors below with whatever context they
// need; Abort picks the outermost sentinel and renders a short JSON message.
// Wrapped detail goes to the request logger only, never to the client.
package httperr

import (
	"net/http"

	"github.com/Laisky/errors/v2"
	gmw "github.com/Laisky/gin-middlewares/v7"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"

	"github.com/satindersinghsall/portfolio-api/library/log"
)

var (
	// ErrValidation missing or invalid required field
	ErrValidation = errors.New("validation failed")
	// ErrNotFound no record for the given id or slug
	ErrNotFound = errors.New("not found")
	// ErrUnauthenticated missing, malformed, or expired credential
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden valid credential but insufficient role
	ErrForbidden = errors.New("forbidden")
)

// statusOf returns the HTTP status for err, 500 for anything unrecognized.
func statusOf(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// message returns the client-facing message for err.
// Raw store errors are collapsed to a generic message.
func message(err error) string {
	for _, sentinel := range []error{
		ErrValidation,
		ErrUnauthenticated,
		ErrForbidden,
		ErrNotFound,
	} {
		if errors.Is(err, sentinel) {
			return err.Error()
		}
	}

	return "internal server error"
}

// Abort writes the JSON error response for err and stops the handler chain.
func Abort(ctx *gin.Context, err error) {
	logger := gmw.GetLogger(ctx)
	if logger == nil {
		logger = log.Logger
	}

	status := statusOf(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
	} else {
		logger.Debug("request rejected", zap.Error(err))
	}

	ctx.AbortWithStatusJSON(status, gin.H{"message": message(err)})
}
