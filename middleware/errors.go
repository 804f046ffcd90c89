package middleware

import (
	"context"
	"errors"
	"net/http"

	"fooddelivery/models"

	"github.com/gin-gonic/gin"
)

type apiError struct {
	status  int
	code    string
	message string
}

var errorTable = []struct {
	target error
	apiError
}{
	{models.ErrValidation, apiError{http.StatusBadRequest, "VALIDATION_ERROR", ""}},
	{models.ErrInvalidCredentials, apiError{http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password"}},
	{models.ErrUnauthenticated, apiError{http.StatusUnauthorized, "UNAUTHENTICATED", "Login required"}},
	{models.ErrForbidden, apiError{http.StatusForbidden, "FORBIDDEN", "Access denied: admin only"}},
	{models.ErrNotFound, apiError{http.StatusNotFound, "NOT_FOUND", "Resource not found"}},
	{models.ErrDuplicateUser, apiError{http.StatusConflict, "DUPLICATE_USER", "User already exists"}},
	{models.ErrDuplicateOrder, apiError{http.StatusConflict, "DUPLICATE_ORDER", "Order already exists"}},
	{models.ErrInvalidTransition, apiError{http.StatusConflict, "INVALID_TRANSITION", ""}},
	{models.ErrStoreUnavailable, apiError{http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Service temporarily unavailable"}},
	{context.DeadlineExceeded, apiError{http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Service temporarily unavailable"}},
}

func classify(err error) apiError {
	for _, e := range errorTable {
		if errors.Is(err, e.target) {
			out := e.apiError
			if out.message == "" {
				// validation and transition details are meant for the caller
				out.message = err.Error()
			}
			return out
		}
	}
	return apiError{http.StatusInternalServerError, "INTERNAL", "Internal server error"}
}

// AbortWithError writes the {"code","error"} envelope for err and stops the chain.
// Server-side failures are logged with the request id; the cause never reaches the client.
func AbortWithError(c *gin.Context, err error) {
	e := classify(err)
	if e.status >= http.StatusInternalServerError {
		l := Logger(c)
		l.Error().Err(err).Str("code", e.code).Msg("request failed")
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(e.status, gin.H{"code": e.code, "error": e.message})
}
