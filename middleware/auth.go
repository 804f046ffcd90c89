package middleware

import (
	"context"
	"time"

	"fooddelivery/models"

	"github.com/gin-gonic/gin"
)

const (
	keyUserID    = "userId"
	keyRole      = "role"
	keySessionID = "sessionId"
)

type Authorizer interface {
	Authorize(ctx context.Context, token string) (models.Principal, error)
}

// SessionAuth resolves the session cookie and stores the caller on the gin context.
func SessionAuth(auth Authorizer, cookie SessionCookie) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.Read(c)
		if token == "" {
			AbortWithError(c, models.ErrUnauthenticated)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		p, err := auth.Authorize(ctx, token)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set(keyUserID, p.UserID)
		c.Set(keyRole, p.Role)
		c.Set(keySessionID, p.SessionID)
		c.Next()
	}
}

// RequireRole must run after SessionAuth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(keyRole) != role {
			AbortWithError(c, models.ErrForbidden)
			return
		}
		c.Next()
	}
}

// CurrentPrincipal returns the caller set by SessionAuth.
func CurrentPrincipal(c *gin.Context) (models.Principal, bool) {
	userID := c.GetString(keyUserID)
	if userID == "" {
		return models.Principal{}, false
	}
	return models.Principal{
		UserID:    userID,
		Role:      c.GetString(keyRole),
		SessionID: c.GetString(keySessionID),
	}, true
}
