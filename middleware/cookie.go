package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the only transport for the session token.
type SessionCookie struct {
	Name   string
	Domain string
	Secure bool
	MaxAge time.Duration
}

func (sc SessionCookie) sameSite(c *gin.Context) {
	if sc.Secure {
		// the client is served from another site
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
}

func (sc SessionCookie) Set(c *gin.Context, token string) {
	sc.sameSite(c)
	c.SetCookie(sc.Name, token, int(sc.MaxAge.Seconds()), "/", sc.Domain, sc.Secure, true)
}

// Clear expires the cookie called name on the client.
func (sc SessionCookie) Clear(c *gin.Context, name string) {
	sc.sameSite(c)
	c.SetCookie(name, "", -1, "/", sc.Domain, sc.Secure, true)
}

func (sc SessionCookie) Read(c *gin.Context) string {
	token, err := c.Cookie(sc.Name)
	if err != nil {
		return ""
	}
	return token
}
