package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookie = "eg_session"
	SessionKey    = "session_id"

	// Cookie lifetime. Cart contents in Redis expire on the same clock.
	sessionMaxAge = 7 * 24 * 60 * 60
)

// SessionMiddleware assigns every visitor a cart session ID via cookie.
// The cart has no identity of its own; this ID is its only key.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookie)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, sid, sessionMaxAge, "/", "", false, true)
		}

		c.Set(SessionKey, sid)
		c.Next()
	}
}
