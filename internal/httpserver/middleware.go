package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"raynott-storefront/internal/session"
)

const (
	sessionCookie = "raynott_session"
	sessionCtxKey = "session"
)

// sessionMiddleware resumes the visitor's session from the cookie, or
// starts a fresh guest session and sets the cookie.
func sessionMiddleware(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(sessionCookie)
		sess := sessions.GetOrCreate(id)
		if sess.ID != id {
			c.SetCookie(sessionCookie, sess.ID, 0, "/", "", false, true)
		}
		c.Set(sessionCtxKey, sess)
		c.Next()
	}
}

func currentSession(c *gin.Context) *session.Session {
	return c.MustGet(sessionCtxKey).(*session.Session)
}

// requireAdmin rejects sessions without an admin identity before any
// admin handler runs. Authorization itself is the upstream's job; this
// is a reflection of the identity it issued.
func requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)
		if sess.IsGuest() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
			return
		}
		if !sess.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "admin access required"})
			return
		}
		c.Next()
	}
}
