package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// VisitorCookie names the cookie that identifies a visitor's cart slot.
	VisitorCookie = "mt_visitor"
	visitorIDKey  = "visitor_id"
	visitorNewKey = "visitor_new"
	visitorMaxAge = 365 * 24 * 60 * 60
)

// VisitorMiddleware resolves the visitor id from its cookie, issuing a new
// one when the cookie is missing or not a UUID.
func VisitorMiddleware(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(VisitorCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(VisitorCookie, id, visitorMaxAge, "/", "", secure, true)
			c.Set(visitorNewKey, true)
		}
		c.Set(visitorIDKey, id)
		c.Next()
	}
}

// GetVisitorID returns the visitor id set by VisitorMiddleware.
func GetVisitorID(c *gin.Context) (string, bool) {
	id := c.GetString(visitorIDKey)
	return id, id != ""
}

// IsNewVisitor reports whether the visitor id was issued by this request
// rather than presented in a cookie.
func IsNewVisitor(c *gin.Context) bool {
	return c.GetBool(visitorNewKey)
}
