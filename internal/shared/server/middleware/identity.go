package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	profileIDKey    = "profileId"
	profileIDHeader = "X-Profile-Id"
	maxProfileIDLen = 128
)

// Identity stores the caller's profile ID from the X-Profile-Id header. The
// header is optional and is not authenticated; it only scopes plan history.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(profileIDHeader))
		if id != "" && len(id) <= maxProfileIDLen {
			c.Set(profileIDKey, id)
		}
		c.Next()
	}
}

// ProfileIDFromContext fetches the profile ID set by Identity.
func ProfileIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(profileIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
