package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/casestudy-api/internal/models"
)

// LoginPath is where unauthenticated clients are sent.
const LoginPath = "/login"

// authAPIPrefix hosts the credential exchange endpoints, which must stay reachable without a session.
const authAPIPrefix = "/api/auth"

// MarkerValidator verifies a session marker cookie value.
type MarkerValidator interface {
	ValidMarker(value string) bool
}

// SessionGuard redirects every request lacking a valid session marker to the login page.
// The login page, the auth endpoints and publicPaths are always reachable.
func SessionGuard(validator MarkerValidator, publicPaths []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if isExempt(path, publicPaths) {
			c.Next()
			return
		}

		marker, err := c.Cookie(models.SessionCookieName)
		if err != nil || !validator.ValidMarker(marker) {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

func isExempt(path string, publicPaths []string) bool {
	if path == LoginPath || path == authAPIPrefix || strings.HasPrefix(path, authAPIPrefix+"/") {
		return true
	}
	for _, public := range publicPaths {
		if path == public || (strings.HasSuffix(public, "/") && strings.HasPrefix(path, public)) {
			return true
		}
	}
	return false
}
