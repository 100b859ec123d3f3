package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"tutoriafacil-backend/internal/shared/response"
)

// AdminGuard gates mutating admin routes behind the single shared HTTP Basic
// credential. Both components are compared in constant time and the response
// never reveals which one was wrong.
func AdminGuard(username, password string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, pass, ok := c.Request.BasicAuth()

		// Run both comparisons unconditionally so timing stays uniform.
		userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
		passMatch := subtle.ConstantTimeCompare([]byte(pass), []byte(password)) == 1

		if !ok || !userMatch || !passMatch {
			c.Header("WWW-Authenticate", `Basic realm="admin"`)
			response.Unauthorized(c, "invalid credentials")
			c.Abort()
			return
		}

		c.Next()
	}
}
