package middleware

import (
	"net/http"
	"strings"

	"codepulse/internal/core/auth"

	"github.com/gin-gonic/gin"
)

// JWTAuth verifies the bearer token and, when requiredRoles is given,
// checks that every required role is present in the token's role
// claims. The verified email lands in the context under "email".
func JWTAuth(issuer *auth.TokenIssuer, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := issuer.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		for _, required := range requiredRoles {
			if !hasRole(claims.Roles, required) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
				return
			}
		}

		c.Set("email", claims.Email)
		c.Set("roles", claims.Roles)
		c.Next()
	}
}

func hasRole(roles []string, want string) bool {
	for _, r := range roles {
		if r == want {
			return true
		}
	}
	return false
}
