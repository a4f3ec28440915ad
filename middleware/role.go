package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole restricts a route group to the given roles. It must run
// after JWTAuthMiddleware, which sets "userType".
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userType, _ := c.Get("userType")
		role, _ := userType.(string)

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "This page is only accessible to " + rolesLabel(roles) + ".",
		})
	}
}

func rolesLabel(roles []string) string {
	switch len(roles) {
	case 0:
		return "nobody"
	case 1:
		return roles[0] + "s"
	default:
		label := ""
		for i, r := range roles {
			if i > 0 {
				label += " and "
			}
			label += r + "s"
		}
		return label
	}
}
