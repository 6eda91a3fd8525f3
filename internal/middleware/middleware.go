package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Cusiokhale/recipe-food-platform/internal/auth"
)

const callerKey = "caller"

// Validator is the slice of the auth collaborator the middleware needs.
type Validator interface {
	ValidateToken(token string) (auth.Identity, error)
}

// Authentication validates the bearer token and stores the resolved caller
// identity on the request context.
func Authentication(validator Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing authorization header"})
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid authorization header format"})
			return
		}
		identity, err := validator.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
			return
		}
		c.Set(callerKey, identity)
		c.Next()
	}
}

// RequireRole is the coarse role gate, applied before any domain service
// runs.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := CallerFrom(c)
		if !ok || !caller.HasRole(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "missing required role: " + role})
			return
		}
		c.Next()
	}
}

func CallerFrom(c *gin.Context) (auth.Identity, bool) {
	value, ok := c.Get(callerKey)
	if !ok {
		return auth.Identity{}, false
	}
	identity, ok := value.(auth.Identity)
	return identity, ok
}
