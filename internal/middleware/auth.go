package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/seogi1004/dental-al/internal/utils"
)

const (
	ContextEmail       = "email"
	ContextName        = "name"
	ContextIsAdmin     = "isAdmin"
	ContextGoogleToken = "googleToken"
)

// AuthRequired validates the session JWT and loads its claims into the
// request context. Expired sessions get a distinct code so the UI can
// prompt a fresh Google sign-in instead of showing a generic failure.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := claimsFromHeader(c, secret)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired", "code": "SESSION_EXPIRED"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// AuthOptional loads session claims when a valid token is present and
// passes the request through either way. Anonymous readers fall back to
// the public CSV transport downstream.
func AuthOptional(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := claimsFromHeader(c, secret); err == nil {
			setClaims(c, claims)
		}
		c.Next()
	}
}

// AdminRequired gates mutating routes on the store-side write capability.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ContextIsAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "permission denied, admin only"})
			return
		}
		c.Next()
	}
}

func claimsFromHeader(c *gin.Context, secret string) (*utils.SessionClaims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, errors.New("missing authorization")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, errors.New("invalid authorization")
	}
	return utils.ParseSessionToken(parts[1], secret)
}

func setClaims(c *gin.Context, claims *utils.SessionClaims) {
	c.Set(ContextEmail, claims.Email)
	c.Set(ContextName, claims.Name)
	c.Set(ContextIsAdmin, claims.Admin)
	c.Set(ContextGoogleToken, claims.GoogleToken)
}
