package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rejzi-dich/RytonStore/internal/auth"
	"github.com/Rejzi-dich/RytonStore/internal/domain"
)

const identityKey = "identity"

// CORS returns a middleware that handles CORS
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// Recovery returns a middleware that recovers from panics
func Recovery() gin.HandlerFunc {
	return gin.Recovery()
}

// Session returns a middleware that decodes the session cookie into an
// identity. A missing, expired or malformed cookie means an anonymous
// request, never an error.
func Session(codec *auth.SessionCodec) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(auth.CookieName)
		if err == nil && cookie != "" {
			if identity, err := codec.Decode(cookie); err == nil {
				c.Set(identityKey, identity)
			}
		}
		c.Next()
	}
}

// RequireAuth aborts anonymous requests on protected routes
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if identityFrom(c) == nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "authentication required",
				},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// identityFrom returns the session identity set by the Session middleware,
// or nil for anonymous requests
func identityFrom(c *gin.Context) *domain.Identity {
	value, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, ok := value.(*domain.Identity)
	if !ok {
		return nil
	}
	return identity
}
