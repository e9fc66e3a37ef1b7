package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Sameer-B786/portfolio/adapters/persistence"
	"github.com/Sameer-B786/portfolio/pkg/apperror"
	"github.com/Sameer-B786/portfolio/pkg/auth"
	"github.com/Sameer-B786/portfolio/pkg/logger"
)

// AuthMiddleware produces the boolean "may edit" capability: a valid bearer
// token whose id matches the locally persisted session marker. The content
// core stays reachable only through handlers behind this gate; it enforces
// nothing itself.
func AuthMiddleware(jwtSvc *auth.JWTService, sessions *persistence.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		marker := sessions.Get(c.Request.Context())
		if marker == nil || marker.TokenID != claims.TokenID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session is no longer active"})
			return
		}

		c.Next()
	}
}

// ErrorMiddleware translates AppErrors attached by handlers into responses.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := apperror.ToHTTPStatus(err)

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if status >= http.StatusInternalServerError {
				log.Error("request failed", appErr)
			}
			c.JSON(status, appErr.ToJSON())
			return
		}

		log.Error("request failed", err)
		c.JSON(status, gin.H{"error": "internal server error"})
	}
}
