package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	portssvc "github.com/rmalhotra23/flightdeck_backend/internal/core/ports/services"
)

// VerifyToken creates a Gin middleware that extracts and verifies an access
// token. Extraction order: the httpOnly cookie set at signin, then the
// x-access-token header, then the Authorization header with an optional
// "Bearer " prefix. The verified subject ID is bound to the request context
// for downstream handlers.
func VerifyToken(tokenSvc portssvc.TokenSvcFacade, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString := extractToken(c, cookieName)
		if tokenString == "" {
			logger.Warn("No access token in request")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "No token provided!"})
			return
		}

		userID, err := tokenSvc.ValidateAccessToken(tokenString)
		if err != nil || userID == "" {
			logger.Warn("Access token rejected", slog.Any("error", err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized!"})
			return
		}

		// Bind the verified subject to both contexts and enrich the logger.
		ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, loggerCtxKey, logger.With(slog.String("user_id", userID)))
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(userIDKey), userID)

		c.Next()
	}
}

// extractToken returns the first access token candidate found, preferring the
// same-origin cookie over headers.
func extractToken(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}

	if header := c.GetHeader("x-access-token"); header != "" {
		return strings.TrimPrefix(header, "Bearer ")
	}

	if header := c.GetHeader("Authorization"); header != "" {
		return strings.TrimPrefix(header, "Bearer ")
	}

	return ""
}
