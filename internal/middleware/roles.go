package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rmalhotra23/flightdeck_backend/internal/apperrors"
	portssvc "github.com/rmalhotra23/flightdeck_backend/internal/core/ports/services"
)

// RequireRole gates a route on a single role name.
func RequireRole(userSvc portssvc.UserSvcFacade, role string) gin.HandlerFunc {
	return RequireAnyRole(userSvc, role)
}

// RequireAnyRole gates a route on role membership: the bound user is loaded
// and admitted if any of its roles matches the required set. Runs after
// VerifyToken.
func RequireAnyRole(userSvc portssvc.UserSvcFacade, roles ...string) gin.HandlerFunc {
	required := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		required[r] = struct{}{}
	}
	denialMessage := requireRoleMessage(roles)

	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			logger.Error("Role gate reached without a bound user ID")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "No User ID!"})
			return
		}

		// The subject may have been deleted since the token was minted.
		if _, err := userSvc.GetUserByID(c.Request.Context(), userID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("Token subject no longer resolves to a user")
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "No User ID!"})
				return
			}
			logger.Error("Failed to load user for role check", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Failed to verify role"})
			return
		}

		userRoles, err := userSvc.RolesForUser(c.Request.Context(), userID)
		if err != nil {
			logger.Error("Failed to load roles for role check", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Failed to verify role"})
			return
		}

		for _, r := range userRoles {
			if _, ok := required[r.Name]; ok {
				c.Next()
				return
			}
		}

		logger.Warn("Role check failed", slog.String("required", strings.Join(roles, ",")))
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": denialMessage})
	}
}

// requireRoleMessage builds the denial message for a required role set,
// e.g. ["moderator","admin"] -> "Require Moderator or Admin Role!".
func requireRoleMessage(roles []string) string {
	titled := make([]string, len(roles))
	for i, r := range roles {
		if r == "" {
			continue
		}
		titled[i] = strings.ToUpper(r[:1]) + r[1:]
	}
	return "Require " + strings.Join(titled, " or ") + " Role!"
}
