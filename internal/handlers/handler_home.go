package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/rmalhotra23/flightdeck_backend/internal/core/ports/services"
	"github.com/rmalhotra23/flightdeck_backend/internal/dto"
	"github.com/rmalhotra23/flightdeck_backend/internal/middleware"
)

// GetHome godoc
// @Summary Welcome message
// @Tags home
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router / [get]
func GetHome(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Welcome to the JWT authentication application."})
}

// registerTestRoutes sets up the role-gate demonstration routes: one per
// access tier, each returning plain content.
func registerTestRoutes(rg *gin.RouterGroup, userSvc portssvc.UserSvcFacade) {
	test := rg.Group("/test")
	{
		test.GET("/user", func(c *gin.Context) {
			c.String(http.StatusOK, "User Content.")
		})
		test.GET("/mod", middleware.RequireAnyRole(userSvc, "moderator", "admin"), func(c *gin.Context) {
			c.String(http.StatusOK, "Moderator Content.")
		})
		test.GET("/admin", middleware.RequireRole(userSvc, "admin"), func(c *gin.Context) {
			c.String(http.StatusOK, "Admin Content.")
		})
	}
}
