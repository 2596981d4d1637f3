package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/imobcrm/imobcrm_end/controllers"
	"github.com/imobcrm/imobcrm_end/middleware"
)

// RegisterTeamRoutes registers team management routes, all admin only
func RegisterTeamRoutes(router *gin.Engine) {
	teamRoutes := router.Group("/api/team")
	teamRoutes.Use(middleware.AuthMiddleware(), middleware.AdminOnly())

	teamRoutes.GET("/", controllers.GetTeamList)
	teamRoutes.POST("/", controllers.CreateMember)
	teamRoutes.PUT("/:id", controllers.UpdateMember)
	teamRoutes.PATCH("/:id/toggle", controllers.ToggleMemberStatus)
	teamRoutes.DELETE("/:id", controllers.DeleteMember)
}
