package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/imobcrm/imobcrm_end/controllers"
	"github.com/imobcrm/imobcrm_end/middleware"
)

// RegisterNotificationRoutes registers notification routes. Sending is
// restricted to admins; reading is open to every member.
func RegisterNotificationRoutes(router *gin.Engine) {
	notificationRoutes := router.Group("/api/notifications")
	notificationRoutes.Use(middleware.AuthMiddleware())

	notificationRoutes.GET("/", controllers.GetNotificationList)
	notificationRoutes.POST("/", middleware.AdminOnly(), controllers.SendNotification)
	notificationRoutes.PATCH("/:id/read", controllers.MarkNotificationRead)
	notificationRoutes.PATCH("/read-all", controllers.MarkAllNotificationsRead)
}
