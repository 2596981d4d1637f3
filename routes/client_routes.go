package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/imobcrm/imobcrm_end/controllers"
	"github.com/imobcrm/imobcrm_end/middleware"
)

// RegisterClientRoutes registers client routes
func RegisterClientRoutes(router *gin.Engine) {
	clientRoutes := router.Group("/api/clients")
	clientRoutes.Use(middleware.AuthMiddleware())

	clientRoutes.GET("/", controllers.GetClientList)
	clientRoutes.POST("/", controllers.CreateClient)
	clientRoutes.GET("/:id", controllers.GetClientDetail)
	clientRoutes.PUT("/:id", controllers.UpdateClient)
	clientRoutes.DELETE("/:id", controllers.DeleteClient)
}
