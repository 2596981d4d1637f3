package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/imobcrm/imobcrm_end/controllers"
	"github.com/imobcrm/imobcrm_end/middleware"
)

// RegisterInteractionRoutes registers interaction routes
func RegisterInteractionRoutes(router *gin.Engine) {
	interactionRoutes := router.Group("/api/interactions")
	interactionRoutes.Use(middleware.AuthMiddleware())

	interactionRoutes.GET("/", controllers.GetInteractionList)
	interactionRoutes.POST("/", controllers.CreateInteraction)
	interactionRoutes.DELETE("/:id", controllers.DeleteInteraction)
}

// RegisterVisitRoutes registers visit routes
func RegisterVisitRoutes(router *gin.Engine) {
	visitRoutes := router.Group("/api/visits")
	visitRoutes.Use(middleware.AuthMiddleware())

	visitRoutes.GET("/", controllers.GetVisitList)
	visitRoutes.POST("/", controllers.CreateVisit)
	visitRoutes.DELETE("/:id", controllers.DeleteVisit)
}
