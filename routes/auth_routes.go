package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/imobcrm/imobcrm_end/controllers"
	"github.com/imobcrm/imobcrm_end/middleware"
)

// RegisterAuthRoutes registers authentication routes
func RegisterAuthRoutes(router *gin.Engine) {
	authRoutes := router.Group("/api/auth")

	authRoutes.POST("/login", controllers.Login)
	authRoutes.POST("/register", controllers.Register)
	authRoutes.GET("/me", middleware.AuthMiddleware(), controllers.Me)
}
