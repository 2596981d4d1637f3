package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/imobcrm/imobcrm_end/controllers"
	"github.com/imobcrm/imobcrm_end/middleware"
)

// RegisterDashboardRoutes registers dashboard and analytics routes
func RegisterDashboardRoutes(router *gin.Engine) {
	router.GET("/api/dashboard-stats", middleware.AuthMiddleware(), controllers.GetDashboardStats)
	router.GET("/api/analytics", middleware.AuthMiddleware(), controllers.GetAnalytics)
}

// RegisterExportRoutes registers export routes
func RegisterExportRoutes(router *gin.Engine) {
	exportRoutes := router.Group("/api/export")
	exportRoutes.Use(middleware.AuthMiddleware())

	exportRoutes.GET("/xlsx", controllers.ExportXLSX)
	exportRoutes.GET("/csv", controllers.ExportCSV)
	exportRoutes.GET("/backup", controllers.ExportBackup)
}
