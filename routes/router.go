package routes

import (
	"github.com/imobcrm/imobcrm_end/repository"
	"github.com/imobcrm/imobcrm_end/utils"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(router *gin.Engine) {
	RegisterAuthRoutes(router)

	RegisterClientRoutes(router)
	RegisterInteractionRoutes(router)
	RegisterVisitRoutes(router)
	RegisterTeamRoutes(router)
	RegisterNotificationRoutes(router)
	RegisterReceiptRoutes(router)
	RegisterDashboardRoutes(router)
	RegisterExportRoutes(router)

	// health check
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// database status check
	router.GET("/api/db-status", func(c *gin.Context) {
		status, err := repository.GetDatabaseStatus()
		if err != nil {
			utils.ErrorResponse(c, "Falha ao obter status do banco de dados: "+err.Error(), 500)
			return
		}
		c.JSON(200, status)
	})
}
