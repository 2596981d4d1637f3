package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/imobcrm/imobcrm_end/controllers"
	"github.com/imobcrm/imobcrm_end/middleware"
)

// RegisterReceiptRoutes registers payment receipt routes. Any member may
// upload their own receipt; review is admin only.
func RegisterReceiptRoutes(router *gin.Engine) {
	receiptRoutes := router.Group("/api/receipts")
	receiptRoutes.Use(middleware.AuthMiddleware())

	receiptRoutes.POST("/", controllers.UploadReceipt)
	receiptRoutes.GET("/", middleware.AdminOnly(), controllers.GetReceiptList)
	receiptRoutes.POST("/:id/approve", middleware.AdminOnly(), controllers.ApproveReceipt)
	receiptRoutes.POST("/:id/reject", middleware.AdminOnly(), controllers.RejectReceipt)
}
