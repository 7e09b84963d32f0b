package insight

import (
	"github.com/gin-gonic/gin"

	"github.com/ipshare911/Payroll-Management-System/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	{
		reports.GET("/insight", handler.Analyze)
	}
}
