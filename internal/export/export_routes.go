package export

import (
	"github.com/gin-gonic/gin"

	"github.com/ipshare911/Payroll-Management-System/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	salaries := r.Group("/salaries")
	salaries.Use(middleware.AuthMiddleware())
	{
		salaries.GET("/export", handler.Download)
	}
}
