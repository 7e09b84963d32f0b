package report

import (
	"github.com/gin-gonic/gin"

	"github.com/ipshare911/Payroll-Management-System/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	{
		reports.GET("/overview", handler.Overview)
		reports.GET("/by-person", handler.ByPerson)
		reports.GET("/by-department", handler.ByDepartment)
		reports.GET("/trend", handler.Trend)
		reports.GET("/directory", handler.Directory)
	}
}
