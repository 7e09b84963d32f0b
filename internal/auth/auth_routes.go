package auth

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/ipshare911/Payroll-Management-System/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", middleware.RateLimitByIP(rate.Limit(1), 5), handler.Login)
		authGroup.GET("/me", middleware.AuthMiddleware(), handler.Me)
	}
}
