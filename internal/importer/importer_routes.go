package importer

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/ipshare911/Payroll-Management-System/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb ...*redis.Client) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	salaries := r.Group("/salaries")
	salaries.Use(middleware.AuthMiddleware())
	{
		if redisClient != nil {
			salaries.POST("/import", middleware.Idempotency(redisClient), handler.Import)
		} else {
			salaries.POST("/import", handler.Import)
		}
	}
}
