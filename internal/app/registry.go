package app

import (
	"context"
	"database/sql"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ipshare911/Payroll-Management-System/internal/auth"
	"github.com/ipshare911/Payroll-Management-System/internal/export"
	"github.com/ipshare911/Payroll-Management-System/internal/importer"
	"github.com/ipshare911/Payroll-Management-System/internal/insight"
	"github.com/ipshare911/Payroll-Management-System/internal/messaging/kafka"
	"github.com/ipshare911/Payroll-Management-System/internal/middleware"
	"github.com/ipshare911/Payroll-Management-System/internal/report"
	"github.com/ipshare911/Payroll-Management-System/internal/salary"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	router.Use(middleware.RequestID())

	// --- Repositories ---
	salaryStore := salary.NewStore(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	authService := auth.NewService(auth.Config{
		Username:     os.Getenv("ADMIN_USERNAME"),
		PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		Password:     os.Getenv("ADMIN_PASSWORD"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
	})
	salaryService := salary.NewService(salaryStore)
	importService := importer.NewServiceWithOutbox(db, salaryStore, outboxRepo, importDefaultYear())
	reportService := report.NewService(salaryStore)
	exportService := export.NewService(salaryStore, reportService)
	insightService := insight.NewService(reportService, buildInsightGenerator())

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	salaryHandler := salary.NewHandler(salaryService)
	importHandler := importer.NewHandlerWithRedis(importService, rdb)
	reportHandler := report.NewHandler(reportService)
	exportHandler := export.NewHandler(exportService)
	insightHandler := insight.NewHandler(insightService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		salary.RegisterRoutes(api, salaryHandler)
		importer.RegisterRoutes(api, importHandler, rdb)
		report.RegisterRoutes(api, reportHandler)
		export.RegisterRoutes(api, exportHandler)
		insight.RegisterRoutes(api, insightHandler)
	}

	return nil
}

func buildInsightGenerator() insight.Generator {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil
	}
	generator, err := insight.NewGeminiGenerator(
		context.Background(),
		apiKey,
		os.Getenv("GEMINI_MODEL"),
	)
	if err != nil {
		zap.L().Warn("gemini client unavailable", zap.Error(err))
		return nil
	}
	return generator
}
