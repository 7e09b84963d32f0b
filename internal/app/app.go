package app

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ipshare911/Payroll-Management-System/internal/salary"
	"github.com/ipshare911/Payroll-Management-System/internal/shared/connection"
)

// BuildApp connects the infrastructure, migrates the schema and registers
// every module's routes on the router.
func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	if err := gormDB.AutoMigrate(&salary.SalaryRecord{}); err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		zap.L().Warn("redis unavailable, import idempotency disabled", zap.Error(err))
		redisClient = nil
	} else {
		zap.L().Info("redis connection established")
	}

	if err := registerModules(router, sqlDB, gormDB, redisClient); err != nil {
		return err
	}

	if os.Getenv("SEED_SAMPLE_DATA") == "true" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := salary.SeedSampleRecords(ctx, salary.NewStore(gormDB)); err != nil {
			zap.L().Warn("sample data seeding failed", zap.Error(err))
		}
	}

	return nil
}

// importDefaultYear resolves the year applied to bare month numbers in
// imported sheets. Unset or unparsable values fall back to the current year.
func importDefaultYear() int {
	if v := os.Getenv("IMPORT_DEFAULT_YEAR"); v != "" {
		if year, err := strconv.Atoi(v); err == nil && year > 0 {
			return year
		}
		zap.L().Warn("ignoring invalid IMPORT_DEFAULT_YEAR", zap.String("value", v))
	}
	return time.Now().Year()
}
