package app

import (
	"database/sql"
	"strings"

	"ksa-hris/internal/config"
	"ksa-hris/internal/middleware"
	"ksa-hris/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func connectDatabase(cfg *config.Config) (*gorm.DB, *sql.DB, error) {
	gormDB, err := connection.ConnectGORMWithRetry(connection.DBConfig{
		Host:     cfg.Database.Host,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Name:     cfg.Database.Name,
		Port:     cfg.Database.Port,
		SSLMode:  cfg.Database.SSLMode,
	}, cfg.Database.MaxRetries)
	if err != nil {
		return nil, nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, err
	}
	return gormDB, sqlDB, nil
}

// connectRedis returns nil when REDIS_ADDR is unset; callers treat Redis as optional.
func connectRedis(cfg *config.Config) (*redis.Client, error) {
	if cfg.Redis.Addr == "" {
		return nil, nil
	}
	return connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Database.MaxRetries)
}

// BuildApp connects infrastructure, registers every module on router and
// returns a cleanup func that closes the connections.
func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) (func(), error) {
	log := logger.Named("app.api")

	gormDB, sqlDB, err := connectDatabase(cfg)
	if err != nil {
		return nil, err
	}
	log.Info("database connection established")

	rdb, err := connectRedis(cfg)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	if rdb != nil {
		log.Info("redis connection established")
	} else {
		log.Warn("REDIS_ADDR not set, running without cache, locks and idempotency")
	}

	cleanup := func() {
		if rdb != nil {
			_ = rdb.Close()
		}
		_ = sqlDB.Close()
	}

	if cfg.JWT.Secret != "" {
		middleware.SetJWTSecret(cfg.JWT.Secret)
	}

	router.Use(middleware.RequestID(), middleware.ContextLogger(logger))

	if cfg.Payslip.Storage == "local" && strings.HasPrefix(cfg.Payslip.PublicBaseURL, "/") {
		router.Static(cfg.Payslip.PublicBaseURL, cfg.Payslip.StorageDir)
	}

	if err := registerModules(router, cfg, sqlDB, gormDB, rdb, logger); err != nil {
		cleanup()
		return nil, err
	}

	return cleanup, nil
}
