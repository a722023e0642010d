package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jil-inventory/inventory-api/internal/api"
	"github.com/jil-inventory/inventory-api/internal/config"
	"github.com/jil-inventory/inventory-api/internal/db"
	"github.com/jil-inventory/inventory-api/internal/logger"
	"github.com/jil-inventory/inventory-api/internal/repository"
	"github.com/jil-inventory/inventory-api/internal/repository/dao"
	"github.com/jil-inventory/inventory-api/internal/service"
)

const configPath = "./cmd/app/config.yml"

func Start() error {
	conf, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment, conf.Log.Level); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	defer func() { _ = zap.L().Sync() }()

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL, conf.Postgres)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}
	defer func() { _ = db.Close(postgresDB) }()

	if err = dao.InitTables(postgresDB); err != nil {
		return fmt.Errorf("failed to initialize tables -> %w", err)
	}

	if err = bootstrapAdmin(postgresDB, conf.Admin); err != nil {
		return fmt.Errorf("failed to bootstrap admin -> %w", err)
	}

	sqlxDB, err := db.Sqlx(postgresDB)
	if err != nil {
		return fmt.Errorf("failed to initialize sqlx -> %w", err)
	}

	s := api.NewServer(conf, postgresDB, sqlxDB)

	err = config.Watch(configPath, func(c *config.AppConfig) {
		s.Reports.SetLowStockThreshold(c.Report.LowStockThreshold)
		if err := logger.SetLevel(c.Log.Level); err != nil {
			zap.L().Warn("ignoring log level", zap.String("level", c.Log.Level), zap.Error(err))
		}
	})
	if err != nil {
		zap.L().Warn("config hot reload disabled", zap.Error(err))
	}

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

func bootstrapAdmin(postgresDB *gorm.DB, conf *config.AdminConfig) error {
	if conf == nil || conf.Email == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	svc := service.NewAuthService(repository.NewUserRepository(dao.NewUserDAO(postgresDB)))
	if _, err := svc.EnsureAdmin(ctx, conf.Email, conf.Password); err != nil {
		return fmt.Errorf("svc.EnsureAdmin -> %w", err)
	}

	return nil
}
