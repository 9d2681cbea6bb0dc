package main

import (
	"context"
	"os"

	"github.com/furfect/inventory-service/config"
	invRepoPkg "github.com/furfect/inventory-service/internal/inventory/repository"
	invUCPkg "github.com/furfect/inventory-service/internal/inventory/usecase"
	salesRepoPkg "github.com/furfect/inventory-service/internal/sales/repository"
	salesUCPkg "github.com/furfect/inventory-service/internal/sales/usecase"
	"github.com/furfect/inventory-service/internal/shell"
	"github.com/furfect/inventory-service/pkg/database/sqlite"
	"github.com/furfect/inventory-service/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     false,
		DisableStacktrace: false,
	}

	if cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
		logConfig.DisableCaller = cfg.Logger.DisableCaller
		logConfig.DisableStacktrace = cfg.Logger.DisableStacktrace
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := sqlite.New(&sqlite.Config{
		Path:          cfg.SQLite.Path,
		BusyTimeoutMS: cfg.SQLite.BusyTimeoutMS,
		MaxOpenConns:  cfg.SQLite.MaxOpenConns,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()
	if err := sqlite.EnsureSchema(ctx, db); err != nil {
		appLogger.Fatal("Could not initialize schema", zap.Error(err))
	}
	appLogger.Info("Connected to SQLite database", zap.String("path", cfg.SQLite.Path))

	// 4. Initialize Repositories
	invRepo := invRepoPkg.NewSQLiteRepository(db)
	salesRepo := salesRepoPkg.NewSQLiteRepository(db)

	// 5. Initialize UseCases
	invUC := invUCPkg.NewInventoryUseCase(invRepo, appLogger)
	salesUC := salesUCPkg.NewSalesUseCase(salesRepo, invRepo, appLogger)

	// 6. Run the interactive shell
	sh := shell.New(invUC, salesUC, os.Stdin, os.Stdout, appLogger)
	if err := sh.Run(ctx); err != nil {
		appLogger.Fatal("shell exited with error", zap.Error(err))
	}
}
