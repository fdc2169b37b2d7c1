package cmd

import (
	"fmt"

	"bird-herd/core/config"
	"bird-herd/core/database"
	"bird-herd/core/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// bootstrap loads the configuration, builds the logger and connects to the catalog.
func bootstrap() (*config.Config, *zap.Logger, *gorm.DB, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		_ = logg.Sync()
		return nil, nil, nil, err
	}
	logg.Info("Connected to bird catalog",
		zap.String("driver", cfg.Database.Driver),
		zap.String("database", cfg.Database.Name))

	return cfg, logg, db, nil
}
