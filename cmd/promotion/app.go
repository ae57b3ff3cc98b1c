package main

import (
	"github.com/umaydie-cyber/promotion/internal/config"
	"github.com/umaydie-cyber/promotion/internal/logging"
	"github.com/umaydie-cyber/promotion/internal/storage"
)

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid promotion configuration", err, logging.Fields{
			"config_path": path,
			"hint":        "create a promotion_config.yaml with cards, characters (with a starter deck), enemies and encounters",
		})
	}
	return cfg
}

func createRepositoryOrExit(dbPath string) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, logging.Fields{"db_path": dbPath})
	}
	return storage.NewSQLiteRepository(db)
}
