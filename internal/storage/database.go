package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/umaydie-cyber/promotion/internal/constants"
	"github.com/umaydie-cyber/promotion/internal/game"
	"github.com/umaydie-cyber/promotion/internal/logging"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenAndMigrate opens the SQLite database at dataSourceName, creating its
// directory when needed, and migrates the history tables.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	if dir := filepath.Dir(dataSourceName); dataSourceName != ":memory:" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", dir, err)
		}
	}
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", dataSourceName, err)
	}

	// Only outcomes are stored. Live battles stay in memory.
	if err := db.AutoMigrate(&game.BattleRecord{}, &game.CharacterStats{}); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	logging.Info("database ready", logging.Fields{constants.LogFieldPath: dataSourceName})
	return db, nil
}
