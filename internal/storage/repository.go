package storage

import (
	"errors"

	"github.com/umaydie-cyber/promotion/internal/game"
)

// ErrNotFound is returned when a record or stats row does not exist.
var ErrNotFound = errors.New("not found")

type Repository interface {
	// SaveBattleRecord stores the outcome of a finished battle. Saving the
	// same battle id twice is a no-op.
	SaveBattleRecord(r *game.BattleRecord) error
	// UpdateStatsOnBattleEnd adds a finished battle to its character's
	// aggregate stats.
	UpdateStatsOnBattleEnd(r *game.BattleRecord) error
	GetBattleRecord(battleID string) (*game.BattleRecord, error)
	// ListBattleRecords returns the newest records first. An empty
	// characterID lists every character.
	ListBattleRecords(characterID string, limit int) ([]game.BattleRecord, error)
	GetCharacterStats(characterID string) (*game.CharacterStats, error)
	// Leaderboard
	GetTopCharacters(limit int) ([]game.CharacterStats, error)
}
