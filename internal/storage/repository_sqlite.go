package storage

import (
	"errors"
	"fmt"

	"github.com/umaydie-cyber/promotion/internal/game"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) SaveBattleRecord(rec *game.BattleRecord) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "battle_id"}},
		DoNothing: true,
	}).Create(rec).Error
}

func (r *sqliteRepository) UpdateStatsOnBattleEnd(rec *game.BattleRecord) error {
	if rec.CharacterID == "" {
		return fmt.Errorf("battle %s has no character", rec.BattleID)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Make sure the row exists, then apply deltas in SQL so concurrent
		// finishes never lose an increment.
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "character_id"}},
			DoNothing: true,
		}).Create(&game.CharacterStats{CharacterID: rec.CharacterID}).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"battles":        gorm.Expr("battles + 1"),
			"last_played_at": rec.FinishedAt,
		}
		switch rec.Outcome {
		case game.OutcomeWon:
			updates["wins"] = gorm.Expr("wins + 1")
			updates["best_win_turns"] = gorm.Expr(
				"CASE WHEN best_win_turns = 0 OR best_win_turns > ? THEN ? ELSE best_win_turns END",
				rec.Turns, rec.Turns)
		case game.OutcomeLost:
			updates["losses"] = gorm.Expr("losses + 1")
		case game.OutcomeAbandoned:
			updates["abandoned"] = gorm.Expr("abandoned + 1")
		default:
			return fmt.Errorf("battle %s has unknown outcome %q", rec.BattleID, rec.Outcome)
		}
		return tx.Model(&game.CharacterStats{}).
			Where("character_id = ?", rec.CharacterID).
			Updates(updates).Error
	})
}

func (r *sqliteRepository) GetBattleRecord(battleID string) (*game.BattleRecord, error) {
	var rec game.BattleRecord
	if err := r.db.Where("battle_id = ?", battleID).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *sqliteRepository) ListBattleRecords(characterID string, limit int) ([]game.BattleRecord, error) {
	var recs []game.BattleRecord
	q := r.db.Order("finished_at DESC").Order("id DESC").Limit(limit)
	if characterID != "" {
		q = q.Where("character_id = ?", characterID)
	}
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *sqliteRepository) GetCharacterStats(characterID string) (*game.CharacterStats, error) {
	var st game.CharacterStats
	if err := r.db.Where("character_id = ?", characterID).First(&st).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &st, nil
}

func (r *sqliteRepository) GetTopCharacters(limit int) ([]game.CharacterStats, error) {
	var out []game.CharacterStats
	err := r.db.
		Order("wins DESC").
		Order("battles ASC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
