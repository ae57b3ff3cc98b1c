package service

import (
	"github.com/umaydie-cyber/promotion/internal/constants"
	"github.com/umaydie-cyber/promotion/internal/game"
	"github.com/umaydie-cyber/promotion/internal/logging"
)

// recordLocked stores the outcome of a battle once. Storage failures are
// logged and never reach the player action that finished the battle.
func (s *BattleService) recordLocked(sess *session, outcome game.Outcome) {
	if sess.recorded {
		return
	}
	sess.recorded = true

	stats := sess.battle.Stats()
	rec := &game.BattleRecord{
		BattleID:      sess.id,
		CharacterID:   sess.characterID,
		EncounterKey:  sess.encounterKey,
		Seed:          sess.seed,
		Outcome:       outcome,
		Turns:         sess.battle.Turn(),
		CardsPlayed:   stats.CardsPlayed,
		DamageDealt:   stats.DamageDealt,
		DamageTaken:   stats.DamageTaken,
		DamageBlocked: stats.DamageBlocked,
		FinalHP:       sess.battle.Player().HP,
		FinishedAt:    s.opts.Now().UTC(),
	}
	fields := logging.Fields{
		constants.LogFieldBattleID:    rec.BattleID,
		constants.LogFieldCharacterID: rec.CharacterID,
		constants.LogFieldOutcome:     rec.Outcome,
		constants.LogFieldTurns:       rec.Turns,
	}

	if err := s.repo.SaveBattleRecord(rec); err != nil {
		logging.Error("failed to save battle record", err, fields)
		return
	}
	if err := s.repo.UpdateStatsOnBattleEnd(rec); err != nil {
		logging.Error("failed to update character stats", err, fields)
		return
	}
	logging.Info("battle finished", fields)
}
