package service

import (
	"errors"

	"github.com/umaydie-cyber/promotion/internal/constants"
	"github.com/umaydie-cyber/promotion/internal/engine"
	"github.com/umaydie-cyber/promotion/internal/logging"
)

// PlayCard plays the card at handIndex in the given battle.
func (s *BattleService) PlayCard(id string, handIndex int) (engine.PlayResult, error) {
	var res engine.PlayResult
	err := s.withBattle(id, func(b *engine.Battle) error {
		var err error
		res, err = b.PlayCard(handIndex)
		return err
	})
	logCorruption(id, err)
	return res, err
}

// ConfirmTarget resolves the pending attack against targetID.
func (s *BattleService) ConfirmTarget(id, targetID string) (engine.ResolutionReport, error) {
	var rep engine.ResolutionReport
	err := s.withBattle(id, func(b *engine.Battle) error {
		var err error
		rep, err = b.ConfirmTarget(targetID)
		return err
	})
	logCorruption(id, err)
	return rep, err
}

// CancelTargeting drops the pending attack, if any. It reports whether a
// session was open.
func (s *BattleService) CancelTargeting(id string) (bool, error) {
	var cancelled bool
	err := s.withBattle(id, func(b *engine.Battle) error {
		cancelled = b.CancelTargeting()
		return nil
	})
	return cancelled, err
}

// EndTurn ends the player turn and runs the enemy phase.
func (s *BattleService) EndTurn(id string) (engine.EnemyTurnReport, error) {
	var rep engine.EnemyTurnReport
	err := s.withBattle(id, func(b *engine.Battle) error {
		var err error
		rep, err = b.EndTurn()
		return err
	})
	logCorruption(id, err)
	return rep, err
}

// Snapshot returns the current view of a battle.
func (s *BattleService) Snapshot(id string) (BattleView, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return BattleView{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.closed {
		return BattleView{}, ErrBattleNotFound
	}
	return sess.view(), nil
}

// Events returns the events of a battle with seq greater than afterSeq.
func (s *BattleService) Events(id string, afterSeq int) ([]engine.Event, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.closed {
		return nil, ErrBattleNotFound
	}
	return sess.battle.Events(afterSeq), nil
}

func logCorruption(id string, err error) {
	if errors.Is(err, engine.ErrInvariantViolation) {
		logging.Error("battle corrupted", err, logging.Fields{constants.LogFieldBattleID: id})
	}
}
