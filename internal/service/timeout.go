package service

import (
	"time"

	"github.com/umaydie-cyber/promotion/internal/constants"
	"github.com/umaydie-cyber/promotion/internal/game"
	"github.com/umaydie-cyber/promotion/internal/logging"
)

// ExpireIdle closes every battle with no action for longer than ttl and
// returns how many were closed. Unfinished battles are recorded as
// abandoned; finished ones were recorded when they ended.
func (s *BattleService) ExpireIdle(now time.Time, ttl time.Duration) int {
	cutoff := now.Add(-ttl)

	s.mu.Lock()
	candidates := make([]*session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		candidates = append(candidates, sess)
	}
	s.mu.Unlock()

	expired := 0
	for _, sess := range candidates {
		if !s.expire(sess, cutoff) {
			continue
		}
		s.mu.Lock()
		delete(s.sessions, sess.id)
		s.mu.Unlock()
		expired++
	}
	if expired > 0 {
		logging.Info("expired idle battles", logging.Fields{constants.LogFieldCount: expired})
	}
	return expired
}

func (s *BattleService) expire(sess *session, cutoff time.Time) bool {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.closed || !sess.lastActive.Before(cutoff) {
		return false
	}
	sess.closed = true
	if !sess.battle.Phase().Terminal() {
		logging.Info("abandoning idle battle", logging.Fields{
			constants.LogFieldBattleID: sess.id,
			constants.LogFieldTurns:    sess.battle.Turn(),
		})
		s.recordLocked(sess, game.OutcomeAbandoned)
	}
	sess.closeSubs()
	return true
}
