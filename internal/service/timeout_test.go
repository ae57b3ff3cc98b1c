package service

import (
	"testing"
	"time"

	"github.com/umaydie-cyber/promotion/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpireIdle_AbandonsStaleBattle(t *testing.T) {
	svc, repo, clk := newTestService(t, Options{})
	stale := startBattle(t, svc, StartBattleRequest{CharacterID: "swordsman", EncounterID: "lone_wolf"})
	sub, err := svc.Subscribe(stale.BattleID, 0)
	require.NoError(t, err)

	clk.advance(20 * time.Minute)
	fresh := startBattle(t, svc, StartBattleRequest{CharacterID: "swordsman", EncounterID: "lone_wolf"})
	clk.advance(15 * time.Minute)

	n := svc.ExpireIdle(clk.now(), 30*time.Minute)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, svc.Len())

	_, err = svc.Snapshot(stale.BattleID)
	assert.ErrorIs(t, err, ErrBattleNotFound)
	_, err = svc.Snapshot(fresh.BattleID)
	assert.NoError(t, err)

	_, open := <-sub.Events
	assert.False(t, open)

	require.Len(t, repo.records, 1)
	assert.Equal(t, game.OutcomeAbandoned, repo.records[0].Outcome)
	assert.Equal(t, stale.BattleID, repo.records[0].BattleID)
	assert.Equal(t, []game.Outcome{game.OutcomeAbandoned}, repo.statsCalls)
}

func TestExpireIdle_ActivityKeepsBattleAlive(t *testing.T) {
	svc, _, clk := newTestService(t, Options{})
	v := startBattle(t, svc, StartBattleRequest{CharacterID: "swordsman", EncounterID: "bear_den"})

	clk.advance(25 * time.Minute)
	_, err := svc.EndTurn(v.BattleID)
	require.NoError(t, err)
	clk.advance(25 * time.Minute)

	assert.Equal(t, 0, svc.ExpireIdle(clk.now(), 30*time.Minute))
	assert.Equal(t, 1, svc.Len())
}

func TestExpireIdle_FinishedBattleIsNotRecordedTwice(t *testing.T) {
	svc, repo, clk := newTestService(t, Options{})
	v := startBattle(t, svc, StartBattleRequest{CharacterID: "glass", EncounterID: "lone_wolf"})
	_, err := svc.EndTurn(v.BattleID)
	require.NoError(t, err)

	clk.advance(time.Hour)
	assert.Equal(t, 1, svc.ExpireIdle(clk.now(), 30*time.Minute))
	assert.Equal(t, []game.Outcome{game.OutcomeLost}, repo.outcomes())
	assert.Equal(t, 0, svc.Len())
}
