package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/umaydie-cyber/promotion/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) Repository {
	t.Helper()
	db, err := OpenAndMigrate(filepath.Join(t.TempDir(), "data", "promotion.db"))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return NewSQLiteRepository(db)
}

func record(id, character string, outcome game.Outcome, turns int, at time.Time) *game.BattleRecord {
	return &game.BattleRecord{
		BattleID:     id,
		CharacterID:  character,
		EncounterKey: "red_scale_wolf",
		Seed:         42,
		Outcome:      outcome,
		Turns:        turns,
		FinishedAt:   at,
	}
}

func TestSaveBattleRecord_Idempotent(t *testing.T) {
	repo := newTestRepo(t)
	now := time.Now().UTC()

	require.NoError(t, repo.SaveBattleRecord(record("b-1", "swordsman", game.OutcomeWon, 4, now)))
	require.NoError(t, repo.SaveBattleRecord(record("b-1", "swordsman", game.OutcomeLost, 9, now)))

	got, err := repo.GetBattleRecord("b-1")
	require.NoError(t, err)
	assert.Equal(t, game.OutcomeWon, got.Outcome)
	assert.Equal(t, 4, got.Turns)

	_, err = repo.GetBattleRecord("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStatsOnBattleEnd_Aggregates(t *testing.T) {
	repo := newTestRepo(t)
	now := time.Now().UTC()

	for _, rec := range []*game.BattleRecord{
		record("b-1", "swordsman", game.OutcomeWon, 6, now),
		record("b-2", "swordsman", game.OutcomeWon, 4, now),
		record("b-3", "swordsman", game.OutcomeWon, 8, now),
		record("b-4", "swordsman", game.OutcomeLost, 3, now),
		record("b-5", "swordsman", game.OutcomeAbandoned, 1, now),
		record("b-6", "monk", game.OutcomeLost, 2, now),
	} {
		require.NoError(t, repo.UpdateStatsOnBattleEnd(rec))
	}

	st, err := repo.GetCharacterStats("swordsman")
	require.NoError(t, err)
	assert.Equal(t, 5, st.Battles)
	assert.Equal(t, 3, st.Wins)
	assert.Equal(t, 1, st.Losses)
	assert.Equal(t, 1, st.Abandoned)
	assert.Equal(t, 4, st.BestWinTurns)

	top, err := repo.GetTopCharacters(10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "swordsman", top[0].CharacterID)

	_, err = repo.GetCharacterStats("nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	bad := record("b-7", "swordsman", "draw", 1, now)
	assert.Error(t, repo.UpdateStatsOnBattleEnd(bad))
}

func TestListBattleRecords_NewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SaveBattleRecord(record("old", "swordsman", game.OutcomeLost, 2, base)))
	require.NoError(t, repo.SaveBattleRecord(record("new", "swordsman", game.OutcomeWon, 5, base.Add(time.Hour))))
	require.NoError(t, repo.SaveBattleRecord(record("other", "monk", game.OutcomeWon, 5, base.Add(2*time.Hour))))

	recs, err := repo.ListBattleRecords("swordsman", 10)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "new", recs[0].BattleID)
	assert.Equal(t, "old", recs[1].BattleID)

	all, err := repo.ListBattleRecords("", 2)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "other", all[0].BattleID)
}
