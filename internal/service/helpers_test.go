package service

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/umaydie-cyber/promotion/internal/game"
	"github.com/umaydie-cyber/promotion/internal/storage"

	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	mu         sync.Mutex
	records    []game.BattleRecord
	statsCalls []game.Outcome
	stats      map[string]*game.CharacterStats
	top        []game.CharacterStats
	saveErr    error
	topCalls   int
}

func newMockRepo() *mockRepo {
	return &mockRepo{stats: map[string]*game.CharacterStats{}}
}

func (m *mockRepo) SaveBattleRecord(r *game.BattleRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.records = append(m.records, *r)
	return nil
}

func (m *mockRepo) UpdateStatsOnBattleEnd(r *game.BattleRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statsCalls = append(m.statsCalls, r.Outcome)
	return nil
}

func (m *mockRepo) GetBattleRecord(battleID string) (*game.BattleRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.records {
		if m.records[i].BattleID == battleID {
			rec := m.records[i]
			return &rec, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *mockRepo) ListBattleRecords(characterID string, limit int) ([]game.BattleRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []game.BattleRecord
	for i := len(m.records) - 1; i >= 0 && len(out) < limit; i-- {
		if characterID == "" || m.records[i].CharacterID == characterID {
			out = append(out, m.records[i])
		}
	}
	return out, nil
}

func (m *mockRepo) GetCharacterStats(characterID string) (*game.CharacterStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if st, ok := m.stats[characterID]; ok {
		return st, nil
	}
	return nil, storage.ErrNotFound
}

func (m *mockRepo) GetTopCharacters(limit int) ([]game.CharacterStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.topCalls++
	if len(m.top) > limit {
		return m.top[:limit], nil
	}
	return m.top, nil
}

func (m *mockRepo) outcomes() []game.Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]game.Outcome, len(m.records))
	for i, r := range m.records {
		out[i] = r.Outcome
	}
	return out
}

var errDiskFull = errors.New("disk full")

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func testCatalog() *game.Catalog {
	strike := game.CardDefinition{ID: "strike", Name: "Slash", Cost: 1, Kind: game.CardAttack, Magnitude: 6}
	defend := game.CardDefinition{ID: "defend", Name: "Parry", Cost: 1, Kind: game.CardSkill, Magnitude: 5}
	return &game.Catalog{
		Cards: []game.CardDefinition{strike, defend},
		Characters: []game.Character{
			{ID: "swordsman", Name: "Swordsman", Realm: game.RealmQiRefining, MaxHP: 120, MaxEnergy: 3,
				Deck: []game.DeckEntry{{Card: "strike", Count: 5}, {Card: "defend", Count: 5}}},
			{ID: "striker", Name: "Striker", Realm: game.RealmQiRefining, MaxHP: 50, MaxEnergy: 3,
				Deck: []game.DeckEntry{{Card: "strike", Count: 6}}},
			{ID: "glass", Name: "Glass Cannon", Realm: game.RealmQiRefining, MaxHP: 5, MaxEnergy: 3,
				Deck: []game.DeckEntry{{Card: "strike", Count: 5}}},
			{ID: "broken", Name: "Broken", Realm: game.RealmQiRefining, MaxHP: 10, MaxEnergy: 3,
				Deck: []game.DeckEntry{{Card: "missing", Count: 1}}},
		},
		Enemies: []game.EnemyTemplate{
			{ID: "wolf", Name: "Wolf", MaxHP: 6, OpeningIntent: 8},
			{ID: "bear", Name: "Bear", MaxHP: 100, OpeningIntent: 7},
		},
		Encounters: []game.Encounter{
			{ID: "lone_wolf", Name: "Lone Wolf", Enemies: []string{"wolf"}},
			{ID: "pack", Name: "Pack", Enemies: []string{"wolf", "wolf"}},
			{ID: "bear_den", Name: "Bear Den", Enemies: []string{"bear"}},
			{ID: "nobody", Name: "Nobody"},
		},
	}
}

func newTestService(t *testing.T, opts Options) (*BattleService, *mockRepo, *fakeClock) {
	t.Helper()
	clk := &fakeClock{t: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	if opts.Now == nil {
		opts.Now = clk.now
	}
	repo := newMockRepo()
	return NewBattleService(testCatalog(), repo, opts), repo, clk
}

func seed(v int64) *int64 { return &v }

func startBattle(t *testing.T, svc *BattleService, req StartBattleRequest) BattleView {
	t.Helper()
	if req.Seed == nil {
		req.Seed = seed(1)
	}
	v, err := svc.StartBattle(req)
	require.NoError(t, err)
	return v
}
