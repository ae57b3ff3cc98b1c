package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/umaydie-cyber/promotion/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
cards:
  - {id: strike, name: Slash, cost: 1, kind: attack, magnitude: 6}
  - {id: defend, name: Parry, cost: 1, kind: Skill, magnitude: 5}
characters:
  - id: swordsman
    name: Sword Cultivator
    max_hp: 120
    max_energy: 3
    deck:
      - {card: strike, count: 5}
      - {card: DEFEND, count: 5}
enemies:
  - {id: red_scale_wolf, name: Red-Scale Wolf, max_hp: 40, opening_intent: 8}
encounters:
  - {id: wolf_pair, enemies: [red_scale_wolf, red_scale_wolf]}
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoadConfig_YAML(t *testing.T) {
	cfg, err := LoadConfig(writeFile(t, "promotion.yaml", validYAML))
	require.NoError(t, err)

	assert.Equal(t, DefaultServerAddress, cfg.ServerAddress)
	assert.Equal(t, DefaultHandSize, cfg.HandSize)
	assert.Equal(t, DefaultIntentMin, cfg.IntentMin)
	assert.Equal(t, DefaultIntentMax, cfg.IntentMax)
	assert.Equal(t, DefaultIdleBattleTTL, cfg.IdleBattleTTL)

	defend, ok := cfg.Catalog.Card("defend")
	require.True(t, ok)
	assert.Equal(t, game.CardSkill, defend.Kind)

	ch, ok := cfg.Catalog.Character("SWORDSMAN")
	require.True(t, ok)
	assert.Equal(t, game.RealmQiRefining, ch.Realm)

	deck, missing := cfg.Catalog.ExpandDeck(ch.Deck)
	assert.Empty(t, missing)
	assert.Len(t, deck, 10)

	enc, ok := cfg.Catalog.Encounter("wolf_pair")
	require.True(t, ok)
	assert.Equal(t, []string{"red_scale_wolf", "red_scale_wolf"}, enc.Enemies)
}

func TestLoadConfig_JSONWithOverrides(t *testing.T) {
	body := `{
		"cards": [{"id": "strike", "name": "Slash", "cost": 1, "kind": "attack", "magnitude": 6}],
		"characters": [{"id": "swordsman", "max_hp": 70, "max_energy": 3, "realm": "golden_core", "deck": [{"card": "strike", "count": 10}]}],
		"enemies": [{"id": "wolf", "max_hp": 40}],
		"battle": {"hand_size": 4, "intent_min": 3, "intent_max": 5},
		"server": {"address": ":9090", "idle_battle_ttl": "5m"}
	}`
	cfg, err := LoadConfig(writeFile(t, "promotion.json", body))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.Equal(t, 4, cfg.HandSize)
	assert.Equal(t, 3, cfg.IntentMin)
	assert.Equal(t, 5, cfg.IntentMax)
	assert.Equal(t, 5*time.Minute, cfg.IdleBattleTTL)
	ch, _ := cfg.Catalog.Character("swordsman")
	assert.Equal(t, game.RealmGoldenCore, ch.Realm)
}

func TestLoadConfig_ShippedCatalog(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "..", "promotion_config.yaml"))
	require.NoError(t, err)

	strike, ok := cfg.Catalog.Card("strike")
	require.True(t, ok)
	assert.Equal(t, 1, strike.Cost)
	assert.Equal(t, 6, strike.Magnitude)

	wolf, ok := cfg.Catalog.Enemy("red_scale_wolf")
	require.True(t, ok)
	assert.Equal(t, 40, wolf.MaxHP)
	assert.Equal(t, 8, wolf.OpeningIntent)
}

func TestLoadConfig_Rejects(t *testing.T) {
	cases := map[string]string{
		"missing file section": `cards: []`,
		"duplicate card": `
cards:
  - {id: strike, kind: attack, magnitude: 6}
  - {id: Strike, kind: attack, magnitude: 6}
characters: [{id: a, max_hp: 1, deck: [{card: strike, count: 1}]}]
enemies: [{id: w, max_hp: 1}]`,
		"unknown kind": `
cards: [{id: strike, kind: power, magnitude: 6}]
characters: [{id: a, max_hp: 1, deck: [{card: strike, count: 1}]}]
enemies: [{id: w, max_hp: 1}]`,
		"unknown deck card": `
cards: [{id: strike, kind: attack, magnitude: 6}]
characters: [{id: a, max_hp: 1, deck: [{card: riposte, count: 1}]}]
enemies: [{id: w, max_hp: 1}]`,
		"unknown encounter enemy": `
cards: [{id: strike, kind: attack, magnitude: 6}]
characters: [{id: a, max_hp: 1, deck: [{card: strike, count: 1}]}]
enemies: [{id: w, max_hp: 1}]
encounters: [{id: e, enemies: [dragon]}]`,
		"bad intent range": `
cards: [{id: strike, kind: attack, magnitude: 6}]
characters: [{id: a, max_hp: 1, deck: [{card: strike, count: 1}]}]
enemies: [{id: w, max_hp: 1}]
battle: {intent_min: 9, intent_max: 2}`,
		"bad ttl": `
cards: [{id: strike, kind: attack, magnitude: 6}]
characters: [{id: a, max_hp: 1, deck: [{card: strike, count: 1}]}]
enemies: [{id: w, max_hp: 1}]
server: {idle_battle_ttl: soon}`,
	}
	for name, body := range cases {
		_, err := LoadConfig(writeFile(t, "c.yaml", body))
		assert.Error(t, err, name)
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestEnv_ParseAndApply(t *testing.T) {
	t.Setenv("PROMOTION_ADDR", ":7000")
	t.Setenv("PROMOTION_IDLE_TTL", "90s")
	t.Setenv("PROMOTION_DB", "/tmp/promotion-test.db")

	e, err := ParseEnv()
	require.NoError(t, err)
	assert.Equal(t, "./promotion_config.yaml", e.ConfigPath)
	assert.Equal(t, "/tmp/promotion-test.db", e.DBPath)

	cfg := &LoadedConfig{ServerAddress: DefaultServerAddress, IdleBattleTTL: DefaultIdleBattleTTL}
	e.Apply(cfg)
	assert.Equal(t, ":7000", cfg.ServerAddress)
	assert.Equal(t, 90*time.Second, cfg.IdleBattleTTL)
}
