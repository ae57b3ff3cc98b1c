package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/umaydie-cyber/promotion/internal/game"

	"gopkg.in/yaml.v3"
)

const (
	DefaultServerAddress = ":8080"
	DefaultHandSize      = 5
	DefaultIntentMin     = 6
	DefaultIntentMax     = 10
	DefaultIdleBattleTTL = 30 * time.Minute
)

type cardEntry struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Cost        int    `json:"cost" yaml:"cost"`
	Kind        string `json:"kind" yaml:"kind"`
	Magnitude   int    `json:"magnitude" yaml:"magnitude"`
	Description string `json:"description" yaml:"description"`
}

type characterEntry struct {
	ID          string           `json:"id" yaml:"id"`
	Name        string           `json:"name" yaml:"name"`
	Realm       string           `json:"realm" yaml:"realm"`
	MaxHP       int              `json:"max_hp" yaml:"max_hp"`
	MaxEnergy   int              `json:"max_energy" yaml:"max_energy"`
	Description string           `json:"description" yaml:"description"`
	Deck        []game.DeckEntry `json:"deck" yaml:"deck"`
}

type enemyEntry struct {
	ID            string `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	MaxHP         int    `json:"max_hp" yaml:"max_hp"`
	OpeningIntent int    `json:"opening_intent" yaml:"opening_intent"`
}

type encounterEntry struct {
	ID      string   `json:"id" yaml:"id"`
	Name    string   `json:"name" yaml:"name"`
	Enemies []string `json:"enemies" yaml:"enemies"`
}

type rawConfig struct {
	Cards      []cardEntry      `json:"cards" yaml:"cards"`
	Characters []characterEntry `json:"characters" yaml:"characters"`
	Enemies    []enemyEntry     `json:"enemies" yaml:"enemies"`
	Encounters []encounterEntry `json:"encounters" yaml:"encounters"`
	Battle     *struct {
		HandSize  int `json:"hand_size" yaml:"hand_size"`
		IntentMin int `json:"intent_min" yaml:"intent_min"`
		IntentMax int `json:"intent_max" yaml:"intent_max"`
	} `json:"battle" yaml:"battle"`
	Server *struct {
		Address string `json:"address" yaml:"address"`
		// Go duration string, e.g. "30m".
		IdleBattleTTL string `json:"idle_battle_ttl" yaml:"idle_battle_ttl"`
	} `json:"server" yaml:"server"`
}

// LoadedConfig is the validated catalog plus battle and server settings.
type LoadedConfig struct {
	Catalog       *game.Catalog
	HandSize      int
	IntentMin     int
	IntentMax     int
	ServerAddress string
	IdleBattleTTL time.Duration
}

// LoadConfig reads the catalog file at path. Files ending in .yaml or .yml
// are parsed as YAML, anything else as JSON.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &rc)
	default:
		err = json.Unmarshal(b, &rc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg, err := build(&rc)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

func build(rc *rawConfig) (*LoadedConfig, error) {
	cat, err := buildCatalog(rc)
	if err != nil {
		return nil, err
	}

	cfg := &LoadedConfig{
		Catalog:       cat,
		HandSize:      DefaultHandSize,
		IntentMin:     DefaultIntentMin,
		IntentMax:     DefaultIntentMax,
		ServerAddress: DefaultServerAddress,
		IdleBattleTTL: DefaultIdleBattleTTL,
	}
	if bs := rc.Battle; bs != nil {
		if bs.HandSize != 0 {
			cfg.HandSize = bs.HandSize
		}
		if bs.IntentMin != 0 || bs.IntentMax != 0 {
			cfg.IntentMin, cfg.IntentMax = bs.IntentMin, bs.IntentMax
		}
	}
	if cfg.HandSize < 1 {
		return nil, fmt.Errorf("battle.hand_size must be positive, got %d", cfg.HandSize)
	}
	if cfg.IntentMin < 1 || cfg.IntentMax < cfg.IntentMin {
		return nil, fmt.Errorf("battle intent range [%d,%d] is invalid", cfg.IntentMin, cfg.IntentMax)
	}
	if s := rc.Server; s != nil {
		if s.Address != "" {
			cfg.ServerAddress = s.Address
		}
		if s.IdleBattleTTL != "" {
			d, err := time.ParseDuration(s.IdleBattleTTL)
			if err != nil || d <= 0 {
				return nil, fmt.Errorf("server.idle_battle_ttl %q is not a positive duration", s.IdleBattleTTL)
			}
			cfg.IdleBattleTTL = d
		}
	}
	return cfg, nil
}

// buildCatalog converts the raw entries and checks cross references: ids
// are unique (case-insensitive) within each list, decks name known cards
// and encounters name known enemies.
func buildCatalog(rc *rawConfig) (*game.Catalog, error) {
	if len(rc.Cards) == 0 {
		return nil, fmt.Errorf("cards is empty (provide a 'cards' list)")
	}
	if len(rc.Characters) == 0 {
		return nil, fmt.Errorf("characters is empty (provide a 'characters' list)")
	}
	if len(rc.Enemies) == 0 {
		return nil, fmt.Errorf("enemies is empty (provide an 'enemies' list)")
	}

	cat := &game.Catalog{}

	ids := newIDSet("card")
	for _, c := range rc.Cards {
		if err := ids.add(c.ID); err != nil {
			return nil, err
		}
		kind := game.CardKind(strings.ToLower(strings.TrimSpace(c.Kind)))
		if !kind.Valid() {
			return nil, fmt.Errorf("card '%s' has unknown kind '%s' (want attack or skill)", c.ID, c.Kind)
		}
		if c.Cost < 0 {
			return nil, fmt.Errorf("card '%s' has negative cost", c.ID)
		}
		if c.Magnitude <= 0 {
			return nil, fmt.Errorf("card '%s' needs a positive magnitude", c.ID)
		}
		cat.Cards = append(cat.Cards, game.CardDefinition{
			ID:          strings.TrimSpace(c.ID),
			Name:        c.Name,
			Cost:        c.Cost,
			Kind:        kind,
			Magnitude:   c.Magnitude,
			Description: c.Description,
		})
	}

	ids = newIDSet("enemy")
	for _, e := range rc.Enemies {
		if err := ids.add(e.ID); err != nil {
			return nil, err
		}
		if e.MaxHP <= 0 {
			return nil, fmt.Errorf("enemy '%s' needs a positive max_hp", e.ID)
		}
		if e.OpeningIntent < 0 {
			return nil, fmt.Errorf("enemy '%s' has negative opening_intent", e.ID)
		}
		cat.Enemies = append(cat.Enemies, game.EnemyTemplate{
			ID:            strings.TrimSpace(e.ID),
			Name:          e.Name,
			MaxHP:         e.MaxHP,
			OpeningIntent: e.OpeningIntent,
		})
	}

	ids = newIDSet("character")
	for _, ch := range rc.Characters {
		if err := ids.add(ch.ID); err != nil {
			return nil, err
		}
		realm := game.Realm(ch.Realm)
		if realm == "" {
			realm = game.RealmQiRefining
		}
		if !realm.Valid() {
			return nil, fmt.Errorf("character '%s' has unknown realm '%s'", ch.ID, ch.Realm)
		}
		if ch.MaxHP <= 0 || ch.MaxEnergy < 0 {
			return nil, fmt.Errorf("character '%s' needs a positive max_hp and non-negative max_energy", ch.ID)
		}
		if len(ch.Deck) == 0 {
			return nil, fmt.Errorf("character '%s' has an empty deck", ch.ID)
		}
		for _, d := range ch.Deck {
			if _, ok := cat.Card(d.Card); !ok {
				return nil, fmt.Errorf("character '%s' deck references unknown card '%s'", ch.ID, d.Card)
			}
			if d.Count <= 0 {
				return nil, fmt.Errorf("character '%s' deck entry '%s' needs a positive count", ch.ID, d.Card)
			}
		}
		cat.Characters = append(cat.Characters, game.Character{
			ID:          strings.TrimSpace(ch.ID),
			Name:        ch.Name,
			Realm:       realm,
			MaxHP:       ch.MaxHP,
			MaxEnergy:   ch.MaxEnergy,
			Description: ch.Description,
			Deck:        ch.Deck,
		})
	}

	ids = newIDSet("encounter")
	for _, en := range rc.Encounters {
		if err := ids.add(en.ID); err != nil {
			return nil, err
		}
		if len(en.Enemies) == 0 {
			return nil, fmt.Errorf("encounter '%s' has no enemies", en.ID)
		}
		for _, id := range en.Enemies {
			if _, ok := cat.Enemy(id); !ok {
				return nil, fmt.Errorf("encounter '%s' references unknown enemy '%s'", en.ID, id)
			}
		}
		cat.Encounters = append(cat.Encounters, game.Encounter{
			ID:      strings.TrimSpace(en.ID),
			Name:    en.Name,
			Enemies: en.Enemies,
		})
	}
	return cat, nil
}

type idSet struct {
	what string
	seen map[string]struct{}
}

func newIDSet(what string) *idSet {
	return &idSet{what: what, seen: make(map[string]struct{})}
}

func (s *idSet) add(id string) error {
	key := strings.ToLower(strings.TrimSpace(id))
	if key == "" {
		return fmt.Errorf("%s entry missing 'id'", s.what)
	}
	if _, exists := s.seen[key]; exists {
		return fmt.Errorf("duplicate %s id '%s'", s.what, id)
	}
	s.seen[key] = struct{}{}
	return nil
}
