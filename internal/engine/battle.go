package engine

import (
	"fmt"
	"strings"

	"github.com/umaydie-cyber/promotion/internal/game"
)

const DefaultHandSize = 5

// Phase is the top-level state of a battle.
type Phase string

const (
	PhasePlayerTurn Phase = "player_turn"
	PhaseEnemyTurn  Phase = "enemy_turn"
	PhaseBattleWon  Phase = "battle_won"
	PhaseBattleLost Phase = "battle_lost"
)

// Terminal reports whether the battle is over.
func (p Phase) Terminal() bool {
	return p == PhaseBattleWon || p == PhaseBattleLost
}

// PlayerSpec is the character entering the battle. HP 0 means start at
// MaxHP.
type PlayerSpec struct {
	Name      string
	MaxHP     int
	HP        int
	MaxEnergy int
}

// EnemySpec is one roster slot. Intent 0 means roll the opening intent.
type EnemySpec struct {
	ID     string
	Name   string
	MaxHP  int
	Intent int
}

// Setup carries everything a battle is built from. Zero HandSize and intent
// range fall back to the defaults.
type Setup struct {
	Player    PlayerSpec
	Deck      []game.CardDefinition
	Enemies   []EnemySpec
	HandSize  int
	IntentMin int
	IntentMax int
}

// Stats are running totals used for battle records.
type Stats struct {
	CardsPlayed   int `json:"cards_played"`
	DamageDealt   int `json:"damage_dealt"`
	DamageTaken   int `json:"damage_taken"`
	DamageBlocked int `json:"damage_blocked"`
}

// Battle is the state of one fight. It is not safe for concurrent use;
// callers serialize access.
type Battle struct {
	phase     Phase
	turn      int
	player    Actor
	enemies   []Actor
	deck      *Deck
	intents   IntentGenerator
	handSize  int
	targeting *targetingSession
	events    []Event
	log       battleLog
	stats     Stats

	// fatal is set once an invariant breaks; every later call returns it.
	fatal error
}

// InitializeBattle builds a battle whose shuffles and intents are fully
// determined by seed.
func InitializeBattle(setup Setup, seed int64) (*Battle, error) {
	return NewBattle(setup, NewRNG(seed))
}

// NewBattle builds a battle drawing randomness from rng, and starts the
// first player turn.
func NewBattle(setup Setup, rng RNG) (*Battle, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidSetup)
	}
	if err := normalizeSetup(&setup); err != nil {
		return nil, err
	}

	b := &Battle{
		player: Actor{
			ID:        PlayerID,
			Name:      setup.Player.Name,
			Kind:      ActorPlayer,
			HP:        setup.Player.HP,
			MaxHP:     setup.Player.MaxHP,
			MaxEnergy: setup.Player.MaxEnergy,
		},
		intents:  NewIntentGenerator(rng, setup.IntentMin, setup.IntentMax),
		handSize: setup.HandSize,
	}
	b.deck = newDeck(setup.Deck, rng)
	b.deck.onReshuffle = b.onReshuffle

	names := make([]string, 0, len(setup.Enemies))
	for _, e := range setup.Enemies {
		intent := e.Intent
		if intent <= 0 {
			intent = b.intents.Next()
		}
		b.enemies = append(b.enemies, Actor{
			ID:     e.ID,
			Name:   e.Name,
			Kind:   ActorEnemy,
			HP:     e.MaxHP,
			MaxHP:  e.MaxHP,
			Intent: intent,
		})
		names = append(names, e.Name)
	}

	b.log.add("Battle begins against %s.", strings.Join(names, ", "))
	b.startPlayerTurn()
	if err := b.verify(); err != nil {
		return nil, err
	}
	return b, nil
}

func normalizeSetup(s *Setup) error {
	if s.Player.MaxHP <= 0 {
		return fmt.Errorf("%w: player max hp must be positive", ErrInvalidSetup)
	}
	if s.Player.HP == 0 {
		s.Player.HP = s.Player.MaxHP
	}
	if s.Player.HP < 0 || s.Player.HP > s.Player.MaxHP {
		return fmt.Errorf("%w: player hp %d outside 1..%d", ErrInvalidSetup, s.Player.HP, s.Player.MaxHP)
	}
	if s.Player.MaxEnergy < 0 {
		return fmt.Errorf("%w: player max energy is negative", ErrInvalidSetup)
	}
	if s.Player.Name == "" {
		s.Player.Name = "Player"
	}
	for i, d := range s.Deck {
		if !d.Kind.Valid() {
			return fmt.Errorf("%w: card %d (%s) has unknown kind %q", ErrInvalidSetup, i, d.ID, d.Kind)
		}
		if d.Cost < 0 || d.Magnitude < 0 {
			return fmt.Errorf("%w: card %d (%s) has negative cost or magnitude", ErrInvalidSetup, i, d.ID)
		}
	}
	if len(s.Enemies) == 0 {
		return fmt.Errorf("%w: enemy roster is empty", ErrInvalidSetup)
	}
	seen := make(map[string]struct{}, len(s.Enemies))
	for _, e := range s.Enemies {
		if e.ID == "" || e.ID == PlayerID {
			return fmt.Errorf("%w: enemy id %q is not allowed", ErrInvalidSetup, e.ID)
		}
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("%w: duplicate enemy id %q", ErrInvalidSetup, e.ID)
		}
		seen[e.ID] = struct{}{}
		if e.MaxHP <= 0 {
			return fmt.Errorf("%w: enemy %q max hp must be positive", ErrInvalidSetup, e.ID)
		}
		if e.Intent < 0 {
			return fmt.Errorf("%w: enemy %q has negative intent", ErrInvalidSetup, e.ID)
		}
	}
	if s.HandSize <= 0 {
		s.HandSize = DefaultHandSize
	}
	if s.IntentMin == 0 && s.IntentMax == 0 {
		s.IntentMin, s.IntentMax = DefaultIntentMin, DefaultIntentMax
	}
	if s.IntentMin < 1 || s.IntentMax < s.IntentMin {
		return fmt.Errorf("%w: intent range [%d,%d] is invalid", ErrInvalidSetup, s.IntentMin, s.IntentMax)
	}
	return nil
}

// guard rejects any action once the battle is over or corrupted.
func (b *Battle) guard() error {
	if b.fatal != nil {
		return b.fatal
	}
	if b.phase.Terminal() {
		return ErrBattleAlreadyOver
	}
	return nil
}

// verify checks pile accounting and poisons the battle when it fails.
func (b *Battle) verify() error {
	if err := b.deck.Verify(); err != nil {
		return b.corrupt(err)
	}
	return nil
}

func (b *Battle) corrupt(err error) error {
	b.fatal = err
	b.targeting = nil
	return err
}

func (b *Battle) onReshuffle(moved int) {
	b.emit(Event{Kind: EventReshuffle, Amount: moved})
	b.log.add("The discard pile is shuffled into the draw pile.")
}

func (b *Battle) enemy(id string) *Actor {
	for i := range b.enemies {
		if b.enemies[i].ID == id {
			return &b.enemies[i]
		}
	}
	return nil
}

func (b *Battle) cardAt(handIndex int) (Card, error) {
	if handIndex < 0 || handIndex >= len(b.deck.hand) {
		return Card{}, ErrInvalidHandIndex
	}
	return b.deck.hand[handIndex], nil
}

func (b *Battle) Phase() Phase { return b.phase }

func (b *Battle) Turn() int { return b.turn }

func (b *Battle) Stats() Stats { return b.stats }

// Err returns the invariant failure that stopped the battle, if any.
func (b *Battle) Err() error { return b.fatal }

// Player returns a copy of the player actor.
func (b *Battle) Player() Actor { return b.player }
