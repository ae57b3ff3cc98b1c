package engine

import (
	"testing"

	"github.com/umaydie-cyber/promotion/internal/game"
)

var (
	strike = game.CardDefinition{ID: "strike", Name: "Slash", Cost: 1, Kind: game.CardAttack, Magnitude: 6}
	defend = game.CardDefinition{ID: "defend", Name: "Parry", Cost: 1, Kind: game.CardSkill, Magnitude: 5}
)

func repeat(def game.CardDefinition, n int) []game.CardDefinition {
	out := make([]game.CardDefinition, n)
	for i := range out {
		out[i] = def
	}
	return out
}

func starterDeck() []game.CardDefinition {
	return append(repeat(strike, 5), repeat(defend, 5)...)
}

func wolf(id string, hp, intent int) EnemySpec {
	return EnemySpec{ID: id, Name: "Wolf " + id, MaxHP: hp, Intent: intent}
}

func newTestBattle(t *testing.T, setup Setup, seed int64) *Battle {
	t.Helper()
	if setup.Player.MaxHP == 0 {
		setup.Player = PlayerSpec{Name: "Swordsman", MaxHP: 70, MaxEnergy: 3}
	}
	b, err := InitializeBattle(setup, seed)
	if err != nil {
		t.Fatalf("InitializeBattle: %v", err)
	}
	return b
}

func handIndexOf(t *testing.T, b *Battle, kind game.CardKind) int {
	t.Helper()
	for i, c := range b.deck.hand {
		if c.Def.Kind == kind {
			return i
		}
	}
	t.Fatalf("no %s card in hand", kind)
	return -1
}

func countKind(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func assertPiles(t *testing.T, b *Battle) {
	t.Helper()
	draw, discard, hand := b.deck.Counts()
	if draw+discard+hand != b.deck.Size() {
		t.Fatalf("pile sizes %d+%d+%d != deck size %d", draw, discard, hand, b.deck.Size())
	}
	if err := b.deck.Verify(); err != nil {
		t.Fatalf("verify: %v", err)
	}
}
