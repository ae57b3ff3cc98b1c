package engine

import "github.com/umaydie-cyber/promotion/internal/game"

// PlayerID is the target id of the player actor.
const PlayerID = "player"

type ActorKind string

const (
	ActorPlayer ActorKind = "player"
	ActorEnemy  ActorKind = "enemy"
)

// Actor is the shared shape of every combatant. Enemies never gain block or
// energy; the player has no intent.
type Actor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Kind      ActorKind `json:"kind"`
	HP        int       `json:"hp"`
	MaxHP     int       `json:"max_hp"`
	Block     int       `json:"block"`
	Energy    int       `json:"energy"`
	MaxEnergy int       `json:"max_energy"`
	Intent    int       `json:"intent"`
}

func (a *Actor) Alive() bool { return a.HP > 0 }

// Card is one copy of a definition circulating through the piles. UID is
// unique within its battle.
type Card struct {
	UID int                 `json:"uid"`
	Def game.CardDefinition `json:"def"`
}
