package engine

import "github.com/umaydie-cyber/promotion/internal/game"

// CardView is a hand slot as shown to a player.
type CardView struct {
	HandIndex int                 `json:"hand_index"`
	UID       int                 `json:"uid"`
	Card      game.CardDefinition `json:"card"`
	Playable  bool                `json:"playable"`
}

type TargetingView struct {
	HandIndex    int                 `json:"hand_index"`
	Card         game.CardDefinition `json:"card"`
	ValidTargets []string            `json:"valid_targets"`
}

// Snapshot is a read-only copy of everything needed to render a battle.
type Snapshot struct {
	Phase       Phase          `json:"phase"`
	Turn        int            `json:"turn"`
	Player      Actor          `json:"player"`
	Enemies     []Actor        `json:"enemies"`
	Hand        []CardView     `json:"hand"`
	DrawPile    int            `json:"draw_pile"`
	DiscardPile int            `json:"discard_pile"`
	DeckSize    int            `json:"deck_size"`
	Targeting   *TargetingView `json:"targeting,omitempty"`
	Log         []string       `json:"log"`
	LastSeq     int            `json:"last_seq"`
}

func (b *Battle) Snapshot() Snapshot {
	draw, discard, _ := b.deck.Counts()
	canAct := b.phase == PhasePlayerTurn && b.targeting == nil && b.fatal == nil

	hand := b.deck.Hand()
	views := make([]CardView, len(hand))
	for i, c := range hand {
		views[i] = CardView{
			HandIndex: i,
			UID:       c.UID,
			Card:      c.Def,
			Playable:  canAct && b.player.Energy >= c.Def.Cost,
		}
	}

	enemies := make([]Actor, len(b.enemies))
	copy(enemies, b.enemies)

	s := Snapshot{
		Phase:       b.phase,
		Turn:        b.turn,
		Player:      b.player,
		Enemies:     enemies,
		Hand:        views,
		DrawPile:    draw,
		DiscardPile: discard,
		DeckSize:    b.deck.Size(),
		Log:         b.log.tail(),
		LastSeq:     len(b.events),
	}
	if t := b.targeting; t != nil {
		s.Targeting = &TargetingView{
			HandIndex:    t.handIndex,
			Card:         t.card.Def,
			ValidTargets: b.validTargets(),
		}
	}
	return s
}
