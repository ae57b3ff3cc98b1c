package engine

import "fmt"

// EventKind names an observable step of a battle.
type EventKind string

const (
	EventTurnStarted   EventKind = "turn_started"
	EventCardPlayed    EventKind = "card_played"
	EventReshuffle     EventKind = "reshuffle_occurred"
	EventDamageApplied EventKind = "damage_applied"
	EventBattleWon     EventKind = "battle_won"
	EventBattleLost    EventKind = "battle_lost"
)

// Terminal reports whether no event can follow one of this kind.
func (k EventKind) Terminal() bool {
	return k == EventBattleWon || k == EventBattleLost
}

// Event is one entry of a battle's ordered event log. Seq starts at 1 and
// increases by one per event.
//
// Amount depends on Kind: the card cost for card_played, the raw damage for
// damage_applied and the number of cards moved for reshuffle_occurred.
type Event struct {
	Seq      int       `json:"seq"`
	Kind     EventKind `json:"kind"`
	Turn     int       `json:"turn"`
	SourceID string    `json:"source_id,omitempty"`
	TargetID string    `json:"target_id,omitempty"`
	CardID   string    `json:"card_id,omitempty"`
	Amount   int       `json:"amount"`
	Blocked  int       `json:"blocked"`
	Taken    int       `json:"taken"`
}

func (e Event) String() string {
	switch e.Kind {
	case EventDamageApplied:
		return fmt.Sprintf("#%d %s %s->%s blocked=%d taken=%d", e.Seq, e.Kind, e.SourceID, e.TargetID, e.Blocked, e.Taken)
	case EventCardPlayed:
		return fmt.Sprintf("#%d %s %s", e.Seq, e.Kind, e.CardID)
	default:
		return fmt.Sprintf("#%d %s", e.Seq, e.Kind)
	}
}

// emit stamps e with the next sequence number and the current turn.
func (b *Battle) emit(e Event) {
	e.Seq = len(b.events) + 1
	e.Turn = b.turn
	b.events = append(b.events, e)
}

func (b *Battle) eventsSince(mark int) []Event {
	out := make([]Event, len(b.events)-mark)
	copy(out, b.events[mark:])
	return out
}

// Events returns every event with a sequence number greater than afterSeq.
func (b *Battle) Events(afterSeq int) []Event {
	if afterSeq < 0 {
		afterSeq = 0
	}
	if afterSeq >= len(b.events) {
		return nil
	}
	return b.eventsSince(afterSeq)
}
