package engine

import (
	"fmt"

	"github.com/umaydie-cyber/promotion/internal/game"
)

// Deck owns the three piles of a battle. The top of the draw pile is the
// end of the slice.
type Deck struct {
	drawPile    []Card
	discardPile []Card
	hand        []Card
	size        int
	rng         RNG

	// onReshuffle is called after the discard pile was shuffled back into
	// the draw pile, with the number of cards moved.
	onReshuffle func(moved int)
}

// newDeck builds one card per definition and shuffles them into the draw
// pile. The opening shuffle is not a reshuffle and fires no callback.
func newDeck(defs []game.CardDefinition, rng RNG) *Deck {
	cards := make([]Card, len(defs))
	for i, d := range defs {
		cards[i] = Card{UID: i + 1, Def: d}
	}
	shuffle(cards, rng)
	return &Deck{drawPile: cards, size: len(cards), rng: rng}
}

// draw removes and returns the top card, reshuffling the discard pile first
// when the draw pile is empty. ok is false when both piles are empty.
func (d *Deck) draw() (Card, bool) {
	if len(d.drawPile) == 0 {
		if len(d.discardPile) == 0 {
			return Card{}, false
		}
		d.reshuffle()
	}
	top := d.drawPile[len(d.drawPile)-1]
	d.drawPile = d.drawPile[:len(d.drawPile)-1]
	return top, true
}

func (d *Deck) reshuffle() {
	moved := len(d.discardPile)
	d.drawPile = append(d.drawPile, d.discardPile...)
	d.discardPile = nil
	shuffle(d.drawPile, d.rng)
	if d.onReshuffle != nil {
		d.onReshuffle(moved)
	}
}

// DrawToHandSize draws until the hand holds n cards or nothing is left to
// draw. It returns the number of cards drawn.
func (d *Deck) DrawToHandSize(n int) int {
	drawn := 0
	for len(d.hand) < n {
		c, ok := d.draw()
		if !ok {
			break
		}
		d.hand = append(d.hand, c)
		drawn++
	}
	return drawn
}

// Discard moves the given cards from the hand to the discard pile.
func (d *Deck) Discard(cards ...Card) error {
	for _, c := range cards {
		i := d.handIndexOf(c.UID)
		if i < 0 {
			return d.invariant(fmt.Sprintf("card %d is not in hand", c.UID))
		}
		d.hand = append(d.hand[:i], d.hand[i+1:]...)
		d.discardPile = append(d.discardPile, c)
	}
	return nil
}

// DiscardHand moves the whole hand to the discard pile, keeping hand order.
func (d *Deck) DiscardHand() {
	d.discardPile = append(d.discardPile, d.hand...)
	d.hand = nil
}

func (d *Deck) handIndexOf(uid int) int {
	for i := range d.hand {
		if d.hand[i].UID == uid {
			return i
		}
	}
	return -1
}

// Hand returns a copy of the hand in slot order.
func (d *Deck) Hand() []Card {
	out := make([]Card, len(d.hand))
	copy(out, d.hand)
	return out
}

// Counts returns the pile sizes.
func (d *Deck) Counts() (draw, discard, hand int) {
	return len(d.drawPile), len(d.discardPile), len(d.hand)
}

// Size is the number of cards the battle started with.
func (d *Deck) Size() int { return d.size }

// Verify checks that every card of the battle sits in exactly one pile.
func (d *Deck) Verify() error {
	if len(d.drawPile)+len(d.discardPile)+len(d.hand) != d.size {
		return d.invariant("pile sizes do not add up to the deck size")
	}
	seen := make(map[int]struct{}, d.size)
	for _, pile := range [][]Card{d.drawPile, d.discardPile, d.hand} {
		for _, c := range pile {
			if c.UID < 1 || c.UID > d.size {
				return d.invariant(fmt.Sprintf("unknown card %d", c.UID))
			}
			if _, dup := seen[c.UID]; dup {
				return d.invariant(fmt.Sprintf("card %d appears twice", c.UID))
			}
			seen[c.UID] = struct{}{}
		}
	}
	return nil
}

func (d *Deck) invariant(detail string) *InvariantError {
	return &InvariantError{
		Draw:     len(d.drawPile),
		Discard:  len(d.discardPile),
		Hand:     len(d.hand),
		DeckSize: d.size,
		Detail:   detail,
	}
}
