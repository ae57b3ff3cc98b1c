package engine

import "github.com/umaydie-cyber/promotion/internal/game"

// targetingSession is an attack card waiting for its target. While one is
// open only ConfirmTarget and CancelTargeting are accepted.
type targetingSession struct {
	handIndex int
	card      Card
}

// PlayResult is the result of PlayCard. An attack card only opens targeting;
// a skill card has already resolved.
type PlayResult struct {
	OpensTargeting bool                `json:"opens_targeting"`
	Card           game.CardDefinition `json:"card"`
	ValidTargets   []string            `json:"valid_targets,omitempty"`
	BlockGained    int                 `json:"block_gained"`
	Events         []Event             `json:"events"`
}

// ResolutionReport is the result of a confirmed attack.
type ResolutionReport struct {
	Card     game.CardDefinition `json:"card"`
	TargetID string              `json:"target_id"`
	Damage   DamageResult        `json:"damage"`
	TargetHP int                 `json:"target_hp"`
	Phase    Phase               `json:"phase"`
	Events   []Event             `json:"events"`
}

// PlayCard plays the card at handIndex.
func (b *Battle) PlayCard(handIndex int) (PlayResult, error) {
	if err := b.guard(); err != nil {
		return PlayResult{}, err
	}
	if b.targeting != nil {
		return PlayResult{}, ErrTargetingInProgress
	}
	card, err := b.cardAt(handIndex)
	if err != nil {
		return PlayResult{}, err
	}

	mark := len(b.events)
	var res PlayResult
	switch card.Def.Kind {
	case game.CardAttack:
		res, err = b.openTargeting(handIndex, card)
	case game.CardSkill:
		res, err = b.resolveSkill(card)
	default:
		err = b.corrupt(b.deck.invariant("card " + card.Def.ID + " has no resolver"))
	}
	if err != nil {
		return PlayResult{}, err
	}
	if err := b.verify(); err != nil {
		return PlayResult{}, err
	}
	res.Events = b.eventsSince(mark)
	return res, nil
}

func (b *Battle) openTargeting(handIndex int, card Card) (PlayResult, error) {
	if b.player.Energy < card.Def.Cost {
		return PlayResult{}, ErrInsufficientEnergy
	}
	targets := b.validTargets()
	if len(targets) == 0 {
		return PlayResult{}, ErrInvalidTarget
	}
	b.targeting = &targetingSession{handIndex: handIndex, card: card}
	return PlayResult{OpensTargeting: true, Card: card.Def, ValidTargets: targets}, nil
}

// validTargets lists living enemies in roster order.
func (b *Battle) validTargets() []string {
	ids := make([]string, 0, len(b.enemies))
	for i := range b.enemies {
		if b.enemies[i].Alive() {
			ids = append(ids, b.enemies[i].ID)
		}
	}
	return ids
}

// ConfirmTarget resolves the pending attack against targetID. A rejected
// target or a lack of energy leaves the session open and the state intact.
func (b *Battle) ConfirmTarget(targetID string) (ResolutionReport, error) {
	if err := b.guard(); err != nil {
		return ResolutionReport{}, err
	}
	s := b.targeting
	if s == nil {
		return ResolutionReport{}, ErrNoActiveTargetingSession
	}
	if held, err := b.cardAt(s.handIndex); err != nil || held.UID != s.card.UID {
		return ResolutionReport{}, b.corrupt(b.deck.invariant("targeted card left its hand slot"))
	}
	target := b.enemy(targetID)
	if target == nil || !target.Alive() {
		return ResolutionReport{}, ErrInvalidTarget
	}
	if b.player.Energy < s.card.Def.Cost {
		return ResolutionReport{}, ErrInsufficientEnergy
	}

	mark := len(b.events)
	b.targeting = nil
	res, err := b.resolveAttack(s.card, target)
	if err != nil {
		return ResolutionReport{}, err
	}
	if err := b.verify(); err != nil {
		return ResolutionReport{}, err
	}
	return ResolutionReport{
		Card:     s.card.Def,
		TargetID: target.ID,
		Damage:   res,
		TargetHP: target.HP,
		Phase:    b.phase,
		Events:   b.eventsSince(mark),
	}, nil
}

// CancelTargeting closes the open session without spending anything. It
// reports whether there was a session to close.
func (b *Battle) CancelTargeting() bool {
	if b.targeting == nil {
		return false
	}
	b.targeting = nil
	return true
}
