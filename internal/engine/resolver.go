package engine

func (b *Battle) resolveSkill(card Card) (PlayResult, error) {
	if b.player.Energy < card.Def.Cost {
		return PlayResult{}, ErrInsufficientEnergy
	}
	b.spend(card, "")
	b.player.Block += card.Def.Magnitude
	b.log.add("You use %s and gain %d block.", card.Def.Name, card.Def.Magnitude)
	if err := b.deck.Discard(card); err != nil {
		return PlayResult{}, b.corrupt(err)
	}
	return PlayResult{Card: card.Def, BlockGained: card.Def.Magnitude}, nil
}

// resolveAttack expects target and energy to be validated already.
func (b *Battle) resolveAttack(card Card, target *Actor) (DamageResult, error) {
	b.spend(card, target.ID)
	res := ResolveIncomingDamage(target, card.Def.Magnitude)
	b.stats.DamageDealt += res.Taken
	b.emit(Event{
		Kind:     EventDamageApplied,
		SourceID: PlayerID,
		TargetID: target.ID,
		Amount:   card.Def.Magnitude,
		Blocked:  res.Blocked,
		Taken:    res.Taken,
	})
	b.log.add("You use %s on %s for %d damage.", card.Def.Name, target.Name, res.Taken)
	if err := b.deck.Discard(card); err != nil {
		return DamageResult{}, b.corrupt(err)
	}
	b.checkVictory()
	return res, nil
}

func (b *Battle) spend(card Card, targetID string) {
	b.player.Energy -= card.Def.Cost
	b.stats.CardsPlayed++
	b.emit(Event{
		Kind:     EventCardPlayed,
		SourceID: PlayerID,
		TargetID: targetID,
		CardID:   card.Def.ID,
		Amount:   card.Def.Cost,
	})
}
