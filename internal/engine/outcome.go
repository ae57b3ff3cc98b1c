package engine

// checkVictory ends the battle as won once every enemy is at zero health.
func (b *Battle) checkVictory() bool {
	for i := range b.enemies {
		if b.enemies[i].Alive() {
			return false
		}
	}
	b.finish(PhaseBattleWon)
	return true
}

// checkDefeat ends the battle as lost once the player is at zero health.
func (b *Battle) checkDefeat() bool {
	if b.player.Alive() {
		return false
	}
	b.finish(PhaseBattleLost)
	return true
}

func (b *Battle) finish(p Phase) {
	b.phase = p
	b.targeting = nil
	if p == PhaseBattleWon {
		b.emit(Event{Kind: EventBattleWon})
		b.log.add("Victory! Every enemy is defeated.")
		return
	}
	b.emit(Event{Kind: EventBattleLost})
	b.log.add("Defeat. You have fallen.")
}
