package engine

// EnemyAction is what one enemy did during an enemy phase.
type EnemyAction struct {
	EnemyID    string `json:"enemy_id"`
	Damage     int    `json:"damage"`
	Blocked    int    `json:"blocked"`
	Taken      int    `json:"taken"`
	NextIntent int    `json:"next_intent"`
}

// EnemyTurnReport is the result of EndTurn. Phase is PlayerTurn when the
// battle goes on, BattleLost otherwise.
type EnemyTurnReport struct {
	Actions  []EnemyAction `json:"actions"`
	Phase    Phase         `json:"phase"`
	Terminal bool          `json:"terminal"`
	Events   []Event       `json:"events"`
}

func (b *Battle) startPlayerTurn() {
	b.phase = PhasePlayerTurn
	b.turn++
	b.player.Energy = b.player.MaxEnergy
	b.player.Block = 0
	b.deck.DrawToHandSize(b.handSize)
	b.emit(Event{Kind: EventTurnStarted, TargetID: PlayerID})
	b.log.add("Turn %d begins.", b.turn)
}

// EndTurn discards the hand, lets every living enemy act in roster order
// and, unless the player died, starts the next player turn.
func (b *Battle) EndTurn() (EnemyTurnReport, error) {
	if err := b.guard(); err != nil {
		return EnemyTurnReport{}, err
	}
	if b.targeting != nil {
		return EnemyTurnReport{}, ErrTargetingInProgress
	}
	mark := len(b.events)

	b.deck.DiscardHand()
	b.phase = PhaseEnemyTurn
	b.log.add("You end your turn.")

	actions := b.runEnemyTurn()
	if b.phase == PhaseEnemyTurn {
		b.startPlayerTurn()
	}

	if err := b.verify(); err != nil {
		return EnemyTurnReport{}, err
	}
	return EnemyTurnReport{
		Actions:  actions,
		Phase:    b.phase,
		Terminal: b.phase.Terminal(),
		Events:   b.eventsSince(mark),
	}, nil
}

// runEnemyTurn stops at the first enemy whose hit kills the player.
func (b *Battle) runEnemyTurn() []EnemyAction {
	actions := make([]EnemyAction, 0, len(b.enemies))
	for i := range b.enemies {
		e := &b.enemies[i]
		if !e.Alive() {
			continue
		}
		dmg := e.Intent
		res := ResolveIncomingDamage(&b.player, dmg)
		b.stats.DamageTaken += res.Taken
		b.stats.DamageBlocked += res.Blocked
		b.emit(Event{
			Kind:     EventDamageApplied,
			SourceID: e.ID,
			TargetID: PlayerID,
			Amount:   dmg,
			Blocked:  res.Blocked,
			Taken:    res.Taken,
		})
		if res.Blocked > 0 {
			b.log.add("%s hits you for %d (%d blocked).", e.Name, res.Taken, res.Blocked)
		} else {
			b.log.add("%s hits you for %d.", e.Name, res.Taken)
		}

		e.Intent = b.intents.Next()
		actions = append(actions, EnemyAction{
			EnemyID:    e.ID,
			Damage:     dmg,
			Blocked:    res.Blocked,
			Taken:      res.Taken,
			NextIntent: e.Intent,
		})

		if b.checkDefeat() {
			break
		}
	}
	return actions
}
