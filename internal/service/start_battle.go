package service

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/umaydie-cyber/promotion/internal/constants"
	"github.com/umaydie-cyber/promotion/internal/engine"
	"github.com/umaydie-cyber/promotion/internal/keys"
	"github.com/umaydie-cyber/promotion/internal/logging"

	"github.com/google/uuid"
)

// StartBattleRequest names a character and either a catalog encounter or an
// explicit enemy list. A nil Seed draws a fresh one.
type StartBattleRequest struct {
	CharacterID string
	EncounterID string
	EnemyIDs    []string
	Seed        *int64
}

// StartBattle builds a battle from catalog ids, registers it and returns
// its opening view.
func (s *BattleService) StartBattle(req StartBattleRequest) (BattleView, error) {
	ch, ok := s.catalog.Character(req.CharacterID)
	if !ok {
		return BattleView{}, fmt.Errorf("%w: %q", ErrUnknownCharacter, req.CharacterID)
	}
	deck, missing := s.catalog.ExpandDeck(ch.Deck)
	if missing != "" {
		return BattleView{}, fmt.Errorf("%w: %q", ErrUnknownCard, missing)
	}

	roster, err := s.resolveRoster(req)
	if err != nil {
		return BattleView{}, err
	}
	enemies, err := s.enemySpecs(roster)
	if err != nil {
		return BattleView{}, err
	}

	var seed int64
	if req.Seed != nil {
		seed = *req.Seed
	} else if seed, err = newSeed(); err != nil {
		return BattleView{}, err
	}

	b, err := engine.InitializeBattle(engine.Setup{
		Player: engine.PlayerSpec{
			Name:      ch.Name,
			MaxHP:     ch.MaxHP,
			MaxEnergy: ch.MaxEnergy,
		},
		Deck:      deck,
		Enemies:   enemies,
		HandSize:  s.opts.HandSize,
		IntentMin: s.opts.IntentMin,
		IntentMax: s.opts.IntentMax,
	}, seed)
	if err != nil {
		return BattleView{}, err
	}

	now := s.opts.Now()
	sess := &session{
		id:           uuid.NewString(),
		characterID:  ch.ID,
		encounterKey: keys.EncounterKeyFromIDs(roster),
		seed:         seed,
		battle:       b,
		startedAt:    now,
		lastActive:   now,
		subs:         make(map[int]chan engine.Event),
	}
	// Opening events are part of the backlog, not the live feed.
	sess.published = len(b.Events(0))

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	logging.Info("battle started", logging.Fields{
		constants.LogFieldBattleID:    sess.id,
		constants.LogFieldCharacterID: sess.characterID,
		constants.LogFieldEncounter:   sess.encounterKey,
		constants.LogFieldSeed:        seed,
	})

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.view(), nil
}

func (s *BattleService) resolveRoster(req StartBattleRequest) ([]string, error) {
	encounterID := strings.TrimSpace(req.EncounterID)
	if encounterID != "" && len(req.EnemyIDs) > 0 {
		return nil, ErrAmbiguousEncounter
	}
	if encounterID == "" {
		if len(req.EnemyIDs) == 0 {
			return nil, ErrEmptyRoster
		}
		return req.EnemyIDs, nil
	}
	enc, ok := s.catalog.Encounter(encounterID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncounter, encounterID)
	}
	if len(enc.Enemies) == 0 {
		return nil, ErrEmptyRoster
	}
	return enc.Enemies, nil
}

// enemySpecs turns template ids into roster slots. Instance ids are
// "<template>-<n>", counted per template, so two wolves become
// red_scale_wolf-1 and red_scale_wolf-2.
func (s *BattleService) enemySpecs(roster []string) ([]engine.EnemySpec, error) {
	total := make(map[string]int, len(roster))
	templates := make([]string, len(roster))
	for i, id := range roster {
		tpl, ok := s.catalog.Enemy(id)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEnemy, id)
		}
		templates[i] = tpl.ID
		total[tpl.ID]++
	}

	seen := make(map[string]int, len(total))
	out := make([]engine.EnemySpec, 0, len(roster))
	for _, id := range templates {
		tpl, _ := s.catalog.Enemy(id)
		seen[id]++
		name := tpl.Name
		if total[id] > 1 {
			name = fmt.Sprintf("%s %d", tpl.Name, seen[id])
		}
		out = append(out, engine.EnemySpec{
			ID:     fmt.Sprintf("%s-%d", tpl.ID, seen[id]),
			Name:   name,
			MaxHP:  tpl.MaxHP,
			Intent: tpl.OpeningIntent,
		})
	}
	return out, nil
}

// newSeed draws a battle seed from crypto/rand.
func newSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
