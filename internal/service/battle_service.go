package service

import (
	"errors"
	"sync"
	"time"

	"github.com/umaydie-cyber/promotion/internal/engine"
	"github.com/umaydie-cyber/promotion/internal/game"
	"github.com/umaydie-cyber/promotion/internal/storage"
)

var (
	ErrBattleNotFound     = errors.New("battle not found")
	ErrUnknownCharacter   = errors.New("unknown character")
	ErrUnknownEnemy       = errors.New("unknown enemy")
	ErrUnknownEncounter   = errors.New("unknown encounter")
	ErrUnknownCard        = errors.New("unknown card in starter deck")
	ErrEmptyRoster        = errors.New("enemy roster is empty")
	ErrAmbiguousEncounter = errors.New("give either an encounter or an enemy list, not both")
)

const defaultSubscriberBuffer = 64

// Options tune battle creation and event delivery. Zero values fall back to
// the engine defaults.
type Options struct {
	HandSize         int
	IntentMin        int
	IntentMax        int
	SubscriberBuffer int
	// Now is used for activity and record timestamps. Defaults to time.Now.
	Now func() time.Time
}

// BattleView is a snapshot of a battle together with its session metadata.
type BattleView struct {
	BattleID     string `json:"battle_id"`
	CharacterID  string `json:"character_id"`
	EncounterKey string `json:"encounter_key"`
	Seed         int64  `json:"seed"`
	engine.Snapshot
}

// BattleService owns every live battle. Actions on one battle are
// serialized by that battle's mutex; different battles run independently.
type BattleService struct {
	catalog *game.Catalog
	repo    storage.Repository
	opts    Options

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	mu sync.Mutex

	id           string
	characterID  string
	encounterKey string
	seed         int64
	battle       *engine.Battle
	startedAt    time.Time
	lastActive   time.Time

	// published is the last event seq handed to subscribers.
	published int
	subs      map[int]chan engine.Event
	nextSub   int
	recorded  bool
	closed    bool
}

func NewBattleService(catalog *game.Catalog, repo storage.Repository, opts Options) *BattleService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.SubscriberBuffer <= 0 {
		opts.SubscriberBuffer = defaultSubscriberBuffer
	}
	return &BattleService{
		catalog:  catalog,
		repo:     repo,
		opts:     opts,
		sessions: make(map[string]*session),
	}
}

// Catalog returns the static definitions battles are built from.
func (s *BattleService) Catalog() *game.Catalog { return s.catalog }

func (s *BattleService) lookup(id string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrBattleNotFound
	}
	return sess, nil
}

// withBattle runs fn under the battle's lock, then fans out new events and
// records the battle if fn finished it.
func (s *BattleService) withBattle(id string, fn func(b *engine.Battle) error) error {
	sess, err := s.lookup(id)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.closed {
		return ErrBattleNotFound
	}

	err = fn(sess.battle)
	sess.lastActive = s.opts.Now()
	sess.publish()
	if sess.battle.Phase().Terminal() {
		s.recordLocked(sess, outcomeOf(sess.battle.Phase()))
	}
	return err
}

func (sess *session) view() BattleView {
	return BattleView{
		BattleID:     sess.id,
		CharacterID:  sess.characterID,
		EncounterKey: sess.encounterKey,
		Seed:         sess.seed,
		Snapshot:     sess.battle.Snapshot(),
	}
}

func outcomeOf(p engine.Phase) game.Outcome {
	if p == engine.PhaseBattleWon {
		return game.OutcomeWon
	}
	return game.OutcomeLost
}

// Len reports how many battles are registered.
func (s *BattleService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
