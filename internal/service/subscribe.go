package service

import (
	"github.com/umaydie-cyber/promotion/internal/constants"
	"github.com/umaydie-cyber/promotion/internal/engine"
	"github.com/umaydie-cyber/promotion/internal/logging"
)

// Subscription delivers the events of one battle. Backlog holds events that
// already happened; Events carries the ones that follow, in order, and is
// closed after a terminal event, when the battle expires, or when the
// subscriber falls too far behind.
type Subscription struct {
	Backlog []engine.Event
	Events  <-chan engine.Event

	cancel func()
}

// Close stops delivery. It is safe to call more than once.
func (sub *Subscription) Close() {
	if sub.cancel != nil {
		sub.cancel()
	}
}

// Subscribe registers a listener for a battle's events after afterSeq.
func (s *BattleService) Subscribe(id string, afterSeq int) (*Subscription, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.closed {
		return nil, ErrBattleNotFound
	}

	ch := make(chan engine.Event, s.opts.SubscriberBuffer)
	sub := &Subscription{
		Backlog: sess.battle.Events(afterSeq),
		Events:  ch,
	}
	if sess.battle.Phase().Terminal() {
		close(ch)
		return sub, nil
	}

	key := sess.nextSub
	sess.nextSub++
	sess.subs[key] = ch
	sub.cancel = func() {
		sess.mu.Lock()
		defer sess.mu.Unlock()
		sess.dropSub(key)
	}
	return sub, nil
}

// publish pushes events newer than the last published seq to every
// subscriber. A subscriber whose buffer is full is disconnected; it can
// resume from its last seen seq.
func (sess *session) publish() {
	events := sess.battle.Events(sess.published)
	if len(events) == 0 {
		return
	}
	for key, ch := range sess.subs {
		for _, e := range events {
			select {
			case ch <- e:
				continue
			default:
			}
			logging.Warn("dropping slow battle subscriber", logging.Fields{
				constants.LogFieldBattleID: sess.id,
				constants.LogFieldCount:    len(events),
			})
			sess.dropSub(key)
			break
		}
	}
	sess.published = events[len(events)-1].Seq
	if events[len(events)-1].Kind.Terminal() {
		sess.closeSubs()
	}
}

func (sess *session) dropSub(key int) {
	if ch, ok := sess.subs[key]; ok {
		close(ch)
		delete(sess.subs, key)
	}
}

func (sess *session) closeSubs() {
	for key := range sess.subs {
		sess.dropSub(key)
	}
}
