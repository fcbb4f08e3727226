package session

import (
	"sync"

	"github.com/google/uuid"
)

// sessionStream fans accepted session states out to all observers of
// a session. Observers that fall behind lose intermediate states, not
// the latest one: clients converge on the authoritative record, they
// do not replay history.
type sessionStream struct {
	lock sync.Mutex
	// maps session IDs to subscriber channels
	subscribers map[uuid.UUID][]chan Session
}

func newSessionStream() *sessionStream {
	return &sessionStream{
		subscribers: make(map[uuid.UUID][]chan Session),
	}
}

func (st *sessionStream) subscribe(sessionId uuid.UUID) (<-chan Session, func()) {
	st.lock.Lock()
	defer st.lock.Unlock()

	ch := make(chan Session, 100)
	st.subscribers[sessionId] = append(st.subscribers[sessionId], ch)

	unsubscribe := func() {
		st.lock.Lock()
		defer st.lock.Unlock()
		subs := st.subscribers[sessionId]
		for i, sub := range subs {
			if sub == ch {
				st.subscribers[sessionId] = append(subs[:i], subs[i+1:]...)
				close(ch)
				break
			}
		}
		if len(st.subscribers[sessionId]) == 0 {
			delete(st.subscribers, sessionId)
		}
	}
	return ch, unsubscribe
}

func (st *sessionStream) notify(sess *Session) {
	st.lock.Lock()
	defer st.lock.Unlock()
	for _, ch := range st.subscribers[sess.UUID] {
		select {
		case ch <- *sess:
			continue
		default:
		}

		// full buffer: drop the oldest buffered state so the newest
		// always lands
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- *sess:
		default:
		}
	}
}

// Subscribe returns a channel that receives every accepted new state
// of the session, and a function that cancels the subscription.
func (s *SessionSrvc) Subscribe(sessionId uuid.UUID) (<-chan Session, func()) {
	return s.stream.subscribe(sessionId)
}
