package session

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// InMemSessionRepo keeps sessions in a map; used by tests and local
// development. It enforces the same version-conditional store as the
// DynamoDB repo so concurrency bugs show up locally too.
type InMemSessionRepo struct {
	lock     sync.Mutex
	sessions map[uuid.UUID]Session
}

func NewInMemSessionRepo() *InMemSessionRepo {
	return &InMemSessionRepo{
		sessions: make(map[uuid.UUID]Session),
	}
}

func (m *InMemSessionRepo) Insert(ctx context.Context, sess *Session) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	if _, ok := m.sessions[sess.UUID]; ok {
		return errVersionConflict
	}
	sess.Version = 1
	m.sessions[sess.UUID] = *sess
	return nil
}

func (m *InMemSessionRepo) Store(ctx context.Context, sess *Session) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	stored, ok := m.sessions[sess.UUID]
	if !ok {
		return ErrSessionNotFound()
	}
	if stored.Version != sess.Version {
		return errVersionConflict
	}
	sess.Version++
	m.sessions[sess.UUID] = *sess
	return nil
}

func (m *InMemSessionRepo) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	sess, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound()
	}
	return &sess, nil
}

func (m *InMemSessionRepo) GetByCallID(ctx context.Context, callID string) (*Session, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	for _, sess := range m.sessions {
		if sess.CallID == callID {
			s := sess
			return &s, nil
		}
	}
	return nil, ErrSessionNotFound()
}

func (m *InMemSessionRepo) ListByCandidate(ctx context.Context, candidateID string) ([]Session, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	res := []Session{}
	for _, sess := range m.sessions {
		if sess.CandidateID == candidateID {
			res = append(res, sess)
		}
	}
	sortSessionsByStart(res)
	return res, nil
}

func (m *InMemSessionRepo) List(ctx context.Context) ([]Session, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	res := make([]Session, 0, len(m.sessions))
	for _, sess := range m.sessions {
		res = append(res, sess)
	}
	sortSessionsByStart(res)
	return res, nil
}

func sortSessionsByStart(sessions []Session) {
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartAt.After(sessions[j].StartAt)
	})
}
