package session

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// errVersionConflict is returned by Store when the record changed
// since it was read. The service retries the read-modify-write.
var errVersionConflict = errors.New("session version conflict")

// sessionRepo is the persistence contract: transactional whole-record
// get/store by id plus the indexed lookups the API needs. Store must
// be conditional on the version the caller read, so concurrent
// writers cannot lose updates.
type sessionRepo interface {
	Insert(ctx context.Context, sess *Session) error
	Store(ctx context.Context, sess *Session) error
	Get(ctx context.Context, id uuid.UUID) (*Session, error)
	GetByCallID(ctx context.Context, callID string) (*Session, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]Session, error)
	List(ctx context.Context) ([]Session, error)
}
