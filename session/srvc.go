package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"

	"github.com/codesync/backend/archive"
	"github.com/codesync/backend/auth"
	"github.com/codesync/backend/judge"
	"github.com/codesync/backend/question"
)

// judgeSrvc is what the submission path needs from the judging
// orchestrator. Satisfied by *judge.Srvc; faked in tests.
type judgeSrvc interface {
	Judge(
		ctx context.Context,
		questionId string,
		langId string,
		code string,
	) (judge.Report, error)
}

// how many times a mutation re-reads and retries after losing an
// optimistic write race before giving up
const maxMutateAttempts = 3

// SessionSrvc owns the authoritative shared session records. Every
// mutation goes through an authorization check and a transactional
// read-modify-write, and the accepted new state is fanned out to all
// subscribed observers.
type SessionSrvc struct {
	logger *slog.Logger

	repo      sessionRepo
	judge     judgeSrvc
	questions *question.Catalog

	// optional: archives submitted code to S3, best-effort
	archive *archive.CodeArchive

	stream *sessionStream
}

// NewSessionSrvc creates a session service backed by DynamoDB,
// configured from environment variables.
func NewSessionSrvc(judgeSrvc judgeSrvc, questions *question.Catalog) (*SessionSrvc, error) {
	tableName := os.Getenv("SESSIONS_DDB_TABLE")
	if tableName == "" {
		return nil, fmt.Errorf("SESSIONS_DDB_TABLE not set in .env file")
	}

	cfg, err := config.LoadDefaultConfig(context.Background())
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	repo := NewDynamoDbSessionRepo(dynamodb.NewFromConfig(cfg), tableName)

	var codeArchive *archive.CodeArchive
	if bucket := os.Getenv("SUBM_ARCHIVE_S3_BUCKET"); bucket != "" {
		codeArchive, err = archive.NewCodeArchive(os.Getenv("AWS_REGION"), bucket)
		if err != nil {
			return nil, fmt.Errorf("failed to create code archive: %w", err)
		}
	}

	return NewCustomSessionSrvc(
		slog.Default().With("module", "session"),
		repo,
		judgeSrvc,
		questions,
		codeArchive,
	), nil
}

// NewCustomSessionSrvc creates a session service with provided
// dependencies.
func NewCustomSessionSrvc(
	logger *slog.Logger,
	repo sessionRepo,
	judgeSrvc judgeSrvc,
	questions *question.Catalog,
	codeArchive *archive.CodeArchive,
) *SessionSrvc {
	return &SessionSrvc{
		logger:    logger,
		repo:      repo,
		judge:     judgeSrvc,
		questions: questions,
		archive:   codeArchive,
		stream:    newSessionStream(),
	}
}

type CreateSessionParams struct {
	Title          string
	Description    string
	CandidateID    string
	InterviewerIDs []string
	CallID         string
	StartAt        time.Time
	Status         string
}

func (s *SessionSrvc) Create(ctx context.Context, params CreateSessionParams, actor *auth.JwtClaims) (*Session, error) {
	if actor == nil {
		return nil, ErrUnauthorized()
	}
	status := params.Status
	if status == "" {
		status = StatusScheduled
	}
	if _, ok := statusRank[status]; !ok {
		return nil, ErrInvalidStatus()
	}
	startAt := params.StartAt
	if startAt.IsZero() {
		startAt = time.Now()
	}

	sess := &Session{
		UUID:           uuid.New(),
		Title:          params.Title,
		Description:    params.Description,
		CandidateID:    params.CandidateID,
		InterviewerIDs: params.InterviewerIDs,
		CallID:         params.CallID,
		Status:         status,
		StartAt:        startAt,
		Submissions:    []Submission{},
	}

	if err := s.repo.Insert(ctx, sess); err != nil {
		return nil, err
	}

	s.logger.Info("session created",
		"session_id", sess.UUID,
		"candidate_id", sess.CandidateID)
	return sess, nil
}

func (s *SessionSrvc) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	return s.repo.Get(ctx, id)
}

func (s *SessionSrvc) GetByCallID(ctx context.Context, callID string) (*Session, error) {
	return s.repo.GetByCallID(ctx, callID)
}

func (s *SessionSrvc) ListByCandidate(ctx context.Context, candidateID string) ([]Session, error) {
	return s.repo.ListByCandidate(ctx, candidateID)
}

func (s *SessionSrvc) List(ctx context.Context) ([]Session, error) {
	return s.repo.List(ctx)
}

// mutate runs one authorized modification as a transactional
// read-modify-write. Mutations are linearized against the record
// version they read: losing the conditional store means another
// writer got in between, so the whole read-validate-apply is redone
// against the fresh record.
func (s *SessionSrvc) mutate(
	ctx context.Context,
	id uuid.UUID,
	apply func(sess *Session) error,
) (*Session, error) {
	for attempt := 0; attempt < maxMutateAttempts; attempt++ {
		sess, err := s.repo.Get(ctx, id)
		if err != nil {
			return nil, err
		}

		if err := apply(sess); err != nil {
			return nil, err
		}

		err = s.repo.Store(ctx, sess)
		if err != nil {
			if errors.Is(err, errVersionConflict) {
				continue
			}
			return nil, err
		}

		s.stream.notify(sess)
		return sess, nil
	}
	return nil, ErrWriteConflict()
}
