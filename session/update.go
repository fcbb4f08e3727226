package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/codesync/backend/auth"
	"github.com/codesync/backend/planglist"
)

// canMutateFields decides whether the actor may write the live
// question/code/language fields. Candidates may write their own
// session; interviewers may write any session they can address. The
// same role rules apply before and after submission: the submitted
// flag locks the snapshot fields, not write access.
func canMutateFields(sess *Session, actor *auth.JwtClaims) bool {
	if actor == nil {
		return false
	}
	if actor.IsInterviewer() {
		return true
	}
	return sess.isParticipantCandidate(actor.Subject)
}

func authorizeFieldWrite(sess *Session, actor *auth.JwtClaims) error {
	if sess.Status == StatusCompleted {
		return ErrSessionCompleted()
	}
	if !canMutateFields(sess, actor) {
		return ErrUnauthorized()
	}
	return nil
}

// SelectQuestion switches the session's active question. The current
// code is left untouched: starter-code substitution is a client-side
// policy, and the authoritative code stays whatever the last accepted
// UpdateCode call set.
func (s *SessionSrvc) SelectQuestion(
	ctx context.Context,
	id uuid.UUID,
	questionId string,
	actor *auth.JwtClaims,
) (*Session, error) {
	if _, err := s.questions.Get(questionId); err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, func(sess *Session) error {
		if err := authorizeFieldWrite(sess, actor); err != nil {
			return err
		}
		sess.SelectedQuestionID = questionId
		return nil
	})
}

func (s *SessionSrvc) UpdateCode(
	ctx context.Context,
	id uuid.UUID,
	code string,
	actor *auth.JwtClaims,
) (*Session, error) {
	return s.mutate(ctx, id, func(sess *Session) error {
		if err := authorizeFieldWrite(sess, actor); err != nil {
			return err
		}
		sess.CurrentCode = code
		return nil
	})
}

func (s *SessionSrvc) UpdateLanguage(
	ctx context.Context,
	id uuid.UUID,
	langId string,
	actor *auth.JwtClaims,
) (*Session, error) {
	if _, err := planglist.GetProgrammingLanguageById(langId); err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, func(sess *Session) error {
		if err := authorizeFieldWrite(sess, actor); err != nil {
			return err
		}
		sess.CurrentLanguage = langId
		return nil
	})
}

// UpdateStatus advances the session lifecycle. Transitions are
// monotonic; moving to completed records the end time and freezes the
// record.
func (s *SessionSrvc) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	status string,
	actor *auth.JwtClaims,
) (*Session, error) {
	newRank, ok := statusRank[status]
	if !ok {
		return nil, ErrInvalidStatus()
	}
	return s.mutate(ctx, id, func(sess *Session) error {
		if !canMutateFields(sess, actor) {
			return ErrUnauthorized()
		}
		if newRank < statusRank[sess.Status] {
			return ErrInvalidStatusTransition()
		}
		if sess.Status == StatusCompleted {
			// already terminal; idempotent completion is allowed
			if status != StatusCompleted {
				return ErrInvalidStatusTransition()
			}
			return nil
		}
		sess.Status = status
		if status == StatusCompleted && sess.EndAt == nil {
			now := time.Now()
			sess.EndAt = &now
		}
		return nil
	})
}
