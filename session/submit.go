package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/codesync/backend/auth"
	"github.com/codesync/backend/judge"
)

// Submit records a final judged attempt: it reads the session's
// current code, language and question, runs the judging orchestrator
// synchronously, and on success appends a timestamped submission and
// flips the session into the submitted state. If judging fails the
// session is left untouched and the error propagates.
func (s *SessionSrvc) Submit(
	ctx context.Context,
	id uuid.UUID,
	actor *auth.JwtClaims,
) (*Session, error) {
	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Status == StatusCompleted {
		return nil, ErrSessionCompleted()
	}
	if !canMutateFields(sess, actor) {
		return nil, ErrUnauthorized()
	}

	// the judged attempt is the triple read here, even if live fields
	// move while the judge is running
	code := sess.CurrentCode
	langId := sess.CurrentLanguage
	questionId := sess.SelectedQuestionID

	report, err := s.judge.Judge(ctx, questionId, langId, code)
	if err != nil {
		return nil, err
	}

	subm := Submission{
		UUID:       uuid.New(),
		Code:       code,
		Language:   langId,
		QuestionID: questionId,
		CreatedAt:  time.Now(),
		Verdict:    &report,
	}

	updated, err := s.mutate(ctx, id, func(sess *Session) error {
		if sess.Status == StatusCompleted {
			return ErrSessionCompleted()
		}
		if !canMutateFields(sess, actor) {
			return ErrUnauthorized()
		}
		sess.Submissions = append(sess.Submissions, subm)
		if !sess.Submitted {
			// the snapshot freezes at the moment of the first
			// submission; later submits only extend history
			sess.Submitted = true
			sess.SubmittedCode = code
			sess.SubmittedLanguage = langId
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("submission recorded",
		"session_id", id,
		"submission_id", subm.UUID,
		"all_passed", report.AllPassed)

	s.archiveSubmission(id, &subm)

	return updated, nil
}

// archiveSubmission uploads the submitted source to the code archive.
// Best-effort: a failed upload is logged and never fails the submit.
func (s *SessionSrvc) archiveSubmission(sessionId uuid.UUID, subm *Submission) {
	if s.archive == nil {
		return
	}
	url, err := s.archive.StoreSubmission(
		sessionId.String(), subm.UUID.String(), subm.Language, subm.Code)
	if err != nil {
		s.logger.Error("failed to archive submission",
			"submission_id", subm.UUID,
			"error", err)
		return
	}
	s.logger.Info("submission archived",
		"submission_id", subm.UUID,
		"url", url)
}

// AttachVerdict binds a verdict to an already-recorded submission
// identified by its creation timestamp, for deployments that judge in
// a background worker instead of inline. Idempotent per timestamp:
// re-attaching overwrites the prior verdict.
func (s *SessionSrvc) AttachVerdict(
	ctx context.Context,
	id uuid.UUID,
	timestamp time.Time,
	verdict judge.Report,
) (*Session, error) {
	return s.mutate(ctx, id, func(sess *Session) error {
		i, err := sess.findSubmissionByTimestamp(timestamp)
		if err != nil {
			return err
		}
		sess.Submissions[i].Verdict = &verdict
		return nil
	})
}
