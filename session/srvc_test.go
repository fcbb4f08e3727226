package session

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codesync/backend/auth"
	"github.com/codesync/backend/judge"
	"github.com/codesync/backend/question"
	"github.com/codesync/backend/srvcerror"
)

// fakeJudgeSrvc returns a scripted report and records what it was
// asked to judge.
type fakeJudgeSrvc struct {
	report judge.Report
	err    error

	lastQuestionId string
	lastLangId     string
	lastCode       string
	calls          atomic.Int32
}

func (f *fakeJudgeSrvc) Judge(
	ctx context.Context,
	questionId string,
	langId string,
	code string,
) (judge.Report, error) {
	f.calls.Add(1)
	f.lastQuestionId = questionId
	f.lastLangId = langId
	f.lastCode = code
	if f.err != nil {
		return judge.Report{}, f.err
	}
	return f.report, nil
}

func candidateClaims(subject string) *auth.JwtClaims {
	return &auth.JwtClaims{
		Name:  "Test Candidate",
		Email: subject + "@example.com",
		Role:  auth.RoleCandidate,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: subject,
		},
	}
}

func interviewerClaims(subject string) *auth.JwtClaims {
	return &auth.JwtClaims{
		Name:  "Test Interviewer",
		Email: subject + "@example.com",
		Role:  auth.RoleInterviewer,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: subject,
		},
	}
}

func passedReport() judge.Report {
	actual := "[0, 1]"
	return judge.Report{
		AllPassed: true,
		Results: []judge.Result{
			{
				Input:    "nums = [2,7,11,15], target = 9",
				Expected: "[0,1]",
				Actual:   &actual,
				Pass:     true,
			},
		},
	}
}

func newTestSrvc(t *testing.T, judgeSrvc judgeSrvc) *SessionSrvc {
	t.Helper()
	if judgeSrvc == nil {
		judgeSrvc = &fakeJudgeSrvc{report: passedReport()}
	}
	return NewCustomSessionSrvc(
		testLogger(t),
		NewInMemSessionRepo(),
		judgeSrvc,
		question.NewDefaultCatalog(),
		nil,
	)
}

func createTestSession(t *testing.T, srvc *SessionSrvc) *Session {
	t.Helper()
	sess, err := srvc.Create(context.Background(), CreateSessionParams{
		Title:          "Backend screening",
		CandidateID:    "cand-1",
		InterviewerIDs: []string{"int-1"},
		CallID:         "call-1",
	}, interviewerClaims("int-1"))
	require.NoError(t, err)
	return sess
}

func requireErrCode(t *testing.T, err error, code string) {
	t.Helper()
	var srvcErr *srvcerror.Error
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, code, srvcErr.ErrorCode())
}

func TestCreateSession(t *testing.T) {
	srvc := newTestSrvc(t, nil)
	ctx := context.Background()

	t.Run("defaults applied", func(t *testing.T) {
		sess := createTestSession(t, srvc)
		assert.Equal(t, StatusScheduled, sess.Status)
		assert.False(t, sess.StartAt.IsZero())
		assert.NotEqual(t, uuid.Nil, sess.UUID)
		assert.Empty(t, sess.Submissions)
		assert.False(t, sess.Submitted)

		stored, err := srvc.Get(ctx, sess.UUID)
		require.NoError(t, err)
		assert.Equal(t, sess.UUID, stored.UUID)
	})

	t.Run("anonymous actor rejected", func(t *testing.T) {
		_, err := srvc.Create(ctx, CreateSessionParams{Title: "x"}, nil)
		requireErrCode(t, err, ErrCodeUnauthorized)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := srvc.Create(ctx, CreateSessionParams{
			Title: "x", Status: "paused",
		}, interviewerClaims("int-1"))
		requireErrCode(t, err, ErrCodeInvalidStatus)
	})
}

func TestGetByCallID(t *testing.T) {
	srvc := newTestSrvc(t, nil)
	ctx := context.Background()
	sess := createTestSession(t, srvc)

	found, err := srvc.GetByCallID(ctx, "call-1")
	require.NoError(t, err)
	assert.Equal(t, sess.UUID, found.UUID)

	_, err = srvc.GetByCallID(ctx, "no-such-call")
	requireErrCode(t, err, ErrCodeSessionNotFound)
}

func TestUpdateCodeAuthorization(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name    string
		actor   *auth.JwtClaims
		wantErr string
	}{
		{
			name:  "own candidate may write",
			actor: candidateClaims("cand-1"),
		},
		{
			name:  "interviewer may write",
			actor: interviewerClaims("int-2"),
		},
		{
			name:    "other candidate rejected",
			actor:   candidateClaims("cand-2"),
			wantErr: ErrCodeUnauthorized,
		},
		{
			name:    "anonymous rejected",
			actor:   nil,
			wantErr: ErrCodeUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srvc := newTestSrvc(t, nil)
			sess := createTestSession(t, srvc)

			updated, err := srvc.UpdateCode(ctx, sess.UUID, "print(1)", tc.actor)
			if tc.wantErr != "" {
				requireErrCode(t, err, tc.wantErr)
				stored, getErr := srvc.Get(ctx, sess.UUID)
				require.NoError(t, getErr)
				assert.Empty(t, stored.CurrentCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "print(1)", updated.CurrentCode)
		})
	}
}

func TestRoleRulesUnchangedAfterSubmission(t *testing.T) {
	srvc := newTestSrvc(t, nil)
	ctx := context.Background()
	sess := createTestSession(t, srvc)
	candidate := candidateClaims("cand-1")

	_, err := srvc.SelectQuestion(ctx, sess.UUID, "two-sum", candidate)
	require.NoError(t, err)
	_, err = srvc.UpdateLanguage(ctx, sess.UUID, "python", candidate)
	require.NoError(t, err)
	_, err = srvc.UpdateCode(ctx, sess.UUID, "print('v1')", candidate)
	require.NoError(t, err)

	_, err = srvc.Submit(ctx, sess.UUID, candidate)
	require.NoError(t, err)

	// participants keep writing the live fields after submission
	updated, err := srvc.UpdateCode(ctx, sess.UUID, "print('v2')", candidate)
	require.NoError(t, err)
	assert.Equal(t, "print('v2')", updated.CurrentCode)

	_, err = srvc.UpdateCode(ctx, sess.UUID, "stolen", candidateClaims("cand-2"))
	requireErrCode(t, err, ErrCodeUnauthorized)

	_, err = srvc.UpdateCode(ctx, sess.UUID, "print('v3')", interviewerClaims("int-9"))
	require.NoError(t, err)
}

func TestSelectQuestionValidatesCatalog(t *testing.T) {
	srvc := newTestSrvc(t, nil)
	ctx := context.Background()
	sess := createTestSession(t, srvc)

	_, err := srvc.SelectQuestion(ctx, sess.UUID, "no-such-question",
		candidateClaims("cand-1"))
	requireErrCode(t, err, question.ErrCodeQuestionNotFound)

	updated, err := srvc.SelectQuestion(ctx, sess.UUID, "reverse-string",
		candidateClaims("cand-1"))
	require.NoError(t, err)
	assert.Equal(t, "reverse-string", updated.SelectedQuestionID)
}

func TestUpdateLanguageValidated(t *testing.T) {
	srvc := newTestSrvc(t, nil)
	ctx := context.Background()
	sess := createTestSession(t, srvc)

	_, err := srvc.UpdateLanguage(ctx, sess.UUID, "cobol", candidateClaims("cand-1"))
	requireErrCode(t, err, "unsupported_language")

	updated, err := srvc.UpdateLanguage(ctx, sess.UUID, "java", candidateClaims("cand-1"))
	require.NoError(t, err)
	assert.Equal(t, "java", updated.CurrentLanguage)
}

func TestUpdateStatusMonotonic(t *testing.T) {
	srvc := newTestSrvc(t, nil)
	ctx := context.Background()
	sess := createTestSession(t, srvc)
	actor := interviewerClaims("int-1")

	updated, err := srvc.UpdateStatus(ctx, sess.UUID, StatusActive, actor)
	require.NoError(t, err)
	assert.Equal(t, StatusActive, updated.Status)

	_, err = srvc.UpdateStatus(ctx, sess.UUID, StatusScheduled, actor)
	requireErrCode(t, err, ErrCodeInvalidStatusTransition)

	updated, err = srvc.UpdateStatus(ctx, sess.UUID, StatusCompleted, actor)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, updated.Status)
	require.NotNil(t, updated.EndAt)
	endAt := *updated.EndAt

	// idempotent completion keeps the original end time
	updated, err = srvc.UpdateStatus(ctx, sess.UUID, StatusCompleted, actor)
	require.NoError(t, err)
	require.NotNil(t, updated.EndAt)
	assert.Equal(t, endAt.Unix(), updated.EndAt.Unix())

	_, err = srvc.UpdateStatus(ctx, sess.UUID, "paused", actor)
	requireErrCode(t, err, ErrCodeInvalidStatus)
}

func TestCompletedSessionIsReadOnly(t *testing.T) {
	srvc := newTestSrvc(t, nil)
	ctx := context.Background()
	sess := createTestSession(t, srvc)
	actor := interviewerClaims("int-1")

	_, err := srvc.UpdateStatus(ctx, sess.UUID, StatusCompleted, actor)
	require.NoError(t, err)

	_, err = srvc.UpdateCode(ctx, sess.UUID, "late edit", actor)
	requireErrCode(t, err, ErrCodeSessionCompleted)

	_, err = srvc.Submit(ctx, sess.UUID, actor)
	requireErrCode(t, err, ErrCodeSessionCompleted)
}

func TestSubmitRecordsJudgedAttempt(t *testing.T) {
	judgeSrvc := &fakeJudgeSrvc{report: passedReport()}
	srvc := newTestSrvc(t, judgeSrvc)
	ctx := context.Background()
	sess := createTestSession(t, srvc)
	candidate := candidateClaims("cand-1")

	_, err := srvc.SelectQuestion(ctx, sess.UUID, "two-sum", candidate)
	require.NoError(t, err)
	_, err = srvc.UpdateLanguage(ctx, sess.UUID, "python", candidate)
	require.NoError(t, err)
	_, err = srvc.UpdateCode(ctx, sess.UUID, "print('attempt one')", candidate)
	require.NoError(t, err)

	updated, err := srvc.Submit(ctx, sess.UUID, candidate)
	require.NoError(t, err)

	assert.Equal(t, "two-sum", judgeSrvc.lastQuestionId)
	assert.Equal(t, "python", judgeSrvc.lastLangId)
	assert.Equal(t, "print('attempt one')", judgeSrvc.lastCode)

	assert.True(t, updated.Submitted)
	assert.Equal(t, "print('attempt one')", updated.SubmittedCode)
	assert.Equal(t, "python", updated.SubmittedLanguage)

	require.Len(t, updated.Submissions, 1)
	subm := updated.Submissions[0]
	assert.NotEqual(t, uuid.Nil, subm.UUID)
	assert.Equal(t, "print('attempt one')", subm.Code)
	assert.Equal(t, "python", subm.Language)
	assert.Equal(t, "two-sum", subm.QuestionID)
	assert.False(t, subm.CreatedAt.IsZero())
	require.NotNil(t, subm.Verdict)
	assert.True(t, subm.Verdict.AllPassed)
}

func TestSubmitSnapshotFreezesAtFirstSubmit(t *testing.T) {
	srvc := newTestSrvc(t, nil)
	ctx := context.Background()
	sess := createTestSession(t, srvc)
	candidate := candidateClaims("cand-1")

	_, err := srvc.SelectQuestion(ctx, sess.UUID, "two-sum", candidate)
	require.NoError(t, err)
	_, err = srvc.UpdateLanguage(ctx, sess.UUID, "python", candidate)
	require.NoError(t, err)
	_, err = srvc.UpdateCode(ctx, sess.UUID, "first attempt", candidate)
	require.NoError(t, err)
	_, err = srvc.Submit(ctx, sess.UUID, candidate)
	require.NoError(t, err)

	_, err = srvc.UpdateCode(ctx, sess.UUID, "second attempt", candidate)
	require.NoError(t, err)
	updated, err := srvc.Submit(ctx, sess.UUID, candidate)
	require.NoError(t, err)

	// the snapshot still names the first submission
	assert.Equal(t, "first attempt", updated.SubmittedCode)
	require.Len(t, updated.Submissions, 2)
	assert.Equal(t, "first attempt", updated.Submissions[0].Code)
	assert.Equal(t, "second attempt", updated.Submissions[1].Code)
}

func TestSubmitJudgeFailureLeavesSessionUntouched(t *testing.T) {
	judgeSrvc := &fakeJudgeSrvc{err: question.ErrQuestionNotFound()}
	srvc := newTestSrvc(t, judgeSrvc)
	ctx := context.Background()
	sess := createTestSession(t, srvc)
	candidate := candidateClaims("cand-1")

	_, err := srvc.Submit(ctx, sess.UUID, candidate)
	requireErrCode(t, err, question.ErrCodeQuestionNotFound)

	stored, err := srvc.Get(ctx, sess.UUID)
	require.NoError(t, err)
	assert.False(t, stored.Submitted)
	assert.Empty(t, stored.Submissions)
}

func TestSubmitAuthorization(t *testing.T) {
	srvc := newTestSrvc(t, nil)
	ctx := context.Background()
	sess := createTestSession(t, srvc)

	_, err := srvc.Submit(ctx, sess.UUID, candidateClaims("cand-2"))
	requireErrCode(t, err, ErrCodeUnauthorized)

	_, err = srvc.Submit(ctx, sess.UUID, nil)
	requireErrCode(t, err, ErrCodeUnauthorized)

	_, err = srvc.Submit(ctx, sess.UUID, interviewerClaims("int-1"))
	require.NoError(t, err)
}

func TestAttachVerdict(t *testing.T) {
	srvc := newTestSrvc(t, nil)
	ctx := context.Background()
	sess := createTestSession(t, srvc)
	candidate := candidateClaims("cand-1")

	_, err := srvc.SelectQuestion(ctx, sess.UUID, "two-sum", candidate)
	require.NoError(t, err)
	_, err = srvc.UpdateLanguage(ctx, sess.UUID, "python", candidate)
	require.NoError(t, err)
	updated, err := srvc.Submit(ctx, sess.UUID, candidate)
	require.NoError(t, err)
	createdAt := updated.Submissions[0].CreatedAt

	t.Run("overwrites verdict by timestamp", func(t *testing.T) {
		verdict := judge.Report{AllPassed: false, Results: []judge.Result{}}
		updated, err := srvc.AttachVerdict(ctx, sess.UUID, createdAt, verdict)
		require.NoError(t, err)
		require.NotNil(t, updated.Submissions[0].Verdict)
		assert.False(t, updated.Submissions[0].Verdict.AllPassed)
	})

	t.Run("re-attach is idempotent", func(t *testing.T) {
		first := judge.Report{AllPassed: false}
		second := judge.Report{AllPassed: true}
		_, err := srvc.AttachVerdict(ctx, sess.UUID, createdAt, first)
		require.NoError(t, err)
		updated, err := srvc.AttachVerdict(ctx, sess.UUID, createdAt, second)
		require.NoError(t, err)

		require.Len(t, updated.Submissions, 1)
		assert.True(t, updated.Submissions[0].Verdict.AllPassed)
	})

	t.Run("unknown timestamp", func(t *testing.T) {
		_, err := srvc.AttachVerdict(ctx, sess.UUID,
			createdAt.Add(time.Hour), judge.Report{})
		requireErrCode(t, err, ErrCodeSubmissionNotFound)
	})
}

func TestAttachVerdictAmbiguousTimestamp(t *testing.T) {
	srvc := newTestSrvc(t, nil)
	ctx := context.Background()
	sess := createTestSession(t, srvc)

	ts := time.Now()
	_, err := srvc.mutate(ctx, sess.UUID, func(sess *Session) error {
		sess.Submissions = append(sess.Submissions,
			Submission{UUID: uuid.New(), CreatedAt: ts},
			Submission{UUID: uuid.New(), CreatedAt: ts},
		)
		return nil
	})
	require.NoError(t, err)

	_, err = srvc.AttachVerdict(ctx, sess.UUID, ts, judge.Report{})
	requireErrCode(t, err, ErrCodeAmbiguousSubmission)
}

func TestMutateRetriesOnVersionConflict(t *testing.T) {
	repo := NewInMemSessionRepo()
	srvc := NewCustomSessionSrvc(
		testLogger(t),
		repo,
		&fakeJudgeSrvc{report: passedReport()},
		question.NewDefaultCatalog(),
		nil,
	)
	ctx := context.Background()
	sess := createTestSession(t, srvc)

	raced := false
	_, err := srvc.mutate(ctx, sess.UUID, func(inner *Session) error {
		if !raced {
			raced = true
			// another writer lands between our read and store
			other, err := repo.Get(ctx, sess.UUID)
			require.NoError(t, err)
			other.CurrentCode = "racing write"
			require.NoError(t, repo.Store(ctx, other))
		}
		inner.Title = "renamed"
		return nil
	})
	require.NoError(t, err)

	stored, err := srvc.Get(ctx, sess.UUID)
	require.NoError(t, err)
	// both writes survived: the retry re-read the racing write
	assert.Equal(t, "renamed", stored.Title)
	assert.Equal(t, "racing write", stored.CurrentCode)
}

func TestMutateGivesUpAfterRepeatedConflicts(t *testing.T) {
	repo := NewInMemSessionRepo()
	srvc := NewCustomSessionSrvc(
		testLogger(t),
		repo,
		&fakeJudgeSrvc{report: passedReport()},
		question.NewDefaultCatalog(),
		nil,
	)
	ctx := context.Background()
	sess := createTestSession(t, srvc)

	_, err := srvc.mutate(ctx, sess.UUID, func(inner *Session) error {
		other, err := repo.Get(ctx, sess.UUID)
		require.NoError(t, err)
		other.CurrentCode = "always racing"
		require.NoError(t, repo.Store(ctx, other))
		return nil
	})
	requireErrCode(t, err, ErrCodeWriteConflict)
}
