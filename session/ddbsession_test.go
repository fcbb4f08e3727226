package session

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codesync/backend/judge"
)

func TestSessionRowMapping(t *testing.T) {
	endAt := time.UnixMilli(time.Now().Add(time.Hour).UnixMilli())
	verdict := &judge.Report{AllPassed: true}

	sess := &Session{
		UUID:               uuid.New(),
		Title:              "Backend screening",
		Description:        "Round one",
		CandidateID:        "cand-1",
		InterviewerIDs:     []string{"int-1", "int-2"},
		CallID:             "call-1",
		Status:             StatusCompleted,
		StartAt:            time.UnixMilli(time.Now().UnixMilli()),
		EndAt:              &endAt,
		SelectedQuestionID: "two-sum",
		CurrentCode:        "print('live')",
		CurrentLanguage:    "python",
		Submitted:          true,
		SubmittedCode:      "print('frozen')",
		SubmittedLanguage:  "python",
		Submissions: []Submission{
			{
				UUID:       uuid.New(),
				Code:       "print('frozen')",
				Language:   "python",
				QuestionID: "two-sum",
				CreatedAt:  time.UnixMilli(time.Now().UnixMilli()),
				Verdict:    verdict,
			},
		},
		Version: 7,
	}

	row := sessionToRow(sess)
	assert.Equal(t, sess.UUID.String(), row.Uuid)
	assert.Equal(t, sess.StartAt.UnixMilli(), row.StartAtUnix)
	require.NotNil(t, row.EndAtUnix)
	assert.Equal(t, endAt.UnixMilli(), *row.EndAtUnix)
	require.Len(t, row.Submissions, 1)
	assert.Equal(t, sess.Submissions[0].CreatedAt.UnixMilli(), row.Submissions[0].UnixMilli)
	assert.Equal(t, int64(7), row.Version)

	back, err := rowToSession(row)
	require.NoError(t, err)
	assert.Equal(t, sess.UUID, back.UUID)
	assert.Equal(t, sess.Title, back.Title)
	assert.Equal(t, sess.InterviewerIDs, back.InterviewerIDs)
	assert.Equal(t, sess.Status, back.Status)
	assert.True(t, sess.StartAt.Equal(back.StartAt))
	require.NotNil(t, back.EndAt)
	assert.True(t, endAt.Equal(*back.EndAt))
	require.Len(t, back.Submissions, 1)
	assert.Equal(t, sess.Submissions[0].UUID, back.Submissions[0].UUID)
	assert.True(t, sess.Submissions[0].CreatedAt.Equal(back.Submissions[0].CreatedAt))
	require.NotNil(t, back.Submissions[0].Verdict)
	assert.True(t, back.Submissions[0].Verdict.AllPassed)
	assert.Equal(t, sess.Version, back.Version)
}

func TestRowToSessionRejectsBadUuid(t *testing.T) {
	_, err := rowToSession(&sessionRow{Uuid: "not-a-uuid"})
	require.Error(t, err)
}

func TestRowsToSessionsSortedByStart(t *testing.T) {
	older := sessionRow{Uuid: uuid.NewString(), StartAtUnix: time.Now().Add(-time.Hour).UnixMilli()}
	newer := sessionRow{Uuid: uuid.NewString(), StartAtUnix: time.Now().UnixMilli()}

	sessions, err := rowsToSessions([]sessionRow{older, newer})
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, newer.Uuid, sessions[0].UUID.String())
	assert.Equal(t, older.Uuid, sessions[1].UUID.String())
}
