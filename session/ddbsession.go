package session

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
	"github.com/guregu/dynamo/v2"

	"github.com/codesync/backend/judge"
)

// submissionRow is the DynamoDB shape of one submission history
// entry. Timestamps are unix milliseconds: the same resolution the
// late-bind verdict attach keys on.
type submissionRow struct {
	Uuid       string        `dynamo:"uuid"`
	Code       string        `dynamo:"code"`
	Language   string        `dynamo:"language"`
	QuestionID string        `dynamo:"question_id"`
	UnixMilli  int64         `dynamo:"unix_milli"`
	Verdict    *judge.Report `dynamo:"verdict"`
}

type sessionRow struct {
	Uuid        string `dynamo:"uuid,hash"` // Primary key
	Title       string `dynamo:"title"`
	Description string `dynamo:"description"`

	CandidateID    string   `dynamo:"candidate_id" index:"gsi_candidate_id,hash"`
	InterviewerIDs []string `dynamo:"interviewer_ids,set,omitempty"`
	CallID         string   `dynamo:"call_id" index:"gsi_call_id,hash"`

	Status      string `dynamo:"status"`
	StartAtUnix int64  `dynamo:"start_at_unix"`
	EndAtUnix   *int64 `dynamo:"end_at_unix"`

	SelectedQuestionID string `dynamo:"selected_question_id"`
	CurrentCode        string `dynamo:"current_code"`
	CurrentLanguage    string `dynamo:"current_language"`

	Submitted         bool   `dynamo:"submitted"`
	SubmittedCode     string `dynamo:"submitted_code"`
	SubmittedLanguage string `dynamo:"submitted_language"`

	Submissions []submissionRow `dynamo:"submissions"`

	Version int64 `dynamo:"version"` // For optimistic locking
}

// DynamoDbSessionRepo persists sessions as whole items with a
// version-conditional put, so every accepted mutation is an atomic
// read-modify-write against the single session record.
type DynamoDbSessionRepo struct {
	ddbClient    *dynamodb.Client
	tableName    string
	sessionTable *dynamo.Table
}

func NewDynamoDbSessionRepo(ddbClient *dynamodb.Client, tableName string) *DynamoDbSessionRepo {
	ddb := &DynamoDbSessionRepo{
		ddbClient: ddbClient,
		tableName: tableName,
	}
	db := dynamo.NewFromIface(ddb.ddbClient)
	table := db.Table(ddb.tableName)
	ddb.sessionTable = &table

	return ddb
}

func (ddb *DynamoDbSessionRepo) Insert(ctx context.Context, sess *Session) error {
	sess.Version = 1
	row := sessionToRow(sess)
	put := ddb.sessionTable.Put(row).If("attribute_not_exists('uuid')")
	err := put.Run(ctx)
	if dynamo.IsCondCheckFailed(err) {
		return errVersionConflict
	}
	return err
}

func (ddb *DynamoDbSessionRepo) Store(ctx context.Context, sess *Session) error {
	// Increment the version number for optimistic locking
	sess.Version++
	row := sessionToRow(sess)
	put := ddb.sessionTable.Put(row).If("version = ?", sess.Version-1)
	err := put.Run(ctx)
	if dynamo.IsCondCheckFailed(err) {
		sess.Version--
		return errVersionConflict
	}
	return err
}

func (ddb *DynamoDbSessionRepo) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	var row sessionRow
	err := ddb.sessionTable.Get("uuid", id.String()).One(ctx, &row)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return nil, ErrSessionNotFound()
		}
		return nil, err
	}
	return rowToSession(&row)
}

func (ddb *DynamoDbSessionRepo) GetByCallID(ctx context.Context, callID string) (*Session, error) {
	var row sessionRow
	err := ddb.sessionTable.Get("call_id", callID).
		Index("gsi_call_id").One(ctx, &row)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return nil, ErrSessionNotFound()
		}
		return nil, err
	}
	return rowToSession(&row)
}

func (ddb *DynamoDbSessionRepo) ListByCandidate(ctx context.Context, candidateID string) ([]Session, error) {
	var rows []sessionRow
	err := ddb.sessionTable.Get("candidate_id", candidateID).
		Index("gsi_candidate_id").All(ctx, &rows)
	if err != nil {
		return nil, err
	}
	return rowsToSessions(rows)
}

func (ddb *DynamoDbSessionRepo) List(ctx context.Context) ([]Session, error) {
	var rows []sessionRow
	err := ddb.sessionTable.Scan().All(ctx, &rows)
	if err != nil {
		return nil, err
	}
	return rowsToSessions(rows)
}

func sessionToRow(sess *Session) *sessionRow {
	row := &sessionRow{
		Uuid:               sess.UUID.String(),
		Title:              sess.Title,
		Description:        sess.Description,
		CandidateID:        sess.CandidateID,
		InterviewerIDs:     sess.InterviewerIDs,
		CallID:             sess.CallID,
		Status:             sess.Status,
		StartAtUnix:        sess.StartAt.UnixMilli(),
		SelectedQuestionID: sess.SelectedQuestionID,
		CurrentCode:        sess.CurrentCode,
		CurrentLanguage:    sess.CurrentLanguage,
		Submitted:          sess.Submitted,
		SubmittedCode:      sess.SubmittedCode,
		SubmittedLanguage:  sess.SubmittedLanguage,
		Version:            sess.Version,
	}
	if sess.EndAt != nil {
		endAt := sess.EndAt.UnixMilli()
		row.EndAtUnix = &endAt
	}
	for _, subm := range sess.Submissions {
		row.Submissions = append(row.Submissions, submissionRow{
			Uuid:       subm.UUID.String(),
			Code:       subm.Code,
			Language:   subm.Language,
			QuestionID: subm.QuestionID,
			UnixMilli:  subm.CreatedAt.UnixMilli(),
			Verdict:    subm.Verdict,
		})
	}
	return row
}

func rowToSession(row *sessionRow) (*Session, error) {
	id, err := uuid.Parse(row.Uuid)
	if err != nil {
		return nil, err
	}
	sess := &Session{
		UUID:               id,
		Title:              row.Title,
		Description:        row.Description,
		CandidateID:        row.CandidateID,
		InterviewerIDs:     row.InterviewerIDs,
		CallID:             row.CallID,
		Status:             row.Status,
		StartAt:            time.UnixMilli(row.StartAtUnix),
		SelectedQuestionID: row.SelectedQuestionID,
		CurrentCode:        row.CurrentCode,
		CurrentLanguage:    row.CurrentLanguage,
		Submitted:          row.Submitted,
		SubmittedCode:      row.SubmittedCode,
		SubmittedLanguage:  row.SubmittedLanguage,
		Version:            row.Version,
	}
	if row.EndAtUnix != nil {
		endAt := time.UnixMilli(*row.EndAtUnix)
		sess.EndAt = &endAt
	}
	for _, subm := range row.Submissions {
		submId, err := uuid.Parse(subm.Uuid)
		if err != nil {
			return nil, err
		}
		sess.Submissions = append(sess.Submissions, Submission{
			UUID:       submId,
			Code:       subm.Code,
			Language:   subm.Language,
			QuestionID: subm.QuestionID,
			CreatedAt:  time.UnixMilli(subm.UnixMilli),
			Verdict:    subm.Verdict,
		})
	}
	return sess, nil
}

func rowsToSessions(rows []sessionRow) ([]Session, error) {
	sessions := make([]Session, 0, len(rows))
	for i := range rows {
		sess, err := rowToSession(&rows[i])
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *sess)
	}
	sortSessionsByStart(sessions)
	return sessions, nil
}
