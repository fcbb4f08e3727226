package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/codesync/backend/judge"
)

// Session lifecycle states. Transitions are monotonic; completed is
// terminal and makes the record read-only.
const (
	StatusScheduled = "scheduled"
	StatusActive    = "active"
	StatusCompleted = "completed"
)

var statusRank = map[string]int{
	StatusScheduled: 0,
	StatusActive:    1,
	StatusCompleted: 2,
}

// Submission is one immutable judged attempt within a session. It is
// created only by Submit; the single allowed late mutation is
// attaching a verdict by exact timestamp match, for deployments that
// judge in a background worker.
type Submission struct {
	UUID       uuid.UUID     `json:"uuid"`
	Code       string        `json:"code"`
	Language   string        `json:"language"`
	QuestionID string        `json:"question_id"`
	CreatedAt  time.Time     `json:"created_at"`
	Verdict    *judge.Report `json:"verdict"`
}

// Session is one live interview instance: the single shared mutable
// record of this system. The current code/language/question triple is
// the authoritative state every connected client converges to. Once
// Submitted is set, SubmittedCode and SubmittedLanguage freeze the
// moment of the first submission while the live fields may keep
// moving under the same role rules.
type Session struct {
	UUID        uuid.UUID `json:"uuid"`
	Title       string    `json:"title"`
	Description string    `json:"description"`

	CandidateID    string   `json:"candidate_id"`
	InterviewerIDs []string `json:"interviewer_ids"`
	CallID         string   `json:"call_id"` // external call transport identifier

	Status  string     `json:"status"`
	StartAt time.Time  `json:"start_at"`
	EndAt   *time.Time `json:"end_at"`

	SelectedQuestionID string `json:"selected_question_id"`
	CurrentCode        string `json:"current_code"`
	CurrentLanguage    string `json:"current_language"`

	Submitted         bool   `json:"submitted"`
	SubmittedCode     string `json:"submitted_code"`
	SubmittedLanguage string `json:"submitted_language"`

	Submissions []Submission `json:"submissions"`

	// Version backs the repo's optimistic read-modify-write; callers
	// never set it.
	Version int64 `json:"-"`
}

func (s *Session) isParticipantCandidate(subject string) bool {
	return subject != "" && subject == s.CandidateID
}

// findSubmissionByTimestamp locates the submission created at exactly
// ts (millisecond resolution, matching the wire format). Duplicate
// timestamps are reported rather than resolved; see AttachVerdict.
func (s *Session) findSubmissionByTimestamp(ts time.Time) (int, error) {
	found := -1
	for i := range s.Submissions {
		if s.Submissions[i].CreatedAt.UnixMilli() == ts.UnixMilli() {
			if found != -1 {
				return -1, ErrAmbiguousSubmission()
			}
			found = i
		}
	}
	if found == -1 {
		return -1, ErrSubmissionNotFound()
	}
	return found, nil
}
