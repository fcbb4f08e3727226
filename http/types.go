package http

import (
	"github.com/codesync/backend/judge"
	"github.com/codesync/backend/planglist"
	"github.com/codesync/backend/question"
	"github.com/codesync/backend/session"
)

// wire types: timestamps cross the API as unix milliseconds, which is
// also the resolution the late-bind verdict attach keys on

type SubmissionView struct {
	Uuid       string        `json:"uuid"`
	Code       string        `json:"code"`
	Language   string        `json:"language"`
	QuestionID string        `json:"question_id"`
	Timestamp  int64         `json:"timestamp"`
	Verdict    *judge.Report `json:"verdict"`
}

type SessionView struct {
	Uuid        string `json:"uuid"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	CandidateID    string   `json:"candidate_id"`
	InterviewerIDs []string `json:"interviewer_ids"`
	CallID         string   `json:"call_id"`

	Status  string `json:"status"`
	StartAt int64  `json:"start_at"`
	EndAt   *int64 `json:"end_at,omitempty"`

	SelectedQuestionID string `json:"selected_question_id,omitempty"`
	CurrentCode        string `json:"current_code"`
	CurrentLanguage    string `json:"current_language"`

	Submitted         bool   `json:"submitted"`
	SubmittedCode     string `json:"submitted_code,omitempty"`
	SubmittedLanguage string `json:"submitted_language,omitempty"`

	Submissions []SubmissionView `json:"submissions"`
}

func mapSubm(subm session.Submission) SubmissionView {
	return SubmissionView{
		Uuid:       subm.UUID.String(),
		Code:       subm.Code,
		Language:   subm.Language,
		QuestionID: subm.QuestionID,
		Timestamp:  subm.CreatedAt.UnixMilli(),
		Verdict:    subm.Verdict,
	}
}

func mapSession(sess session.Session) SessionView {
	view := SessionView{
		Uuid:               sess.UUID.String(),
		Title:              sess.Title,
		Description:        sess.Description,
		CandidateID:        sess.CandidateID,
		InterviewerIDs:     sess.InterviewerIDs,
		CallID:             sess.CallID,
		Status:             sess.Status,
		StartAt:            sess.StartAt.UnixMilli(),
		SelectedQuestionID: sess.SelectedQuestionID,
		CurrentCode:        sess.CurrentCode,
		CurrentLanguage:    sess.CurrentLanguage,
		Submitted:          sess.Submitted,
		SubmittedCode:      sess.SubmittedCode,
		SubmittedLanguage:  sess.SubmittedLanguage,
		Submissions:        []SubmissionView{},
	}
	if sess.EndAt != nil {
		endAt := sess.EndAt.UnixMilli()
		view.EndAt = &endAt
	}
	for _, subm := range sess.Submissions {
		view.Submissions = append(view.Submissions, mapSubm(subm))
	}
	return view
}

func mapSessions(sessions []session.Session) []SessionView {
	views := make([]SessionView, 0, len(sessions))
	for _, sess := range sessions {
		views = append(views, mapSession(sess))
	}
	return views
}

type QuestionView struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Examples    []question.Example `json:"examples"`
	Constraints []string           `json:"constraints,omitempty"`
	StarterCode map[string]string  `json:"starter_code,omitempty"`
}

func mapQuestion(q question.Question) QuestionView {
	return QuestionView{
		ID:          q.ID,
		Title:       q.Title,
		Description: q.Description,
		Examples:    q.Examples,
		Constraints: q.Constraints,
		StarterCode: q.StarterCode,
	}
}

type LanguageView struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	MonacoID string `json:"monaco_id"`
}

func mapLanguage(lang planglist.ProgrammingLanguage) LanguageView {
	return LanguageView{
		ID:       lang.ID,
		FullName: lang.FullName,
		MonacoID: lang.MonacoID,
	}
}
