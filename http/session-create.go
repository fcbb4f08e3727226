package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/codesync/backend/auth"
	"github.com/codesync/backend/logger"
	"github.com/codesync/backend/session"
)

func (httpserver *HttpServer) createSession(w http.ResponseWriter, r *http.Request) {
	type createSessionRequest struct {
		Title          string   `json:"title"`
		Description    string   `json:"description"`
		CandidateID    string   `json:"candidate_id"`
		InterviewerIDs []string `json:"interviewer_ids"`
		CallID         string   `json:"call_id"`
		StartAt        int64    `json:"start_at"` // unix milliseconds, optional
		Status         string   `json:"status"`
	}

	var request createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	params := session.CreateSessionParams{
		Title:          request.Title,
		Description:    request.Description,
		CandidateID:    request.CandidateID,
		InterviewerIDs: request.InterviewerIDs,
		CallID:         request.CallID,
		Status:         request.Status,
	}
	if request.StartAt != 0 {
		params.StartAt = time.UnixMilli(request.StartAt)
	}

	sess, err := httpserver.sessionSrvc.Create(r.Context(), params,
		auth.ClaimsFromContext(r.Context()))
	if err != nil {
		handleJsonSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	writeJsonSuccessResponse(w, mapSession(*sess))
}
