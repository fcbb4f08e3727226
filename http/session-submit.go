package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/codesync/backend/auth"
	"github.com/codesync/backend/judge"
	"github.com/codesync/backend/logger"
)

func (httpserver *HttpServer) submitSession(w http.ResponseWriter, r *http.Request) {
	id, r, ok := parseSessionIdParam(w, r)
	if !ok {
		return
	}

	sess, err := httpserver.sessionSrvc.Submit(r.Context(), id,
		auth.ClaimsFromContext(r.Context()))
	if err != nil {
		handleJsonSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	writeJsonSuccessResponse(w, mapSession(*sess))
}

// attachVerdict late-binds a verdict to an already-recorded
// submission, identified by its creation timestamp. Used when judging
// runs in a background worker instead of inline with submit.
func (httpserver *HttpServer) attachVerdict(w http.ResponseWriter, r *http.Request) {
	id, r, ok := parseSessionIdParam(w, r)
	if !ok {
		return
	}

	type attachVerdictRequest struct {
		Timestamp int64        `json:"timestamp"` // unix milliseconds
		Verdict   judge.Report `json:"verdict"`
	}
	var request attachVerdictRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	sess, err := httpserver.sessionSrvc.AttachVerdict(r.Context(), id,
		time.UnixMilli(request.Timestamp), request.Verdict)
	if err != nil {
		handleJsonSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	writeJsonSuccessResponse(w, mapSession(*sess))
}
