package http

import (
	"encoding/json"
	"net/http"

	"github.com/codesync/backend/logger"
)

// runJudge is the "test my code" action: it judges code against a
// question's examples without touching any session record.
func (httpserver *HttpServer) runJudge(w http.ResponseWriter, r *http.Request) {
	type runJudgeRequest struct {
		QuestionID string `json:"question_id"`
		Language   string `json:"language"`
		Code       string `json:"code"`
	}

	var request runJudgeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	report, err := httpserver.judgeSrvc.Judge(r.Context(),
		request.QuestionID, request.Language, request.Code)
	if err != nil {
		handleJsonSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	writeJsonSuccessResponse(w, report)
}
