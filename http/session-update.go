package http

import (
	"encoding/json"
	"net/http"

	"github.com/codesync/backend/auth"
	"github.com/codesync/backend/logger"
)

func (httpserver *HttpServer) selectQuestion(w http.ResponseWriter, r *http.Request) {
	id, r, ok := parseSessionIdParam(w, r)
	if !ok {
		return
	}

	type selectQuestionRequest struct {
		QuestionID string `json:"question_id"`
	}
	var request selectQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	sess, err := httpserver.sessionSrvc.SelectQuestion(r.Context(), id,
		request.QuestionID, auth.ClaimsFromContext(r.Context()))
	if err != nil {
		handleJsonSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	writeJsonSuccessResponse(w, mapSession(*sess))
}

func (httpserver *HttpServer) updateCode(w http.ResponseWriter, r *http.Request) {
	id, r, ok := parseSessionIdParam(w, r)
	if !ok {
		return
	}

	type updateCodeRequest struct {
		Code string `json:"code"`
	}
	var request updateCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	sess, err := httpserver.sessionSrvc.UpdateCode(r.Context(), id,
		request.Code, auth.ClaimsFromContext(r.Context()))
	if err != nil {
		handleJsonSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	writeJsonSuccessResponse(w, mapSession(*sess))
}

func (httpserver *HttpServer) updateLanguage(w http.ResponseWriter, r *http.Request) {
	id, r, ok := parseSessionIdParam(w, r)
	if !ok {
		return
	}

	type updateLanguageRequest struct {
		Language string `json:"language"`
	}
	var request updateLanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	sess, err := httpserver.sessionSrvc.UpdateLanguage(r.Context(), id,
		request.Language, auth.ClaimsFromContext(r.Context()))
	if err != nil {
		handleJsonSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	writeJsonSuccessResponse(w, mapSession(*sess))
}

func (httpserver *HttpServer) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, r, ok := parseSessionIdParam(w, r)
	if !ok {
		return
	}

	type updateStatusRequest struct {
		Status string `json:"status"`
	}
	var request updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	sess, err := httpserver.sessionSrvc.UpdateStatus(r.Context(), id,
		request.Status, auth.ClaimsFromContext(r.Context()))
	if err != nil {
		handleJsonSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	writeJsonSuccessResponse(w, mapSession(*sess))
}
