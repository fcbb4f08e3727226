package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/codesync/backend/auth"
	"github.com/codesync/backend/logger"
	"github.com/codesync/backend/session"
)

func (httpserver *HttpServer) getSession(w http.ResponseWriter, r *http.Request) {
	id, r, ok := parseSessionIdParam(w, r)
	if !ok {
		return
	}

	sess, err := httpserver.sessionSrvc.Get(r.Context(), id)
	if err != nil {
		handleJsonSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	writeJsonSuccessResponse(w, mapSession(*sess))
}

func (httpserver *HttpServer) getSessionByCallID(w http.ResponseWriter, r *http.Request) {
	callId := chi.URLParam(r, "callId")

	sess, err := httpserver.sessionSrvc.GetByCallID(r.Context(), callId)
	if err != nil {
		handleJsonSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	writeJsonSuccessResponse(w, mapSession(*sess))
}

func (httpserver *HttpServer) listSessions(w http.ResponseWriter, r *http.Request) {
	if auth.ClaimsFromContext(r.Context()) == nil {
		handleJsonSrvcError(logger.FromContext(r.Context()), w, session.ErrUnauthorized())
		return
	}

	sessions, err := httpserver.sessionSrvc.List(r.Context())
	if err != nil {
		handleJsonSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	writeJsonSuccessResponse(w, mapSessions(sessions))
}

// listMySessions returns the sessions where the authenticated actor
// is the candidate.
func (httpserver *HttpServer) listMySessions(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		handleJsonSrvcError(logger.FromContext(r.Context()), w, session.ErrUnauthorized())
		return
	}

	sessions, err := httpserver.sessionSrvc.ListByCandidate(r.Context(), claims.Subject)
	if err != nil {
		handleJsonSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	writeJsonSuccessResponse(w, mapSessions(sessions))
}
