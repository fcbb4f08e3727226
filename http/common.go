package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/codesync/backend/logger"
)

// parseSessionIdParam parses the sessionId path parameter and scopes
// the request's logger to it. Handlers must use the returned request
// so downstream log lines carry the session id.
func parseSessionIdParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, *http.Request, bool) {
	idStr := chi.URLParam(r, "sessionId")
	id, err := uuid.Parse(idStr)
	if err != nil {
		writeJsonErrorResponse(w,
			"invalid session id",
			http.StatusBadRequest,
			"invalid_session_id")
		return uuid.Nil, r, false
	}
	ctx := logger.WithSessionID(r.Context(), id.String())
	return id, r.WithContext(ctx), true
}
