package session

import (
	"net/http"

	"github.com/codesync/backend/srvcerror"
)

const ErrCodeUnauthorized = "unauthorized"

func ErrUnauthorized() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUnauthorized,
		"You are not authorized to modify this session",
	).SetHttpStatusCode(http.StatusForbidden)
}

const ErrCodeSessionNotFound = "session_not_found"

func ErrSessionNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSessionNotFound,
		"Session not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeSubmissionNotFound = "submission_not_found"

func ErrSubmissionNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSubmissionNotFound,
		"No submission exists with that timestamp",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeAmbiguousSubmission = "ambiguous_submission"

func ErrAmbiguousSubmission() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeAmbiguousSubmission,
		"Multiple submissions share that timestamp",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeInvalidStatusTransition = "invalid_status_transition"

func ErrInvalidStatusTransition() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidStatusTransition,
		"Session status can only move forward",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeSessionCompleted = "session_completed"

func ErrSessionCompleted() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSessionCompleted,
		"Session is completed and can no longer be modified",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeWriteConflict = "write_conflict"

func ErrWriteConflict() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeWriteConflict,
		"Session was modified concurrently, please retry",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeInvalidStatus = "invalid_status"

func ErrInvalidStatus() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidStatus,
		"Unknown session status",
	).SetHttpStatusCode(http.StatusBadRequest)
}
