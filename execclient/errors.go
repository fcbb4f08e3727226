package execclient

import (
	"net/http"

	"github.com/codesync/backend/srvcerror"
)

const ErrCodeSubmissionFailed = "submission_failed"

func ErrSubmissionFailed() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSubmissionFailed,
		"Failed to create execution on the judging backend",
	).SetHttpStatusCode(http.StatusBadGateway)
}

const ErrCodeStatusCheckFailed = "status_check_failed"

func ErrStatusCheckFailed() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeStatusCheckFailed,
		"Failed to check execution status on the judging backend",
	).SetHttpStatusCode(http.StatusBadGateway)
}

const ErrCodeJudgingTimeout = "judging_timeout"

func ErrJudgingTimeout() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeJudgingTimeout,
		"Timed out waiting for the judging backend",
	).SetHttpStatusCode(http.StatusGatewayTimeout)
}
