package judge

import (
	"net/http"

	"github.com/codesync/backend/srvcerror"
)

const ErrCodeInvalidExampleFormat = "invalid_example_format"

func ErrInvalidExampleFormat() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidExampleFormat,
		"Question example has an invalid input format",
	).SetHttpStatusCode(http.StatusBadRequest)
}
