package planglist

import (
	"net/http"

	"github.com/codesync/backend/srvcerror"
)

const ErrCodeUnsupportedLanguage = "unsupported_language"

func ErrUnsupportedLanguage() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUnsupportedLanguage,
		"Unsupported programming language",
	).SetHttpStatusCode(http.StatusBadRequest)
}
