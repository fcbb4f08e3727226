package question

import (
	"net/http"

	"github.com/codesync/backend/srvcerror"
)

const ErrCodeQuestionNotFound = "question_not_found"

func ErrQuestionNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeQuestionNotFound,
		"Question not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeInvalidCatalogFile = "invalid_catalog_file"

func ErrInvalidCatalogFile() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidCatalogFile,
		"Question catalog file could not be parsed",
	).SetHttpStatusCode(http.StatusBadRequest)
}
