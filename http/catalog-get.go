package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/codesync/backend/logger"
	"github.com/codesync/backend/planglist"
)

func (httpserver *HttpServer) listQuestions(w http.ResponseWriter, r *http.Request) {
	questions := httpserver.questions.List()
	views := make([]QuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, mapQuestion(q))
	}
	writeJsonSuccessResponse(w, views)
}

func (httpserver *HttpServer) getQuestion(w http.ResponseWriter, r *http.Request) {
	questionId := chi.URLParam(r, "questionId")
	q, err := httpserver.questions.Get(questionId)
	if err != nil {
		handleJsonSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}
	writeJsonSuccessResponse(w, mapQuestion(q))
}

func (httpserver *HttpServer) listLanguages(w http.ResponseWriter, r *http.Request) {
	languages := planglist.ListProgrammingLanguages()
	views := make([]LanguageView, 0, len(languages))
	for _, lang := range languages {
		views = append(views, mapLanguage(lang))
	}
	writeJsonSuccessResponse(w, views)
}
