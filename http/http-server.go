package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"

	"github.com/codesync/backend/auth"
	"github.com/codesync/backend/judge"
	"github.com/codesync/backend/question"
	"github.com/codesync/backend/session"
)

type HttpServer struct {
	sessionSrvc *session.SessionSrvc
	judgeSrvc   *judge.Srvc
	questions   *question.Catalog
	router      *chi.Mux
}

func NewHttpServer(
	sessionSrvc *session.SessionSrvc,
	judgeSrvc *judge.Srvc,
	questions *question.Catalog,
	jwtKey []byte,
) *HttpServer {
	router := chi.NewRouter()

	logger := httplog.NewLogger("codesync", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		RequestHeaders:   true,
		MessageFieldName: "message",
		Tags: map[string]string{
			"env": "dev",
		},
	})

	router.Use(httplog.RequestLogger(logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           3000,
	}))

	router.Use(auth.GetJwtAuthMiddleware(jwtKey))

	server := &HttpServer{
		sessionSrvc: sessionSrvc,
		judgeSrvc:   judgeSrvc,
		questions:   questions,
		router:      router,
	}

	server.routes()

	return server
}

func (httpserver *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, httpserver.router)
}

func (httpserver *HttpServer) Router() http.Handler {
	return httpserver.router
}

func (httpserver *HttpServer) routes() {
	r := httpserver.router
	r.Post("/sessions", httpserver.createSession)
	r.Get("/sessions", httpserver.listSessions)
	r.Get("/sessions/my", httpserver.listMySessions)
	r.Get("/sessions/call/{callId}", httpserver.getSessionByCallID)
	r.Get("/sessions/{sessionId}", httpserver.getSession)
	r.Get("/sessions/{sessionId}/updates", httpserver.listenToSessionUpdates)
	r.Patch("/sessions/{sessionId}/question", httpserver.selectQuestion)
	r.Patch("/sessions/{sessionId}/code", httpserver.updateCode)
	r.Patch("/sessions/{sessionId}/language", httpserver.updateLanguage)
	r.Patch("/sessions/{sessionId}/status", httpserver.updateStatus)
	r.Post("/sessions/{sessionId}/submit", httpserver.submitSession)
	r.Post("/sessions/{sessionId}/verdict", httpserver.attachVerdict)
	r.Post("/judge/run", httpserver.runJudge)
	r.Get("/questions", httpserver.listQuestions)
	r.Get("/questions/{questionId}", httpserver.getQuestion)
	r.Get("/languages", httpserver.listLanguages)
}
