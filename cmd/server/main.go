package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"

	"github.com/codesync/backend/execclient"
	"github.com/codesync/backend/http"
	"github.com/codesync/backend/judge"
	"github.com/codesync/backend/question"
	"github.com/codesync/backend/session"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		panic("Error loading .env file")
	}

	jwtKey := os.Getenv("JWT_KEY")
	if jwtKey == "" {
		slog.Error("JWT_KEY is not set")
		os.Exit(1)
	}

	catalog := question.NewDefaultCatalog()
	if path := os.Getenv("QUESTION_CATALOG_TOML"); path != "" {
		catalog, err = question.NewCatalogFromTomlFile(path)
		if err != nil {
			slog.Error("failed to load question catalog", "error", err)
			os.Exit(1)
		}
	}

	execClient := execclient.NewClient()
	judgeSrvc := judge.NewJudgeSrvc(catalog, execClient)

	sessionSrvc, err := session.NewSessionSrvc(judgeSrvc, catalog)
	if err != nil {
		slog.Error("failed to create session service", "error", err)
		os.Exit(1)
	}

	if verdictQ := os.Getenv("VERDICT_SQS_URL"); verdictQ != "" {
		cfg, err := config.LoadDefaultConfig(context.Background())
		if err != nil {
			slog.Error("unable to load SDK config", "error", err)
			os.Exit(1)
		}
		go func() {
			err := session.StartReceivingVerdictsFromSqs(
				context.Background(),
				verdictQ,
				sqs.NewFromConfig(cfg),
				sessionSrvc,
				slog.Default().With("module", "verdict-sqs"),
			)
			if err != nil {
				slog.Error("verdict receiver stopped", "error", err)
			}
		}()
	}

	httpServer := http.NewHttpServer(sessionSrvc, judgeSrvc, catalog, []byte(jwtKey))

	address := ":8080"
	log.Printf("Starting server on %s", address)
	err = httpServer.Start(address)
	log.Printf("Server stopped with error: %v", err)
}
