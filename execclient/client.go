package execclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/codesync/backend/planglist"
)

const (
	DefaultPollInterval = 1 * time.Second
	DefaultMaxAttempts  = 10
)

// Client submits one code+stdin pair to the external execution
// backend and polls until a terminal verdict. It is a pure network
// round-trip wrapper: nothing is persisted locally and no retries
// happen beyond the fixed poll budget.
type Client struct {
	logger *slog.Logger

	httpClient *http.Client
	baseUrl    string
	apiKey     string
	apiHost    string

	pollInterval time.Duration
	maxAttempts  int

	// sleep is swapped out in tests for a fake clock
	sleep func(ctx context.Context, d time.Duration) error
}

// NewClient creates an execution client configured from environment
// variables (JUDGE_API_URL, JUDGE_API_KEY, JUDGE_API_HOST).
func NewClient() *Client {
	baseUrl := os.Getenv("JUDGE_API_URL")
	if baseUrl == "" {
		panic("JUDGE_API_URL not set in .env file")
	}
	return NewCustomClient(
		slog.Default().With("module", "execclient"),
		http.DefaultClient,
		baseUrl,
		os.Getenv("JUDGE_API_KEY"),
		os.Getenv("JUDGE_API_HOST"),
		DefaultPollInterval,
		DefaultMaxAttempts,
	)
}

// NewCustomClient creates an execution client with provided
// dependencies. Poll interval and attempt budget are parameters so
// tests can run the loop against a fake backend without waiting.
func NewCustomClient(
	logger *slog.Logger,
	httpClient *http.Client,
	baseUrl string,
	apiKey string,
	apiHost string,
	pollInterval time.Duration,
	maxAttempts int,
) *Client {
	return &Client{
		logger:       logger,
		httpClient:   httpClient,
		baseUrl:      baseUrl,
		apiKey:       apiKey,
		apiHost:      apiHost,
		pollInterval: pollInterval,
		maxAttempts:  maxAttempts,
		sleep:        sleepWithCtx,
	}
}

// Submit sends the source code to the execution backend and polls for
// a terminal result. The language must be one of the fixed supported
// set; unsupported ids fail before any network call.
func (c *Client) Submit(
	ctx context.Context,
	srcCode string,
	langId string,
	stdin string,
) (Outcome, error) {
	lang, err := planglist.GetProgrammingLanguageById(langId)
	if err != nil {
		return Outcome{}, err
	}

	token, err := c.createSubmission(ctx, srcCode, lang.JudgeID, stdin)
	if err != nil {
		return Outcome{}, err
	}

	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		status, err := c.checkStatus(ctx, token)
		if err != nil {
			return Outcome{}, err
		}

		if status.Status.ID != statusInQueue &&
			status.Status.ID != statusProcessing {
			return Outcome{
				Stdout:        status.Stdout,
				Stderr:        status.Stderr,
				CompileOutput: status.CompileOutput,
				Message:       status.Message,
				StatusID:      status.Status.ID,
				StatusDesc:    status.Status.Description,
			}, nil
		}

		if err := c.sleep(ctx, c.pollInterval); err != nil {
			return Outcome{}, err
		}
	}

	c.logger.Warn("execution did not reach a terminal state",
		"token", token,
		"max_attempts", c.maxAttempts)
	return Outcome{}, ErrJudgingTimeout()
}

func (c *Client) createSubmission(
	ctx context.Context,
	srcCode string,
	judgeLangId int,
	stdin string,
) (string, error) {
	body, err := json.Marshal(createSubmRequest{
		SourceCode: srcCode,
		LanguageID: judgeLangId,
		Stdin:      stdin,
	})
	if err != nil {
		return "", ErrSubmissionFailed().SetDebug(
			fmt.Errorf("failed to marshal request: %w", err))
	}

	url := c.baseUrl + "/submissions?base64_encoded=false&wait=false"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", ErrSubmissionFailed().SetDebug(err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setAuthHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", ErrSubmissionFailed().SetDebug(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return "", ErrSubmissionFailed().SetDebug(fmt.Errorf(
			"backend returned %d: %s", resp.StatusCode, string(respBody)))
	}

	var created createSubmResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", ErrSubmissionFailed().SetDebug(
			fmt.Errorf("failed to decode response: %w", err))
	}
	if created.Token == "" {
		return "", ErrSubmissionFailed().SetDebug(
			fmt.Errorf("backend returned an empty token"))
	}

	return created.Token, nil
}

func (c *Client) checkStatus(
	ctx context.Context,
	token string,
) (*statusResponse, error) {
	url := c.baseUrl + "/submissions/" + token + "?base64_encoded=false"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, ErrStatusCheckFailed().SetDebug(err)
	}
	c.setAuthHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ErrStatusCheckFailed().SetDebug(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, ErrStatusCheckFailed().SetDebug(fmt.Errorf(
			"backend returned %d: %s", resp.StatusCode, string(respBody)))
	}

	var status statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, ErrStatusCheckFailed().SetDebug(
			fmt.Errorf("failed to decode status: %w", err))
	}

	return &status, nil
}

func (c *Client) setAuthHeaders(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("X-RapidAPI-Key", c.apiKey)
	}
	if c.apiHost != "" {
		req.Header.Set("X-RapidAPI-Host", c.apiHost)
	}
}

func sleepWithCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
