package judge

import (
	"context"
	"log/slog"
	"strings"

	"github.com/codesync/backend/execclient"
	"github.com/codesync/backend/planglist"
	"github.com/codesync/backend/question"
)

// ExecClient submits one code+stdin pair for execution and returns
// its terminal outcome. Satisfied by *execclient.Client; faked in
// tests.
type ExecClient interface {
	Submit(
		ctx context.Context,
		srcCode string,
		langId string,
		stdin string,
	) (execclient.Outcome, error)
}

// Srvc judges submitted code against a question's examples. The
// per-example loop is sequential; a single case's execution failure
// never aborts the batch, so the report always covers every example.
type Srvc struct {
	logger  *slog.Logger
	catalog *question.Catalog
	exec    ExecClient
}

func NewJudgeSrvc(catalog *question.Catalog, exec ExecClient) *Srvc {
	return &Srvc{
		logger:  slog.Default().With("module", "judge"),
		catalog: catalog,
		exec:    exec,
	}
}

// Judge runs the submitted code against every example of the
// question, in order, and aggregates a verdict. Structural errors
// (unknown question, unsupported language, malformed example) are
// raised before any execution begins; execution errors are absorbed
// into the per-case results.
func (s *Srvc) Judge(
	ctx context.Context,
	questionId string,
	langId string,
	code string,
) (Report, error) {
	q, err := s.catalog.Get(questionId)
	if err != nil {
		return Report{}, err
	}

	if _, err := planglist.GetProgrammingLanguageById(langId); err != nil {
		return Report{}, err
	}

	// extract all inputs up front so a malformed example fails the
	// whole request instead of burning backend executions
	stdins := make([]string, len(q.Examples))
	for i, example := range q.Examples {
		values, err := extractInputValues(example.Input, q.InputVars)
		if err != nil {
			return Report{}, err
		}
		stdins[i] = buildStdin(values)
	}

	report := Report{
		AllPassed: true,
		Results:   make([]Result, 0, len(q.Examples)),
	}

	for i, example := range q.Examples {
		result := s.judgeExample(ctx, code, langId, example, stdins[i])
		report.Results = append(report.Results, result)
		report.AllPassed = report.AllPassed && result.Pass
	}

	return report, nil
}

func (s *Srvc) judgeExample(
	ctx context.Context,
	code string,
	langId string,
	example question.Example,
	stdin string,
) Result {
	result := Result{
		Input:    example.Input,
		Expected: example.Output,
	}

	outcome, err := s.exec.Submit(ctx, code, langId, stdin)
	if err != nil {
		errMsg := err.Error()
		s.logger.Warn("execution failed for example",
			"input", example.Input,
			"error", errMsg)
		result.Error = &errMsg
		return result
	}

	switch {
	case outcome.CompileOutput != nil && *outcome.CompileOutput != "":
		result.Error = outcome.CompileOutput
	case outcome.Stderr != nil && *outcome.Stderr != "":
		result.Error = outcome.Stderr
	case outcome.Stdout != nil:
		trimmed := strings.TrimSpace(*outcome.Stdout)
		result.Actual = &trimmed
	case outcome.Message != nil && *outcome.Message != "":
		result.Error = outcome.Message
	}

	result.Pass = result.Error == nil &&
		CompareOutputs(result.Actual, example.Output)
	return result
}
