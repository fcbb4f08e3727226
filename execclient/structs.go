package execclient

// Outcome is the terminal result of one code+stdin execution on the
// backend. On success paths at most one of Stdout, Stderr,
// CompileOutput and Message is meaningfully populated; all may be nil
// when the program produced no output at all.
type Outcome struct {
	Stdout        *string `json:"stdout"`
	Stderr        *string `json:"stderr"`
	CompileOutput *string `json:"compile_output"`
	Message       *string `json:"message"`

	StatusID   int    `json:"status_id"`
	StatusDesc string `json:"status_desc"`
}

// Backend status ids that mean the execution has not reached a
// terminal state yet. Anything else terminates the poll loop.
const (
	statusInQueue    = 1
	statusProcessing = 2
)

type createSubmRequest struct {
	SourceCode string `json:"source_code"`
	LanguageID int    `json:"language_id"`
	Stdin      string `json:"stdin"`
}

type createSubmResponse struct {
	Token string `json:"token"`
}

type statusResponse struct {
	Status struct {
		ID          int    `json:"id"`
		Description string `json:"description"`
	} `json:"status"`
	Stdout        *string `json:"stdout"`
	Stderr        *string `json:"stderr"`
	CompileOutput *string `json:"compile_output"`
	Message       *string `json:"message"`
}
