package judge

// Result is the outcome of judging one example. Actual is nil when
// the program produced no stdout; Error carries the compile/runtime
// error text or the execution failure message for that case.
type Result struct {
	Input    string  `json:"input"`
	Expected string  `json:"expected"`
	Actual   *string `json:"actual"`
	Pass     bool    `json:"passed"`
	Error    *string `json:"error"`
}

// Report aggregates per-example results for one judged attempt.
// AllPassed is true iff every result passed; an empty example list
// trivially passes.
type Report struct {
	AllPassed bool     `json:"allPassed"`
	Results   []Result `json:"results"`
}
