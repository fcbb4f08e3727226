package question

// Example is one input/expected-output pair used as a test case.
// Input is a semi-structured text description such as
// "nums = [2,7,11,15], target = 9".
type Example struct {
	Input       string `toml:"input"`
	Output      string `toml:"output"`
	Explanation string `toml:"explanation,omitempty"`
}

// Input variable kinds. The kind decides the extraction pattern the
// judge uses to pull the value out of an example's input text.
const (
	VarKindArray  = "array"  // bracketed list, e.g. [2,7,11,15]
	VarKindInt    = "int"    // possibly negative integer literal
	VarKindString = "string" // double-quoted string literal
)

// InputVar declares one named value that every example of a question
// must carry in its input text. Order matters: stdin is built one
// value per line in declaration order, which is the order the starter
// code reads them in.
type InputVar struct {
	Name string `toml:"name"`
	Kind string `toml:"kind"`
}

// Question is read-only reference data; the catalog owns it, nothing
// in this backend ever mutates it.
type Question struct {
	ID          string            `toml:"id"`
	Title       string            `toml:"title"`
	Description string            `toml:"description"`
	Examples    []Example         `toml:"examples"`
	Constraints []string          `toml:"constraints,omitempty"`
	InputVars   []InputVar        `toml:"input_vars"`
	StarterCode map[string]string `toml:"starter_code,omitempty"` // keyed by language id
}
