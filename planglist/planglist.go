package planglist

// ProgrammingLanguage describes one member of the fixed set of
// languages the execution backend can run. JudgeID is the numeric
// language identifier the backend expects; MonacoID is what editor
// clients use for syntax highlighting.
type ProgrammingLanguage struct {
	ID       string // short id used throughout the API, e.g. "python"
	FullName string // user-friendly display name
	JudgeID  int    // execution backend language identifier
	MonacoID string // editor language id
}

// The set is fixed. Supporting a new language requires a starter-code
// entry on every question and a judge-side runtime, so this is not
// runtime-configurable.
var languages = []ProgrammingLanguage{
	{
		ID:       "javascript",
		FullName: "JavaScript (Node.js 18.15.0)",
		JudgeID:  93,
		MonacoID: "javascript",
	},
	{
		ID:       "python",
		FullName: "Python (3.8.1)",
		JudgeID:  71,
		MonacoID: "python",
	},
	{
		ID:       "java",
		FullName: "Java (OpenJDK 13.0.1)",
		JudgeID:  62,
		MonacoID: "java",
	},
}

func ListProgrammingLanguages() []ProgrammingLanguage {
	res := make([]ProgrammingLanguage, len(languages))
	copy(res, languages)
	return res
}

func GetProgrammingLanguageById(id string) (ProgrammingLanguage, error) {
	for _, lang := range languages {
		if lang.ID == id {
			return lang, nil
		}
	}
	return ProgrammingLanguage{}, ErrUnsupportedLanguage()
}
