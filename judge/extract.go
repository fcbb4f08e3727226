package judge

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/codesync/backend/question"
)

// Examples carry their inputs as display text, e.g.
// "nums = [2,7,11,15], target = 9". The question declares which named
// variables every example must define; extraction pulls them out by
// name so the order and line structure of the built stdin is fixed
// regardless of how the example text is formatted.

var varKindPatterns = map[string]string{
	question.VarKindArray:  `\[.*?\]`,
	question.VarKindInt:    `-?\d+`,
	question.VarKindString: `"(?:[^"\\]|\\.)*"`,
}

func extractInputValues(
	input string,
	vars []question.InputVar,
) ([]string, error) {
	values := make([]string, 0, len(vars))
	for _, v := range vars {
		pattern, ok := varKindPatterns[v.Kind]
		if !ok {
			return nil, ErrInvalidExampleFormat().SetDebug(
				fmt.Errorf("variable %s has unknown kind %q", v.Name, v.Kind))
		}
		re := regexp.MustCompile(
			regexp.QuoteMeta(v.Name) + `\s*=\s*(` + pattern + `)`)
		match := re.FindStringSubmatch(input)
		if match == nil {
			return nil, ErrInvalidExampleFormat().SetDebug(
				fmt.Errorf("variable %s not found in example input %q", v.Name, input))
		}
		values = append(values, match[1])
	}
	return values, nil
}

// buildStdin renders the extracted values as the standard input the
// starter code reads: one value per line, declaration order.
func buildStdin(values []string) string {
	return strings.Join(values, "\n")
}
