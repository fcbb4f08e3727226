package judge

import (
	"bytes"
	"encoding/json"
	"strings"
)

// CompareOutputs reports whether the actual program output matches
// the expected output of an example. No output never matches, even
// against an empty-equivalent expectation. When both sides parse as
// JSON they are compared by canonical re-serialization, so
// "[0, 1]" and "[0,1]" are equal; otherwise the comparison is exact
// byte equality after trimming surrounding whitespace.
func CompareOutputs(actual *string, expected string) bool {
	if actual == nil {
		return false
	}

	var actualVal, expectedVal any
	actualErr := json.Unmarshal([]byte(*actual), &actualVal)
	expectedErr := json.Unmarshal([]byte(expected), &expectedVal)
	if actualErr == nil && expectedErr == nil {
		actualCanon, err1 := json.Marshal(actualVal)
		expectedCanon, err2 := json.Marshal(expectedVal)
		if err1 == nil && err2 == nil {
			return bytes.Equal(actualCanon, expectedCanon)
		}
	}

	return strings.TrimSpace(*actual) == strings.TrimSpace(expected)
}
