package question

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type catalogTomlFile struct {
	Questions []Question `toml:"questions"`
}

// ParseCatalogToml parses a TOML question catalog of the form
//
//	[[questions]]
//	id = "two-sum"
//	title = "Two Sum"
//	input_vars = [{ name = "nums", kind = "array" }, ...]
//	[[questions.examples]]
//	input = "nums = [2,7,11,15], target = 9"
//	output = "[0,1]"
//
// Questions with an id already present in the defaults replace them;
// new ids extend the catalog.
func ParseCatalogToml(content []byte) ([]Question, error) {
	file := catalogTomlFile{}
	err := toml.Unmarshal(content, &file)
	if err != nil {
		return nil, ErrInvalidCatalogFile().SetDebug(
			fmt.Errorf("failed to unmarshal catalog: %w", err))
	}
	for _, q := range file.Questions {
		if q.ID == "" {
			return nil, ErrInvalidCatalogFile().SetDebug(
				fmt.Errorf("question without an id in catalog file"))
		}
		for _, v := range q.InputVars {
			switch v.Kind {
			case VarKindArray, VarKindInt, VarKindString:
			default:
				return nil, ErrInvalidCatalogFile().SetDebug(
					fmt.Errorf("question %s: unknown input var kind %q", q.ID, v.Kind))
			}
		}
	}
	return file.Questions, nil
}

// NewCatalogFromTomlFile builds a catalog from the defaults overlaid
// with the questions found at path.
func NewCatalogFromTomlFile(path string) (*Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	overlay, err := ParseCatalogToml(content)
	if err != nil {
		return nil, err
	}

	merged := make([]Question, len(defaultQuestions))
	copy(merged, defaultQuestions)
	index := make(map[string]int, len(merged))
	for i, q := range merged {
		index[q.ID] = i
	}
	for _, q := range overlay {
		if i, ok := index[q.ID]; ok {
			merged[i] = q
			continue
		}
		index[q.ID] = len(merged)
		merged = append(merged, q)
	}
	return NewCatalog(merged), nil
}
