package question

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codesync/backend/planglist"
	"github.com/codesync/backend/srvcerror"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := NewDefaultCatalog()

	t.Run("get known question", func(t *testing.T) {
		q, err := catalog.Get("two-sum")
		require.NoError(t, err)
		assert.Equal(t, "Two Sum", q.Title)
		require.Len(t, q.InputVars, 2)
		assert.Equal(t, "nums", q.InputVars[0].Name)
		assert.Equal(t, VarKindArray, q.InputVars[0].Kind)
		assert.NotEmpty(t, q.Examples)
	})

	t.Run("get unknown question", func(t *testing.T) {
		_, err := catalog.Get("no-such-question")
		require.Error(t, err)
		var srvcErr *srvcerror.Error
		require.ErrorAs(t, err, &srvcErr)
		assert.Equal(t, ErrCodeQuestionNotFound, srvcErr.ErrorCode())
	})

	t.Run("list preserves order", func(t *testing.T) {
		questions := catalog.List()
		require.NotEmpty(t, questions)
		assert.Equal(t, "two-sum", questions[0].ID)
	})

	t.Run("every question has starter code for every language", func(t *testing.T) {
		for _, q := range catalog.List() {
			for _, lang := range planglist.ListProgrammingLanguages() {
				assert.Contains(t, q.StarterCode, lang.ID,
					"question %s misses starter code for %s", q.ID, lang.ID)
			}
		}
	})

	t.Run("declared input vars appear in every example", func(t *testing.T) {
		for _, q := range catalog.List() {
			for _, example := range q.Examples {
				for _, v := range q.InputVars {
					assert.Contains(t, example.Input, v.Name+" =",
						"question %s example %q misses variable %s", q.ID, example.Input, v.Name)
				}
			}
		}
	})
}

const testCatalogToml = `
[[questions]]
id = "two-sum"
title = "Two Sum (rewritten)"
description = "Overrides the built-in question."
input_vars = [{ name = "nums", kind = "array" }, { name = "target", kind = "int" }]

[[questions.examples]]
input = "nums = [1,2], target = 3"
output = "[0,1]"

[[questions]]
id = "fizz-buzz"
title = "Fizz Buzz"
description = "A brand new question."
input_vars = [{ name = "n", kind = "int" }]

[[questions.examples]]
input = "n = 3"
output = "Fizz"
`

func TestParseCatalogToml(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		questions, err := ParseCatalogToml([]byte(testCatalogToml))
		require.NoError(t, err)
		require.Len(t, questions, 2)
		assert.Equal(t, "two-sum", questions[0].ID)
		assert.Equal(t, "fizz-buzz", questions[1].ID)
		require.Len(t, questions[1].Examples, 1)
		assert.Equal(t, "n = 3", questions[1].Examples[0].Input)
	})

	t.Run("not toml", func(t *testing.T) {
		_, err := ParseCatalogToml([]byte("{not toml"))
		requireCatalogFileError(t, err)
	})

	t.Run("question without id", func(t *testing.T) {
		_, err := ParseCatalogToml([]byte("[[questions]]\ntitle = \"No ID\"\n"))
		requireCatalogFileError(t, err)
	})

	t.Run("unknown input var kind", func(t *testing.T) {
		_, err := ParseCatalogToml([]byte(`
[[questions]]
id = "bad"
input_vars = [{ name = "m", kind = "matrix" }]
`))
		requireCatalogFileError(t, err)
	})
}

func requireCatalogFileError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var srvcErr *srvcerror.Error
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, ErrCodeInvalidCatalogFile, srvcErr.ErrorCode())
}

func TestNewCatalogFromTomlFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte(testCatalogToml), 0644))

	catalog, err := NewCatalogFromTomlFile(path)
	require.NoError(t, err)

	// overlay replaces the built-in question with the same id
	q, err := catalog.Get("two-sum")
	require.NoError(t, err)
	assert.Equal(t, "Two Sum (rewritten)", q.Title)
	require.Len(t, q.Examples, 1)

	// new ids extend the catalog, defaults stay available
	_, err = catalog.Get("fizz-buzz")
	require.NoError(t, err)
	_, err = catalog.Get("reverse-string")
	require.NoError(t, err)

	assert.Len(t, catalog.List(), len(NewDefaultCatalog().List())+1)

	_, err = NewCatalogFromTomlFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
