package judge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codesync/backend/question"
)

func TestExtractInputValues(t *testing.T) {
	twoSumVars := []question.InputVar{
		{Name: "nums", Kind: question.VarKindArray},
		{Name: "target", Kind: question.VarKindInt},
	}

	t.Run("array and int in declaration order", func(t *testing.T) {
		values, err := extractInputValues(
			"nums = [2,7,11,15], target = 9", twoSumVars)
		require.NoError(t, err)
		assert.Equal(t, []string{"[2,7,11,15]", "9"}, values)
	})

	t.Run("declaration order wins over text order", func(t *testing.T) {
		values, err := extractInputValues(
			"target = 6, nums = [3,2,4]", twoSumVars)
		require.NoError(t, err)
		assert.Equal(t, []string{"[3,2,4]", "6"}, values)
	})

	t.Run("negative int", func(t *testing.T) {
		values, err := extractInputValues(
			"x = -121",
			[]question.InputVar{{Name: "x", Kind: question.VarKindInt}})
		require.NoError(t, err)
		assert.Equal(t, []string{"-121"}, values)
	})

	t.Run("quoted string literal", func(t *testing.T) {
		values, err := extractInputValues(
			`s = "hello"`,
			[]question.InputVar{{Name: "s", Kind: question.VarKindString}})
		require.NoError(t, err)
		assert.Equal(t, []string{`"hello"`}, values)
	})

	t.Run("missing variable", func(t *testing.T) {
		_, err := extractInputValues("nums = [1,2]", twoSumVars)
		require.Error(t, err)
		assert.Equal(t, ErrInvalidExampleFormat().ErrorCode(), asSrvcError(t, err).ErrorCode())
	})

	t.Run("unknown variable kind", func(t *testing.T) {
		_, err := extractInputValues("x = 1",
			[]question.InputVar{{Name: "x", Kind: "matrix"}})
		require.Error(t, err)
		assert.Equal(t, ErrInvalidExampleFormat().ErrorCode(), asSrvcError(t, err).ErrorCode())
	})
}

func TestBuildStdin(t *testing.T) {
	assert.Equal(t, "[2,7,11,15]\n9", buildStdin([]string{"[2,7,11,15]", "9"}))
	assert.Equal(t, "", buildStdin(nil))
}
