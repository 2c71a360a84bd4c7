package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assertkit/comparison"
	"assertkit/description"
	"assertkit/introspection"
	"assertkit/presentation"
)

func init() {
	color.NoColor = true
}

const employees = `
- id: 1
  name:
    first: Yoda
    last: null
  age: 800
- id: 2
  name:
    first: Luke
    last: Skywalker
  age: 26
- null
`

func TestRunExtract(t *testing.T) {
	t.Parallel()

	fs := introspection.New()

	t.Run("nested path over list", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer

		err := runExtract(strings.NewReader(employees), &out, "name.first", fs, presentation.Standard())
		require.NoError(t, err)
		assert.Equal(t, "'Yoda'\n'Luke'\nnull\n", out.String())
	})

	t.Run("missing nested value", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer

		err := runExtract(strings.NewReader(employees), &out, "name.last", fs, presentation.Standard())
		require.NoError(t, err)
		assert.Equal(t, "null\n'Skywalker'\nnull\n", out.String())
	})

	t.Run("single json object", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer

		err := runExtract(strings.NewReader(`{"id": 7, "tags": ["a", "b"]}`), &out, "tags", fs, presentation.Standard())
		require.NoError(t, err)
		assert.Equal(t, "['a', 'b']\n", out.String())
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer

		err := runExtract(strings.NewReader(""), &out, "id", fs, presentation.Standard())
		require.NoError(t, err)
		assert.Empty(t, out.String())
	})

	t.Run("invalid path on empty document", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer

		err := runExtract(strings.NewReader(""), &out, "name..first", fs, presentation.Standard())
		require.Error(t, err)
		assert.ErrorIs(t, err, introspection.ErrInvalidPath)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer

		err := runExtract(strings.NewReader(employees), &out, "salary", fs, presentation.Standard())
		require.Error(t, err)
		assert.ErrorIs(t, err, introspection.ErrFieldNotFound)
		assert.Empty(t, out.String())
	})
}

func TestRunOnce(t *testing.T) {
	t.Parallel()

	t.Run("appears once", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer

		err := runOnce(&out, "aaamotifaaa", "motif", comparison.Standard(), description.Empty())
		require.NoError(t, err)
		assert.Equal(t, "ok\n", out.String())
	})

	t.Run("appears several times", func(t *testing.T) {
		t.Parallel()

		err := runOnce(&bytes.Buffer{}, "aaamotifmotifaabbbmotifaaa", "motif", comparison.Standard(), description.Text("Test"))
		require.Error(t, err)

		var f *failure
		require.ErrorAs(t, err, &f)
		assert.Equal(t,
			"[Test] expecting:\n<'motif'>\n to appear only once in:\n<'aaamotifmotifaabbbmotifaaa'>\n but it appeared 3 times.",
			f.message)
	})

	t.Run("ignoring case", func(t *testing.T) {
		t.Parallel()

		strategy := comparison.ComparatorBased(comparison.CaseInsensitiveStringComparator{})

		err := runOnce(&bytes.Buffer{}, "aaamoDifmoifaabbbmotfaaa", "MOtif", strategy, description.Text("Test"))
		require.Error(t, err)
		assert.True(t, strings.HasSuffix(err.Error(),
			" but it did not appear according to 'CaseInsensitiveStringComparator' comparator."))
	})
}
