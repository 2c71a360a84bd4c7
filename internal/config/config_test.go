package config

import (
	"os"
	"path/filepath"
	"testing"

	"assertkit/introspection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type secret struct {
	ID    int `json:"id"`
	token string
}

func TestParse(t *testing.T) {
	t.Parallel()

	yaml := `
extraction:
  allow_extracting_private_fields: false
  field_matching: [exact, json]
  representation: spew
  cache_size: 16
log:
  level: debug
  file: /tmp/fieldvalues.log
  compress: false
`

	c, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, c)

	require.NotNil(t, c.Extraction.AllowExtractingPrivateFields)
	assert.False(t, *c.Extraction.AllowExtractingPrivateFields)
	assert.Equal(t, []string{"exact", "json"}, c.Extraction.FieldMatching)
	assert.Equal(t, "spew", c.Extraction.Representation)

	lc := c.Logging()
	assert.Equal(t, "debug", lc.Level)
	assert.Equal(t, "/tmp/fieldvalues.log", lc.FilePath)
	assert.False(t, lc.Compress)
	assert.Equal(t, 10, lc.MaxSizeMB)

	opts, err := c.ExtractionOptions()
	require.NoError(t, err)

	fs := introspection.New(opts...)
	assert.False(t, fs.AllowExtractingPrivateFields())

	id, err := introspection.FieldValue[int](fs, "id", secret{ID: 4, token: "x"})
	require.NoError(t, err)
	assert.Equal(t, 4, id)

	_, err = introspection.FieldValue[string](fs, "token", secret{ID: 4, token: "x"})
	assert.ErrorIs(t, err, introspection.ErrFieldNotAccessible)

	// exact and json only: case folding is off
	_, err = introspection.FieldValue[int](fs, "Id", secret{ID: 4})
	assert.ErrorIs(t, err, introspection.ErrFieldNotFound)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	c := Default()
	assert.Equal(t, "standard", c.Extraction.Representation)
	assert.Nil(t, c.Extraction.AllowExtractingPrivateFields)
	assert.Equal(t, "warn", c.Log.Level)
	require.NotNil(t, c.Log.Compress)
	assert.True(t, *c.Log.Compress)

	opts, err := c.ExtractionOptions()
	require.NoError(t, err)
	assert.True(t, introspection.New(opts...).AllowExtractingPrivateFields())
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"malformed":      "extraction: [",
		"representation": "extraction:\n  representation: xml\n",
		"matching":       "extraction:\n  field_matching: [regex]\n",
		"cache size":     "extraction:\n  cache_size: -1\n",
	}

	for name, yaml := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fieldvalues.yaml")

	c := Default()
	data, err := Marshal(c)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, c, loaded)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
