package practices

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalDoc = `{
  "practices": [
    {
      "id": "version-control",
      "name": "Version Control",
      "type": "root",
      "category": "automation",
      "description": "Keep everything in version control",
      "requirements": [],
      "benefits": ["History"]
    }
  ],
  "dependencies": [],
  "metadata": {
    "source": "test",
    "description": "Minimal document",
    "version": "1.0.0",
    "lastUpdated": "2025-06-30"
  }
}`

func TestParse(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input   string
		wantErr bool
	}{
		"valid document":    {input: minimalDoc, wantErr: false},
		"valid empty object": {input: `{}`, wantErr: false},
		"invalid json":      {input: `{"practices": [`, wantErr: true},
		"empty input":       {input: ``, wantErr: true},
		"plain text":        {input: `not json`, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			doc, err := Parse([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, doc.Raw)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "practices.json")
	require.NoError(t, os.WriteFile(path, []byte(minimalDoc), 0644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Path)
	assert.NotNil(t, doc.Raw)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading practices document")
}

func TestRawDocument_Decode(t *testing.T) {
	t.Parallel()

	raw, err := Parse([]byte(minimalDoc))
	require.NoError(t, err)

	doc, err := raw.Decode()
	require.NoError(t, err)

	require.Len(t, doc.Practices, 1)
	assert.Equal(t, "version-control", doc.Practices[0].ID)
	assert.Equal(t, TypeRoot, doc.Practices[0].Type)
	assert.Equal(t, []string{"History"}, doc.Practices[0].Benefits)
	assert.Empty(t, doc.Dependencies)
	assert.Equal(t, "1.0.0", doc.Metadata.Version)
	assert.Equal(t, "2025-06-30", doc.Metadata.LastUpdated)
}

func TestDocument_IDSet(t *testing.T) {
	t.Parallel()

	doc := &Document{
		Practices: []Practice{{ID: "a"}, {ID: "b"}, {ID: "a"}},
	}

	ids := doc.IDSet()
	assert.Len(t, ids, 2)
	assert.True(t, ids["a"])
	assert.True(t, ids["b"])
	assert.False(t, ids["c"])
}

func TestDefaultCategories(t *testing.T) {
	t.Parallel()

	cats := DefaultCategories()
	assert.Contains(t, cats, "automation")
	assert.Contains(t, cats, "culture")
	assert.Len(t, cats, 5)
}
