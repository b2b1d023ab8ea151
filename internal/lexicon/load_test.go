package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLexiconFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lexicons.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_OverlaysOnDefaults(t *testing.T) {
	path := writeLexiconFile(t, `{
		"locations": ["Custom Island"],
		"gcc_keywords": ["custom island"]
	}`)

	lex, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Custom Island"}, lex.Locations)
	assert.Equal(t, []string{"custom island"}, lex.GCCKeywords)
	// Sets absent from the file keep their defaults.
	assert.Contains(t, lex.Skills, "Revit")
	assert.Contains(t, lex.BuildingTypes, "Tower")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read lexicon file")
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeLexiconFile(t, "{ not json")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_SchemaRejectsWrongType(t *testing.T) {
	path := writeLexiconFile(t, `{"skills": "Revit"}`)

	_, err := Load(path)
	assert.Error(t, err)
}
