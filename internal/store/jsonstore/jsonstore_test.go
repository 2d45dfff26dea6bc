package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/dailytodo/internal/model"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
	assert.Len(t, s.Items, 3)
	assert.Equal(t, []string{"work", "home", "health", "study", "errand"}, s.Tags)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestLoadFile(t *testing.T) {
	path := writeSeed(t, `{
  "items": [
    {"id": 10, "title": "Buy milk", "content": "2%", "tags": ["home"]},
    {"id": 11, "title": "Call mom"}
  ],
  "tags": ["home", "family"]
}`)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []model.Item{
		{ID: 10, Title: "Buy milk", Content: "2%", Tags: []string{"home"}},
		{ID: 11, Title: "Call mom", Tags: []string{}},
	}, s.Items)
	assert.Equal(t, []string{"home", "family"}, s.Tags)
}

func TestLoadFileWithoutTagsKeepsVocabulary(t *testing.T) {
	s, err := Load(writeSeed(t, `{"items": []}`))
	require.NoError(t, err)
	assert.Empty(t, s.Items)
	assert.Equal(t, Defaults().Tags, s.Tags)
}

func TestLoadBadJSON(t *testing.T) {
	_, err := Load(writeSeed(t, `{"items": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json unmarshal")
}

func TestDefaultsAreIndependent(t *testing.T) {
	a := Defaults()
	a.Items[0].Tags[0] = "changed"
	a.Tags[0] = "changed"

	b := Defaults()
	assert.Equal(t, "home", b.Items[0].Tags[0])
	assert.Equal(t, "work", b.Tags[0])
}
