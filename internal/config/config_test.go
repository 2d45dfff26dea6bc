package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default("/tmp/seed.json")

	assert.Equal(t, "/tmp/seed.json", cfg.Data.SeedPath)
	assert.Equal(t, "random", cfg.Board.IDStrategy)
	assert.False(t, cfg.Form.ClearDraftOnCancel)
	assert.Equal(t, 50*time.Millisecond, cfg.ScrollDelay())
	assert.Equal(t, "classic", cfg.UI.Theme)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	defaults := Default("")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"), defaults)
	require.NoError(t, err)
	assert.Equal(t, defaults, cfg)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[data]
seed_path = "/custom/seed.json"

[board]
id_strategy = "counter"

[form]
clear_draft_on_cancel = true
scroll_delay_ms = 120

[ui]
theme = "neon"

[logging]
level = "debug"
file = "/tmp/dailytodo.log"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, Default(""))
	require.NoError(t, err)
	assert.Equal(t, "/custom/seed.json", cfg.Data.SeedPath)
	assert.Equal(t, "counter", cfg.Board.IDStrategy)
	assert.True(t, cfg.Form.ClearDraftOnCancel)
	assert.Equal(t, 120*time.Millisecond, cfg.ScrollDelay())
	assert.Equal(t, "neon", cfg.UI.Theme)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/dailytodo.log", cfg.Logging.File)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"mono\"\n"), 0o644))

	cfg, err := Load(path, Default("/seed.json"))
	require.NoError(t, err)
	assert.Equal(t, "mono", cfg.UI.Theme)
	assert.Equal(t, "/seed.json", cfg.Data.SeedPath)
	assert.Equal(t, "random", cfg.Board.IDStrategy)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"id strategy": "[board]\nid_strategy = \"uuid\"\n",
		"theme":       "[ui]\ntheme = \"pink\"\n",
		"level":       "[logging]\nlevel = \"loud\"\n",
		"delay":       "[form]\nscroll_delay_ms = -1\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			_, err := Load(path, Default(""))
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui\n"), 0o644))

	_, err := Load(path, Default(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode toml")
}

func TestWriteThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	want := Default("/seed.json")
	want.UI.Theme = "mono"

	require.NoError(t, Write(path, want))
	got, err := Load(path, Default(""))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
