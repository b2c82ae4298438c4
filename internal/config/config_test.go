package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("DIALPICK_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "en", cfg.Locale)
	require.Equal(t, DefaultCommonCodes, cfg.CommonCodes)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, filepath.Join(home, ".local", "share", "dialpick", "dialpick.db"), cfg.Database.Path)
	require.Equal(t, 10, cfg.UI.PageSize)
	require.True(t, cfg.Log.Compress)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	path := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
locale = "fr"
common_codes = [" fr", "be", "", "CH"]

[log]
level = "debug"

[ui]
page_size = 25
`), 0o600))
	t.Setenv("DIALPICK_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "fr", cfg.Locale)
	require.Equal(t, []string{"FR", "BE", "CH"}, cfg.CommonCodes)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, 25, cfg.UI.PageSize)
	require.Equal(t, 5, cfg.Log.MaxSizeMB)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DIALPICK_CONFIG", "")
	t.Setenv("DIALPICK_LOCALE", "de")
	t.Setenv("DIALPICK_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "de", cfg.Locale)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	path := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("locale = [unterminated"), 0o600))
	t.Setenv("DIALPICK_CONFIG", path)

	_, err := Load()
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	path := filepath.Join(dir, "nested", "config.toml")
	t.Setenv("DIALPICK_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	cfg.Locale = "ja"
	cfg.CommonCodes = []string{"JP", "KR"}
	require.NoError(t, Save(cfg))
	require.FileExists(t, path)

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, "ja", got.Locale)
	require.Equal(t, []string{"JP", "KR"}, got.CommonCodes)
}

func TestNormalizeCodes(t *testing.T) {
	require.Equal(t, []string{"US", "US", "GB"}, NormalizeCodes([]string{"us", " US ", "", "gb"}))
	require.Empty(t, NormalizeCodes(nil))
}
