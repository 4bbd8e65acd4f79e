package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeINI(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ftlprof.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:    "AllKeys",
			content: "dir = /games/ftl\nprofile = ae_prof.sav\nbackup_dir = /var/ftl\nlog_level = debug\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/games/ftl", cfg.Dir)
				assert.Equal(t, "ae_prof.sav", cfg.Profile)
				assert.Equal(t, "/var/ftl", cfg.Backups())
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, filepath.Join("/games/ftl", "ae_prof.sav"), cfg.ProfilePath())
			},
		},
		{
			name:    "PartialKeepsDefaults",
			content: "dir = /games/ftl\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "prof.sav", cfg.Profile)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, filepath.Join("/games/ftl", "backups"), cfg.Backups())
			},
		},
		{
			name:    "UnknownLogLevel",
			content: "log_level = loud\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "info", cfg.LogLevel)
			},
		},
		{
			name:    "AbsoluteProfile",
			content: "dir = /games/ftl\nprofile = /tmp/other.sav\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/tmp/other.sav", cfg.ProfilePath())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeINI(t, tt.content))
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.ini"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(writeINI(t, "[unterminated\n"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "prof.sav", cfg.Profile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, filepath.Join(cfg.Dir, "prof.sav"), cfg.ProfilePath())
	assert.Equal(t, filepath.Join(cfg.Dir, "backups"), cfg.Backups())
}
