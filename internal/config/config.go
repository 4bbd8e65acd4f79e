// Package config loads the ftlprof settings from an INI file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// DefaultFile is the INI file read when no --config flag is given.
const DefaultFile = "ftlprof.ini"

const (
	defaultProfile  = "prof.sav"
	defaultLogLevel = "info"
)

// Config holds the resolved settings. All keys live in the default section.
type Config struct {
	Dir       string // save directory of the game
	Profile   string // profile file name, or an absolute path
	BackupDir string
	LogLevel  string
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	dir := "."
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".local", "share", "FasterThanLight")
	}
	return &Config{
		Dir:      dir,
		Profile:  defaultProfile,
		LogLevel: defaultLogLevel,
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	file, err := ini.LooseLoad(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	// default section can be represented as empty string
	sec := file.Section("")
	cfg.Dir = sec.Key("dir").MustString(cfg.Dir)
	cfg.Profile = sec.Key("profile").MustString(cfg.Profile)
	cfg.BackupDir = sec.Key("backup_dir").String()
	cfg.LogLevel = sec.Key("log_level").In(cfg.LogLevel, []string{"debug", "info", "warn", "error"})
	return cfg, nil
}

// ProfilePath is the profile file to operate on.
func (c *Config) ProfilePath() string {
	if filepath.IsAbs(c.Profile) {
		return c.Profile
	}
	return filepath.Join(c.Dir, c.Profile)
}

// Backups is the directory holding snapshots, <dir>/backups unless set.
func (c *Config) Backups() string {
	if c.BackupDir != "" {
		return c.BackupDir
	}
	return filepath.Join(c.Dir, "backups")
}
