package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/oy3o/ftlprof"
	"github.com/oy3o/ftlprof/internal/backup"
	"github.com/oy3o/ftlprof/internal/config"
	"github.com/spf13/cobra"
)

type envKey struct{}

// env is what every subcommand needs, built once by the root command.
type env struct {
	cfg *config.Config
	log *slog.Logger
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ftlprof",
	Short: "Inspect and rewrite FTL profile saves",
	Long: `ftlprof reads the FTL: Faster Than Light profile save (prof.sav),
prints its achievements, unlocks, scores and statistics, and can rewrite,
back up and restore it.

Settings come from ftlprof.ini (keys dir, profile, backup_dir, log_level);
flags override the file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if f := cmd.Flags().Lookup("dir"); f.Changed {
			cfg.Dir = f.Value.String()
		}
		if f := cmd.Flags().Lookup("profile"); f.Changed {
			cfg.Profile = f.Value.String()
		}
		if f := cmd.Flags().Lookup("log-level"); f.Changed {
			cfg.LogLevel = f.Value.String()
		}

		var level slog.Level
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

		cmd.SetContext(context.WithValue(cmd.Context(), envKey{}, &env{cfg: cfg, log: logger}))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultFile, "INI settings file")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "FTL save directory")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "profile file name inside the save directory, or a path")
	rootCmd.PersistentFlags().String("log-level", "", "debug, info, warn or error")
}

func getEnv(cmd *cobra.Command) *env {
	return cmd.Context().Value(envKey{}).(*env)
}

// profilePath is the optional file argument at index i, or the configured profile.
func (e *env) profilePath(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}
	return e.cfg.ProfilePath()
}

func (e *env) backups() *backup.Store {
	return backup.New(e.cfg.Backups())
}

func readProfile(e *env, path string) (*ftlprof.Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := ftlprof.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	e.log.Debug("profile decoded", "path", path, "version", p.Version, "bytes", p.Size())
	return p, nil
}

// replaceFile writes a new version of path through a temporary file in the
// same directory, so a failed write never leaves a half-written profile. An
// existing file keeps its permission bits; a new one gets 0644.
func replaceFile(path string, write func(f *os.File) error) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".ftlprof-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if err := tmp.Chmod(mode); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := write(tmp); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return os.Rename(tmp.Name(), path)
}
