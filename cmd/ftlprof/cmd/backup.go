package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/oy3o/ftlprof"
	"github.com/oy3o/ftlprof/internal/backup"
	"github.com/spf13/cobra"
)

// backupCmd represents the backup command
var backupCmd = &cobra.Command{
	Use:   "backup [file]",
	Short: "Store a compressed snapshot of a profile",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e := getEnv(cmd)
		entry, err := saveBackup(e, e.profilePath(args, 0))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), entry.ID)
		return nil
	},
}

// backupsCmd represents the backups command
var backupsCmd = &cobra.Command{
	Use:   "backups",
	Short: "List stored snapshots, oldest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := getEnv(cmd).backups().List()
		if err != nil {
			return err
		}
		for _, entry := range entries {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", entry.ID, entry.Time.Local().Format(time.DateTime))
		}
		return nil
	},
}

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore <id> [file]",
	Short: "Replace a profile with a stored snapshot",
	Long: `Replace a profile with a stored snapshot. The snapshot must decode as a
profile before anything is written.

Example:
  ftlprof backups
  ftlprof restore 2HqQYbyM0ijEuHVXxCyVsPzlA6P`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e := getEnv(cmd)
		id, path := args[0], e.profilePath(args, 1)

		var data bytes.Buffer
		if err := e.backups().Restore(id, &data); err != nil {
			return err
		}
		if _, err := ftlprof.Decode(bytes.NewReader(data.Bytes())); err != nil {
			return fmt.Errorf("snapshot %s: %w", id, err)
		}

		err := replaceFile(path, func(f *os.File) error {
			_, err := f.Write(data.Bytes())
			return err
		})
		if err != nil {
			return err
		}
		e.log.Info("profile restored", "id", id, "path", path, "bytes", data.Len())
		return nil
	},
}

// saveBackup snapshots the file at path as it is on disk.
func saveBackup(e *env, path string) (backup.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return backup.Entry{}, err
	}
	defer f.Close()

	counter := &countingReader{r: f}
	entry, err := e.backups().Save(counter)
	if err != nil {
		return backup.Entry{}, err
	}
	e.log.Debug("backup stored", "id", entry.ID, "path", path, "bytes", counter.n)
	return entry, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

func init() {
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(backupsCmd)
	rootCmd.AddCommand(restoreCmd)
}
