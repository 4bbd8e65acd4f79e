package cmd

import (
	"os"

	"github.com/oy3o/ftlprof"
	"github.com/spf13/cobra"
)

// rewriteCmd represents the rewrite command
var rewriteCmd = &cobra.Command{
	Use:   "rewrite [file]",
	Short: "Decode and re-encode a profile",
	Long: `Decode a profile and write it back in the current format (version 4).
Without --out the file is replaced in place after a backup is stored.

Example:
  ftlprof rewrite --out /tmp/prof.sav
  ftlprof rewrite`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e := getEnv(cmd)
		in := e.profilePath(args, 0)
		out, _ := cmd.Flags().GetString("out")

		p, err := readProfile(e, in)
		if err != nil {
			return err
		}

		if out == "" {
			out = in
			entry, err := saveBackup(e, in)
			if err != nil {
				return err
			}
			e.log.Info("backup stored before rewrite", "id", entry.ID, "path", entry.Path)
		}

		err = replaceFile(out, func(f *os.File) error { return ftlprof.Encode(f, p) })
		if err != nil {
			return err
		}
		e.log.Info("profile rewritten", "path", out, "version", ftlprof.ProfileVersion, "bytes", p.Size())
		return nil
	},
}

func init() {
	rewriteCmd.Flags().StringP("out", "o", "", "write to this file instead of replacing the input")
	rootCmd.AddCommand(rewriteCmd)
}
