package cmd

import (
	"github.com/oy3o/ftlprof/report"
	"github.com/spf13/cobra"
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Print a profile as text",
	Long: `Print the unlocks, achievements, scores, statistics and best crew of a
profile.

Example:
  ftlprof dump
  ftlprof dump ~/backup/prof.sav`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e := getEnv(cmd)
		p, err := readProfile(e, e.profilePath(args, 0))
		if err != nil {
			return err
		}
		return report.Render(cmd.OutOrStdout(), p)
	},
}

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Print a profile as YAML",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e := getEnv(cmd)
		p, err := readProfile(e, e.profilePath(args, 0))
		if err != nil {
			return err
		}
		return report.Export(cmd.OutOrStdout(), p)
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(exportCmd)
}
