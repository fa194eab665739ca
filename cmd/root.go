package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/acumen/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "acumen",
	Short: "Adaptive knowledge assessment in the terminal",
	Long: "Acumen tests your knowledge of any topic across several domains,\n" +
		"adapting question difficulty to your performance in real time.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ACUMEN_DB env var)")

	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using the --db flag first,
// then the ACUMEN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
