package cmd

import (
	"github.com/spf13/cobra"

	"skillcompass/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "skillcompass",
	Short: "Adaptive career-orientation quiz engine",
	Long: "SkillCompass — a two-stage Bayesian adaptive quiz that narrows down a\n" +
		"person's work archetype and skills from a short question session.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SKILLCOMPASS_DB env var)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(simulateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then SKILLCOMPASS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
