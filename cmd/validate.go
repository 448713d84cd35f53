package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"skillcompass/internal/bank"
	"skillcompass/internal/catalog"
	"skillcompass/internal/clusters"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the cluster model and question banks",
	Long: "Checks the static reference data for structural problems: duplicate or\n" +
		"empty ids, malformed likelihood tables, and core skills missing from the\n" +
		"skill catalog.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := clusters.Validate(); err != nil {
			return fmt.Errorf("cluster model: %w", err)
		}
		fmt.Printf("clusters: %d ok\n", clusters.Count())

		if err := bank.Validate(clusters.IDs()); err != nil {
			return fmt.Errorf("question bank: %w", err)
		}
		fmt.Printf("questions: %d stage-1, %d stage-2 ok\n",
			bank.Stage1Size(), len(bank.Stage2()))

		// Every core skill must resolve so summaries can label it.
		resolver := catalog.NewStatic(nil)
		missing := 0
		for _, c := range clusters.All() {
			for _, s := range c.CoreSkills {
				if _, ok := resolver.ResolveSkill(s); !ok {
					fmt.Printf("  unresolved core skill %q (cluster %s)\n", s, c.ID)
					missing++
				}
			}
		}
		if missing > 0 {
			return fmt.Errorf("catalog: %d unresolved core skills", missing)
		}
		fmt.Println("catalog: all core skills resolve")
		return nil
	},
}
