package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/acumen/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show accumulated assessment statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		stats, err := st.EventRepo().DomainStats(cmd.Context())
		if err != nil {
			return err
		}
		if len(stats) == 0 {
			fmt.Println(styleDim.Render("No assessments recorded yet. Run `acumen assess <topic>` first."))
			return nil
		}

		fmt.Println(styleTitle.Render("Assessment statistics"))
		lastTopic := ""
		for _, s := range stats {
			if s.Topic != lastTopic {
				fmt.Println()
				fmt.Println(styleDomain.Render(s.Topic))
				lastTopic = s.Topic
			}
			accuracy := 0.0
			if s.Attempted > 0 {
				accuracy = float64(s.Correct) / float64(s.Attempted) * 100
			}
			fmt.Printf("  %-30s %3d answered  %5.1f%% correct  %5.1fs avg  %s\n",
				s.Domain, s.Attempted, accuracy, s.AvgTime,
				styleDim.Render(s.LastAnswered.Format("2006-01-02")))
		}
		return nil
	},
}
