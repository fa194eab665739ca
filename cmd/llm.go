package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/acumen/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM request history and token usage",
}

var llmUsageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show token usage grouped by request purpose",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		usage, err := st.EventRepo().LLMUsageByPurpose(cmd.Context())
		if err != nil {
			return err
		}
		if len(usage) == 0 {
			fmt.Println(styleDim.Render("No LLM requests recorded yet."))
			return nil
		}

		fmt.Println(styleTitle.Render("LLM usage by purpose"))
		for _, u := range usage {
			fmt.Printf("  %-16s %4d calls  %8d in  %8d out  %6dms avg\n",
				u.Purpose, u.Calls, u.InputTokens, u.OutputTokens, u.AvgLatencyMs)
		}
		return nil
	},
}

var llmLogCmd = &cobra.Command{
	Use:   "log",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		events, err := st.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Println(styleDim.Render("No LLM requests recorded yet."))
			return nil
		}

		for _, e := range events {
			status := styleCorrect.Render("ok")
			if !e.Success {
				status = styleWrong.Render("err: " + e.ErrorMessage)
			}
			fmt.Printf("%s  %-10s %-24s %-14s %5d+%-5d tok  %5dms  %s\n",
				styleDim.Render(e.Timestamp.Format("2006-01-02 15:04:05")),
				e.Provider, e.Model, e.Purpose,
				e.InputTokens, e.OutputTokens, e.LatencyMs, status)
		}
		return nil
	},
}

func init() {
	llmLogCmd.Flags().Int("limit", 20, "Maximum number of requests to show")
	llmCmd.AddCommand(llmUsageCmd)
	llmCmd.AddCommand(llmLogCmd)
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
