package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/acumen/internal/assessment"
	"github.com/abhisek/acumen/internal/llm"
	"github.com/abhisek/acumen/internal/questiongen"
	"github.com/abhisek/acumen/internal/session"
	"github.com/abhisek/acumen/internal/store"
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	styleDomain  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#14B8A6"))
	styleCorrect = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	styleWrong   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F43F5E"))
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
)

// keepSnapshots bounds how many past sessions stay queryable.
const keepSnapshots = 20

var assessCmd = &cobra.Command{
	Use:   "assess <topic>",
	Short: "Run an adaptive assessment on a topic",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := strings.Join(args, " ")
		mock, _ := cmd.Flags().GetBool("mock")
		numDomains, _ := cmd.Flags().GetInt("domains")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		return runAssessment(cmd.Context(), topic, numDomains, mock, st)
	},
}

func init() {
	assessCmd.Flags().Bool("mock", false, "Run offline with the built-in question generator")
	assessCmd.Flags().IntP("domains", "n", 0, "Number of domains to assess (default 5)")
}

// runAssessment plans the domains and walks them in order, one
// adaptive question loop per domain.
func runAssessment(ctx context.Context, topic string, numDomains int, mock bool, st *store.Store) error {
	events := st.EventRepo()
	cfg := session.DefaultConfig()

	var provider llm.Provider
	var gen questiongen.Generator
	var plans []session.DomainPlan
	var err error

	if mock {
		gen = questiongen.NewMockGenerator()
		if numDomains == 0 {
			numDomains = cfg.DefaultDomains
		}
		plans = session.StaticPlan(topic, numDomains)
	} else {
		provider, err = llm.NewProviderFromEnv(ctx, events)
		if err != nil {
			return fmt.Errorf("no LLM provider available (use --mock to run offline): %w", err)
		}
		gen = questiongen.New(provider, questiongen.DefaultConfig())

		fmt.Println(styleDim.Render("Planning assessment domains..."))
		plans, err = session.NewPlanner(provider, cfg).PlanDomains(ctx, topic, numDomains)
		if err != nil {
			return err
		}
	}

	sess := session.New(topic, plans)

	fmt.Println()
	fmt.Println(styleTitle.Render("Assessment: " + topic))
	for i, p := range plans {
		fmt.Printf("  %d. %s %s\n", i+1, p.Name, styleDim.Render("("+p.Description+")"))
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		idx, more := sess.NextDomain()
		if !more {
			break
		}
		a, err := sess.Domain(idx)
		if err != nil {
			return err
		}
		if err := runDomain(ctx, sess.Topic, a, gen, events, reader); err != nil {
			return err
		}
	}

	return printSummary(ctx, provider, sess, st, cfg)
}

// runDomain drives one domain's question loop until the controller
// declares it complete.
func runDomain(ctx context.Context, topic string, a *assessment.DomainAssessment, gen questiongen.Generator, events store.EventRepo, reader *bufio.Reader) error {
	ctrl, err := assessment.NewController(a, gen, assessment.DefaultConfig())
	if err != nil {
		return err
	}
	ctrl.Start()

	fmt.Println()
	fmt.Println(styleDomain.Render("── Domain: " + a.Domain + " ──"))

	for {
		q, err := ctrl.NextQuestion(ctx)
		if err != nil {
			var genErr *questiongen.GenerationError
			if errors.As(err, &genErr) {
				// Recorded history is intact; skip the turn and retry.
				fmt.Println(styleWrong.Render("question generation failed, retrying: " + genErr.Reason))
				continue
			}
			return err
		}

		attempted, target, _ := ctrl.Progress()
		fmt.Printf("\n%s %s\n", styleDim.Render(fmt.Sprintf("[%d/%d | difficulty %.0f]", attempted+1, target, a.CurrentDifficulty)), q.Prompt)
		for i, opt := range q.Options {
			fmt.Printf("  %c) %s\n", 'a'+i, opt)
		}

		answer, confidence := readAnswer(reader, len(q.Options))
		result, err := ctrl.SubmitAnswer(answer, confidence)
		if err != nil {
			fmt.Println(styleWrong.Render(err.Error()))
			continue
		}

		last := a.History.Responses[len(a.History.Responses)-1]
		if appendErr := events.AppendAnswer(ctx, store.AnswerEventData{
			Topic:        topic,
			Domain:       a.Domain,
			QuestionID:   q.ID,
			KnowledgeTag: q.KnowledgeTag,
			Correct:      result.Correct,
			ResponseTime: last.ResponseTime,
			Confidence:   last.Confidence,
			Difficulty:   result.Difficulty,
		}); appendErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record answer event: %v\n", appendErr)
		}

		if result.Correct {
			fmt.Println(styleCorrect.Render("Correct."))
		} else {
			fmt.Println(styleWrong.Render("Incorrect."))
			fmt.Println(styleDim.Render(result.Explanation))
		}
		fmt.Println(styleDim.Render(fmt.Sprintf("progress %.0f%% | difficulty %.0f", result.Progress, result.Difficulty)))

		if result.DomainComplete {
			fmt.Println()
			fmt.Printf("%s %s\n", styleDomain.Render("Domain finished:"), string(result.FinalStatus))
			return nil
		}
	}
}

// readAnswer prompts until it gets a valid option letter, then asks
// for an optional confidence value.
func readAnswer(reader *bufio.Reader, options int) (int, *float64) {
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return 0, nil
		}
		line = strings.TrimSpace(strings.ToLower(line))
		if len(line) != 1 {
			fmt.Println(styleDim.Render("answer with a single option letter"))
			continue
		}
		idx := int(line[0] - 'a')
		if idx < 0 || idx >= options {
			fmt.Println(styleDim.Render(fmt.Sprintf("answer must be a-%c", 'a'+options-1)))
			continue
		}

		fmt.Print(styleDim.Render("confidence 0-10 (enter to skip): "))
		confLine, err := reader.ReadString('\n')
		if err != nil {
			return idx, nil
		}
		confLine = strings.TrimSpace(confLine)
		if confLine == "" {
			return idx, nil
		}
		v, err := strconv.ParseFloat(confLine, 64)
		if err != nil || v < 0 || v > 10 {
			return idx, nil
		}
		conf := v / 10
		return idx, &conf
	}
}

// printSummary renders the final report, saves a session snapshot, and
// falls back to a local summary when no provider is available.
func printSummary(ctx context.Context, provider llm.Provider, sess *session.Session, st *store.Store, cfg session.Config) error {
	if data, err := json.Marshal(sess); err == nil {
		snapshots := st.SnapshotRepo()
		if saveErr := snapshots.Save(ctx, sess.Topic, data); saveErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to save session snapshot: %v\n", saveErr)
		}
		if pruneErr := snapshots.Prune(ctx, keepSnapshots); pruneErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to prune old snapshots: %v\n", pruneErr)
		}
	}

	var summary *session.Summary
	if provider != nil {
		var err error
		summary, err = session.NewSummarizer(provider, cfg).Summarize(ctx, sess)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: summary generation failed: %v\n", err)
		}
	}
	if summary == nil {
		summary = session.LocalSummary(sess)
	}

	fmt.Println()
	fmt.Println(styleTitle.Render(summary.Title))
	fmt.Printf("Knowledge level: %s\n", summary.KnowledgeLevel)
	fmt.Printf("Overall score: %.1f%% across %d domains\n", summary.OverallScore, summary.DomainsAssessed)
	printList("Strengths", summary.Strengths)
	printList("Areas for improvement", summary.Improvements)
	printList("Recommendations", summary.Recommendations)
	return nil
}

func printList(header string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Println(styleDomain.Render(header + ":"))
	for _, it := range items {
		fmt.Printf("  - %s\n", it)
	}
}
