package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"skillcompass/internal/bank"
	"skillcompass/internal/catalog"
	"skillcompass/internal/engine"
	"skillcompass/internal/llm"
	"skillcompass/internal/scenario"
	"skillcompass/internal/store"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a scripted quiz session end to end",
	Long: "Plays a full session end to end: a persona answers every question,\n" +
		"scenario injection and free-text analysis run through the selected\n" +
		"collaborator backend (a deterministic mock by default), state is\n" +
		"persisted with optimistic versioning, and the final summary is printed.",
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().String("persona", "tech-solver", "Cluster the simulated user leans toward (see 'validate' for ids)")
	simulateCmd.Flags().String("provider", "mock", "Collaborator backend: mock, anthropic, openai or gemini (keys via SKILLCOMPASS_* env)")
	simulateCmd.Flags().Int64("seed", 1, "Random seed for target-skill choice")
	simulateCmd.Flags().Bool("verbose", false, "Log engine internals")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	persona, _ := cmd.Flags().GetString("persona")
	seed, _ := cmd.Flags().GetInt64("seed")
	verbose, _ := cmd.Flags().GetBool("verbose")

	log := zap.NewNop()
	if verbose {
		var err error
		if log, err = zap.NewDevelopment(); err != nil {
			return err
		}
		defer log.Sync()
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()
	provider, err := buildProvider(ctx, cmd, st, log)
	if err != nil {
		return err
	}
	resolver := catalog.NewStatic(nil)
	inj := scenario.New(provider, resolver, scenario.Config{},
		scenario.WithRand(rand.New(rand.NewSource(seed))),
		scenario.WithLogger(log))

	eng := engine.New(engine.DefaultConfig(),
		engine.WithInjector(inj),
		engine.WithSuggester(scenario.NewSuggester(provider, 0, log)),
		engine.WithLogger(log))

	session, q := eng.InitSession(ctx)
	sessions := st.Sessions()
	var version int64

	if err := sessions.Save(ctx, session, version); err != nil {
		return err
	}
	version++

	for q != nil {
		ans := personaAnswer(*q, persona)
		fmt.Printf("[stage %d] %s\n", q.Stage, q.Prompt)
		fmt.Printf("  -> %s\n", answerLabel(*q, ans))

		res, err := eng.SubmitAnswer(ctx, session, q.ID, ans)
		if err != nil {
			return err
		}
		if err := sessions.Save(ctx, session, version); err != nil {
			return err
		}
		version++
		q = res.NextQuestion
	}

	printSummary(eng.Summarize(ctx, session))

	recs, err := st.Events().RecentRequests(ctx, 50)
	if err != nil {
		return err
	}
	fmt.Printf("\ncollaborator calls: %d\n", len(recs))
	for _, r := range recs {
		fmt.Printf("  %-18s %s ok=%v %dms\n", r.Purpose, r.Model, r.Success, r.LatencyMs)
	}
	return nil
}

// buildProvider selects the collaborator backend: the canned
// simProvider by default, or a real adapter configured from the
// environment. Both record their calls to the store's event log.
func buildProvider(ctx context.Context, cmd *cobra.Command, st *store.Store, log *zap.Logger) (llm.Provider, error) {
	name, _ := cmd.Flags().GetString("provider")
	if name == "" || name == "mock" {
		return llm.WithLogging(&simProvider{}, st.Events(), log), nil
	}

	cfg := llm.ConfigFromEnv()
	cfg.Provider = name
	return llm.NewProvider(ctx, cfg, st.Events(), log)
}

// personaAnswer picks the option that most favors the persona's
// cluster, or a canned free-text reply for scenario questions.
func personaAnswer(q bank.Question, persona string) engine.Answer {
	if !q.Kind.HasOptions() {
		return engine.Answer{Text: "I would first ask everyone involved what they saw, " +
			"then try the most likely fix myself and write down what worked."}
	}

	best := q.Options[0]
	for _, o := range q.Options[1:] {
		if o.ClusterLikelihoods[persona] > best.ClusterLikelihoods[persona] {
			best = o
		}
	}
	return engine.Answer{Values: []string{best.Value}}
}

func answerLabel(q bank.Question, ans engine.Answer) string {
	if ans.Text != "" {
		return ans.Text
	}
	if opt, ok := q.OptionByValue(ans.Values[0]); ok && opt.Label != "" {
		return opt.Label
	}
	return strings.Join(ans.Values, ", ")
}

func printSummary(sum *engine.Summary) {
	fmt.Printf("\nsession %s — %d questions\n", sum.SessionID, sum.QuestionsAsked)
	fmt.Println("top clusters:")
	for _, c := range sum.Clusters {
		fmt.Printf("  %3d%%  %s\n", c.Percent, c.Label)
	}
	if len(sum.Skills) > 0 {
		fmt.Println("skills:")
		for _, s := range sum.Skills {
			fmt.Printf("  %-24s %3d (%s, %s)\n", s.Label, s.Confidence, s.Proficiency, s.Source)
		}
	}
	if len(sum.Occupations) > 0 {
		fmt.Println("occupations:")
		for _, o := range sum.Occupations {
			fmt.Printf("  %s\n", o)
		}
	}
}

// simProvider is a purpose-aware mock collaborator: it answers each
// request with a canned payload matching the request's purpose, so a
// simulated session exercises the generation, analysis and suggestion
// paths without network access.
type simProvider struct{}

func (p *simProvider) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	var payload any
	switch llm.PurposeFrom(ctx) {
	case "scenario-gen":
		payload = map[string]any{
			"prompt":          "A process you rely on keeps failing at the worst moments. Walk through what you would actually do.",
			"scenarioContext": "Your team depends on a weekly handover that has silently broken twice this month.",
			"suggestedApproaches": []string{
				"trace where the handover breaks",
				"talk to the people on both sides",
				"write the steps down and assign owners",
			},
			"skillIndicators": map[string][]string{
				"troubleshooting":  {"trace", "reproduce", "check"},
				"active-listening": {"ask", "listen", "involved"},
				"documentation":    {"write down", "document", "steps"},
			},
		}
	case "answer-analysis":
		payload = map[string]any{
			"identifiedSkills": []map[string]any{
				{"skill": "troubleshooting", "confidence": 70, "reasoning": "tries the likely fix and verifies"},
				{"skill": "active listening", "confidence": 60, "reasoning": "asks everyone involved first"},
			},
			"additionalSkills": []map[string]any{
				{"skill": "documentation", "confidence": 45, "reasoning": "writes down what worked"},
			},
			"overallAssessment": "methodical and people-aware",
		}
	case "occupation-suggest":
		payload = map[string]any{
			"occupations": []string{"IT support specialist", "Field service technician", "Operations analyst"},
		}
	default:
		return nil, &llm.ErrInvalidResponse{Err: fmt.Errorf("unexpected purpose %q", llm.PurposeFrom(ctx))}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &llm.Response{
		Content:    raw,
		Usage:      llm.Usage{InputTokens: 200, OutputTokens: 150, TotalTokens: 350},
		Model:      "sim",
		StopReason: "end",
	}, nil
}

func (p *simProvider) ModelID() string { return "sim" }
