package scenario

import (
	"fmt"
	"strings"

	"skillcompass/internal/bank"
	"skillcompass/internal/engine"
	"skillcompass/internal/skills"
)

const generateSystem = `You write short workplace scenario questions for a career-orientation quiz.
The user has no particular job yet; scenarios must be everyday situations anyone can imagine
(a team, a deadline, a customer, a broken process). Never mention skill names in the prompt
itself. Keep the reading level plain.`

func generateUser(targetSkill string, st *engine.State) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write one scenario question that probes the skill %q.\n\n", targetSkill)
	b.WriteString("The quiz so far suggests these leanings (strongest first):\n")
	for _, r := range st.Clusters.Top(3) {
		fmt.Fprintf(&b, "- %s (%.0f%%)\n", r.Label, r.Probability*100)
	}
	b.WriteString("\nThe scenario should let someone show the target skill without naming it.")
	return b.String()
}

const analyzeSystem = `You assess free-text answers to workplace scenario questions.
Report only skills the answer actually evidences; be conservative with confidence.
Use short skill names. Distinguish skills directly demonstrated from ones merely plausible.`

func analyzeUser(q bank.Question, text string) string {
	var b strings.Builder
	b.WriteString("Scenario:\n")
	if q.ScenarioContext != "" {
		b.WriteString(q.ScenarioContext)
		b.WriteString("\n")
	}
	b.WriteString(q.Prompt)
	b.WriteString("\n\nAnswer:\n")
	b.WriteString(text)
	if len(q.TargetSkills) > 0 {
		fmt.Fprintf(&b, "\n\nThe scenario was written to probe: %s.", strings.Join(q.TargetSkills, ", "))
	}
	if len(q.SkillIndicators) > 0 {
		b.WriteString("\nIndicator keywords per skill:\n")
		for skill, words := range q.SkillIndicators {
			fmt.Fprintf(&b, "- %s: %s\n", skill, strings.Join(words, ", "))
		}
	}
	return b.String()
}

const suggestSystem = `You suggest realistic occupations for a person based on their demonstrated skills.
Prefer common, attainable job titles over niche or senior ones. No explanations, titles only.`

func suggestUser(identified []skills.IdentifiedSkill) string {
	var b strings.Builder
	b.WriteString("Suggest occupations for someone with these skills:\n")
	for _, s := range identified {
		fmt.Fprintf(&b, "- %s (confidence %d, %s)\n", s.Label, s.Confidence, s.Proficiency)
	}
	return b.String()
}
