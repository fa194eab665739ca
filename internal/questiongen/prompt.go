package questiongen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert assessment designer creating multiple-choice questions that measure knowledge in a specific domain at a precise difficulty level.

Rules:
- The question must match the requested difficulty: not easier, not harder.
- Provide 4-5 options with exactly one correct answer.
- Distractors must be plausible and reveal common misconceptions, never random noise.
- When knowledge gaps are listed, prefer questions that probe those areas.
- The knowledge tag names the single specific sub-skill the question tests.
- The explanation states why the correct answer is right and why each distractor is wrong.
- Estimate the time in seconds a knowledgeable person would need to answer.

Difficulty scale:
- 1-20: basic definitions and simple recall
- 21-40: understanding and simple application
- 41-60: analysis and moderate application
- 61-80: synthesis and complex problem solving
- 81-100: expert-level evaluation and advanced concepts`

// buildUserMessage renders the generation request for the LLM.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Domain: %s\n", input.Domain)
	fmt.Fprintf(&b, "Difficulty: %d\n", input.Difficulty)

	b.WriteString("Knowledge gaps to probe:\n")
	b.WriteString(formatGaps(input.KnowledgeGaps, cfg.MaxGapsInPrompt))

	return b.String()
}

// formatGaps lists up to max gaps, most recent last.
func formatGaps(gaps []string, max int) string {
	if len(gaps) == 0 {
		return "None"
	}
	if max > 0 && len(gaps) > max {
		gaps = gaps[len(gaps)-max:]
	}

	var b strings.Builder
	for i, g := range gaps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, g)
	}
	return strings.TrimRight(b.String(), "\n")
}
