package questiongen

// Question is a generated multiple-choice question. Immutable once
// generated.
type Question struct {
	// ID uniquely identifies this question within a session.
	ID string

	// Domain is the knowledge domain the question was generated for.
	Domain string

	// Prompt is the question text shown to the user.
	Prompt string

	// Options is the ordered list of answer choices. At least two,
	// exactly one correct.
	Options []string

	// CorrectIndex is the 0-based index of the correct option.
	CorrectIndex int

	// KnowledgeTag labels the specific sub-skill this question probes.
	KnowledgeTag string

	// Explanation describes why the correct answer is right.
	Explanation string

	// Difficulty is the 1-100 difficulty the question was generated for.
	Difficulty int

	// EstimatedSeconds is how long a knowledgeable person would need.
	EstimatedSeconds int
}

// GenerateInput carries the context for generating one question.
type GenerateInput struct {
	// Domain is the knowledge domain to probe.
	Domain string

	// Difficulty is the target difficulty (1-100).
	Difficulty int

	// KnowledgeGaps lists sub-skills the user has missed and not yet
	// remediated; the generator should favor these.
	KnowledgeGaps []string
}
