package session

// DomainPlan is one knowledge domain the assessment will probe.
type DomainPlan struct {
	Name                string `json:"domain_name"`
	Description         string `json:"description"`
	EstimatedDifficulty int    `json:"estimated_difficulty"` // 1-100 starting difficulty
}

// Config bounds session planning.
type Config struct {
	// DefaultDomains is the domain count when the caller doesn't choose.
	DefaultDomains int

	// MinDomains and MaxDomains bound the requested count.
	MinDomains int
	MaxDomains int

	// MaxTokens and Temperature apply to planning and summary calls.
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard planner settings.
func DefaultConfig() Config {
	return Config{
		DefaultDomains: 5,
		MinDomains:     3,
		MaxDomains:     8,
		MaxTokens:      1024,
		Temperature:    0.3,
	}
}

// StaticPlan builds a fixed domain progression for offline/mock runs:
// a shallow-to-deep sweep over the topic with rising difficulty.
func StaticPlan(topic string, count int) []DomainPlan {
	templates := []DomainPlan{
		{Name: "Fundamental Concepts", Description: "Core principles and basic terminology of " + topic, EstimatedDifficulty: 30},
		{Name: "Practical Application", Description: "Applying " + topic + " concepts to routine problems", EstimatedDifficulty: 45},
		{Name: "Analysis and Troubleshooting", Description: "Diagnosing and reasoning about " + topic + " scenarios", EstimatedDifficulty: 60},
		{Name: "Advanced Techniques", Description: "Complex problem solving within " + topic, EstimatedDifficulty: 75},
		{Name: "Expert Judgment", Description: "Evaluation and design-level decisions in " + topic, EstimatedDifficulty: 85},
		{Name: "Edge Cases and Pitfalls", Description: "Uncommon situations and common mistakes in " + topic, EstimatedDifficulty: 70},
		{Name: "Ecosystem and Context", Description: "How " + topic + " relates to neighboring areas", EstimatedDifficulty: 50},
		{Name: "History and Evolution", Description: "How " + topic + " reached its current form", EstimatedDifficulty: 40},
	}
	if count <= 0 || count > len(templates) {
		count = 5
	}
	return templates[:count]
}
