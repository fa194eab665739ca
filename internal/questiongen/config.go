package questiongen

// Config controls the LLM-backed generator.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MinOptions and MaxOptions bound the accepted option count.
	MinOptions int
	MaxOptions int

	// MaxGapsInPrompt caps how many knowledge gaps are listed in the
	// prompt; the most recent ones win.
	MaxGapsInPrompt int
}

// DefaultConfig returns the recommended generator settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:       768,
		Temperature:     0.7,
		MinOptions:      2,
		MaxOptions:      6,
		MaxGapsInPrompt: 5,
	}
}
