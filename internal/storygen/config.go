package storygen

// Config holds story generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for story generation.
// Stories are long outputs, so the token budget is generous.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.8,
	}
}
