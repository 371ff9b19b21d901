package content

import "time"

// Config holds lesson generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
	// Questions is the number of questions asked of the model.
	Questions int
	// Timeout bounds one generation, retries included. It applies even
	// after every waiting caller has gone. Zero means none.
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults for lesson generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   8192,
		Temperature: 0.7,
		Questions:   8,
		Timeout:     90 * time.Second,
	}
}
