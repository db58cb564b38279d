// Package llm wraps the Gemini API for feedback generation and text embeddings.
package llm

// ModelTier selects a generation model by capability.
type ModelTier string

const (
	// TierLite handles short structured answers such as feedback summaries
	TierLite ModelTier = "lite"
	// TierStandard handles longer free-form output
	TierStandard ModelTier = "standard"
)

// DefaultEmbeddingModel is used when no embedding model is configured.
const DefaultEmbeddingModel = "text-embedding-004"

// Config maps tiers to Gemini model names.
type Config struct {
	Models      map[ModelTier]string
	Temperature float32
}

// DefaultConfig returns the Gemini models used for feedback.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
		Temperature: 0.1,
	}
}

// Model returns the model for tier, falling back to the lite model. It
// returns "" when neither is configured.
func (c *Config) Model(tier ModelTier) string {
	if model := c.Models[tier]; model != "" {
		return model
	}
	return c.Models[TierLite]
}
