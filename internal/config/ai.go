package config

import "os"

// Completion provider names.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// CompletionConfig holds configuration for the clarification text-completion
// providers. Exactly one provider is active at a time.
type CompletionConfig struct {
	Provider string `json:"provider"`

	GeminiAPIKey  string `json:"-"` // Never serialize
	GeminiBaseURL string `json:"geminiBaseUrl"`
	GeminiModel   string `json:"geminiModel"`

	OpenAIAPIKey string `json:"-"` // Never serialize
	OpenAIModel  string `json:"openaiModel"`

	TimeoutMS int `json:"timeoutMs"`
}

// DefaultCompletionConfig returns the completion configuration from the
// environment.
func DefaultCompletionConfig() *CompletionConfig {
	return &CompletionConfig{
		Provider: getEnvOrDefault("COMPLETION_PROVIDER", ProviderGemini),

		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL: getEnvOrDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/models"),
		GeminiModel:   getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),

		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),

		TimeoutMS: 10000, // 10 second default timeout
	}
}

// IsEnabled returns true if the selected provider has credentials.
func (c *CompletionConfig) IsEnabled() bool {
	switch c.Provider {
	case ProviderOpenAI:
		return c.OpenAIAPIKey != ""
	default:
		return c.GeminiAPIKey != ""
	}
}

// GeminiEndpoint returns the full generateContent endpoint for the
// configured Gemini model.
func (c *CompletionConfig) GeminiEndpoint() string {
	return c.GeminiBaseURL + "/" + c.GeminiModel + ":generateContent"
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
