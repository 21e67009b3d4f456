package completion

import (
	"context"
	"errors"
	"mammacheck/internal/config"
)

// Roles for prior turns.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one prior exchange turn forwarded to a provider.
type Message struct {
	Role    string
	Content string
}

// ErrNotConfigured is returned by providers missing credentials.
var ErrNotConfigured = errors.New("completion provider not configured")

// Client is the pluggable text-completion collaborator. Implementations may
// fail freely; callers treat any error as "no answer".
type Client interface {
	Complete(ctx context.Context, systemPrompt string, history []Message, userText string) (string, error)
}

// FromConfig returns the configured provider, or nil when completion is
// disabled and callers should rely on their fallback path.
func FromConfig(cfg *config.CompletionConfig) Client {
	if !cfg.IsEnabled() {
		return nil
	}
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAIClient(cfg)
	default:
		return NewGeminiClient(cfg)
	}
}
