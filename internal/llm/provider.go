package llm

import (
	"context"
	"fmt"
)

// Provider defines the interface for text-completion providers.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete runs a single system+user completion and returns the text
	Complete(ctx context.Context, req CompletionRequest) (string, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// CompletionRequest contains the input for one completion call.
type CompletionRequest struct {
	// System is the system instruction (role and output constraints)
	System string

	// User is the user content
	User string

	// Temperature controls sampling randomness
	Temperature float32

	// MaxTokens limits the response length
	MaxTokens int

	// Model overrides the configured model for this call (optional)
	Model string
}

// CompletionError wraps a transport, auth, or quota failure from a provider.
type CompletionError struct {
	Provider string
	Err      error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("%s completion failed: %v", e.Provider, e.Err)
}

func (e *CompletionError) Unwrap() error { return e.Err }

// Config holds LLM provider configuration.
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (OpenAI-compatible gateways, Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens is the default cap for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider:  "",
		Model:     "",
		Timeout:   60,
		MaxTokens: 1000,
	}
}
