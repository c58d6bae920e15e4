package config

import "time"

// LLMProviderType identifies a supported LLM backend.
type LLMProviderType string

const (
	// ProviderPlatform is the platform-operated OpenAI-compatible gateway.
	ProviderPlatform LLMProviderType = "platform"
	// ProviderOpenAI is customer-supplied OpenAI.
	ProviderOpenAI LLMProviderType = "openai"
	// ProviderAzureOpenAI is customer-supplied Azure OpenAI.
	ProviderAzureOpenAI LLMProviderType = "azure_openai"
	// ProviderGemini is customer-supplied Google Gemini.
	ProviderGemini LLMProviderType = "gemini"
)

// Valid reports whether t is a known provider type.
func (t LLMProviderType) Valid() bool {
	switch t {
	case ProviderPlatform, ProviderOpenAI, ProviderAzureOpenAI, ProviderGemini:
		return true
	}
	return false
}

// LLMConfig holds platform LLM settings and per-provider model allowlists.
type LLMConfig struct {
	// Platform gateway settings used when a workspace has no BYO-LLM config.
	Platform *PlatformLLMConfig `yaml:"platform"`

	// ModelAllowlists restricts which models a BYO-LLM config may name,
	// keyed by provider type. An absent entry means any model.
	ModelAllowlists map[LLMProviderType][]string `yaml:"model_allowlists,omitempty"`

	// RequestTimeout bounds a single completion call.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// MaxRetries is the retry budget for rate-limit and server errors.
	MaxRetries int `yaml:"max_retries"`
}

// PlatformLLMConfig describes the platform-operated model endpoint.
type PlatformLLMConfig struct {
	// Model served by the platform gateway.
	Model string `yaml:"model"`

	// BaseURL of the OpenAI-compatible endpoint.
	BaseURL string `yaml:"base_url"`

	// APIKeyEnv names the environment variable holding the key.
	APIKeyEnv string `yaml:"api_key_env"`
}

// DefaultLLMConfig returns the built-in LLM defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		Platform: &PlatformLLMConfig{
			Model:     "llama-3.3-70b-versatile",
			BaseURL:   "https://api.groq.com/openai/v1",
			APIKeyEnv: "PLATFORM_LLM_API_KEY",
		},
		RequestTimeout: 60 * time.Second,
		MaxRetries:     3,
	}
}

// ModelAllowed reports whether model may be used with the given provider.
func (c *LLMConfig) ModelAllowed(provider LLMProviderType, model string) bool {
	allowed, ok := c.ModelAllowlists[provider]
	if !ok || len(allowed) == 0 {
		return true
	}
	for _, m := range allowed {
		if m == model {
			return true
		}
	}
	return false
}
