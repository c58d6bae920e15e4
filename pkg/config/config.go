package config

// Config is the umbrella configuration object returned by Initialize()
// and threaded through the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// System-wide defaults
	Defaults *Defaults

	// Queue and worker pool configuration
	Queue *QueueConfig

	// Agent loop budgets
	Agent *AgentConfig

	// Prompt guard configuration
	Guard *GuardConfig

	// Quota gate configuration
	Quota *QuotaConfig

	// Session retention sweeper configuration
	Retention *RetentionConfig

	// Platform LLM settings and per-provider model allowlists
	LLM *LLMConfig

	// Credential encryption settings
	Credentials *CredentialsConfig

	// Allowed CORS origins for the API and stream endpoint
	AllowedOrigins []string
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// CredentialsConfig holds credential encryption settings.
// The key itself is read from the named environment variable at startup.
type CredentialsConfig struct {
	KeyEnv string `yaml:"key_env,omitempty"`
}
