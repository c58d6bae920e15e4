package config

import "time"

// GuardConfig controls the prompt-injection guard that screens user
// messages before a job is enqueued.
type GuardConfig struct {
	// Enabled toggles the guard entirely. When off, all messages pass.
	Enabled bool `yaml:"enabled"`

	// FailClosed blocks messages when the guard itself errors or times
	// out. When false the guard fails open and records a degraded event.
	FailClosed bool `yaml:"fail_closed"`

	// Model overrides the platform default model for guard calls.
	Model string `yaml:"model,omitempty"`

	// Timeout bounds the guard's LLM call.
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultGuardConfig returns the built-in guard defaults.
func DefaultGuardConfig() *GuardConfig {
	return &GuardConfig{
		Enabled:    true,
		FailClosed: false,
		Timeout:    10 * time.Second,
	}
}
