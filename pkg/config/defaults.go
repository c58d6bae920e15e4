package config

// Defaults contains system-wide default values applied when the YAML
// does not specify its own.
type Defaults struct {
	// Default LLM provider for workspaces without a BYO-LLM config
	LLMProvider string `yaml:"llm_provider,omitempty"`

	// Default model for the platform provider
	Model string `yaml:"model,omitempty"`

	// Default job priority for web-origin turns
	WebPriority int `yaml:"web_priority,omitempty"`

	// Default job priority for Slack-origin turns
	SlackPriority int `yaml:"slack_priority,omitempty"`
}
