package config

// QuotaConfig controls the daily per-workspace turn quota.
type QuotaConfig struct {
	// Enabled toggles quota enforcement.
	Enabled bool `yaml:"enabled"`

	// DailyTurnLimit is the default number of turns a workspace may start
	// per UTC day on the platform LLM.
	DailyTurnLimit int `yaml:"daily_turn_limit"`

	// WorkspaceOverrides maps workspace IDs to custom daily limits.
	WorkspaceOverrides map[string]int `yaml:"workspace_overrides,omitempty"`

	// BypassWithOwnLLM exempts workspaces with an enabled BYO-LLM config.
	BypassWithOwnLLM bool `yaml:"bypass_with_own_llm"`
}

// DefaultQuotaConfig returns the built-in quota defaults.
func DefaultQuotaConfig() *QuotaConfig {
	return &QuotaConfig{
		Enabled:          true,
		DailyTurnLimit:   50,
		BypassWithOwnLLM: true,
	}
}

// LimitFor returns the effective daily limit for a workspace.
func (q *QuotaConfig) LimitFor(workspaceID string) int {
	if override, ok := q.WorkspaceOverrides[workspaceID]; ok {
		return override
	}
	return q.DailyTurnLimit
}
