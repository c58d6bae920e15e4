package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// RCAYAMLConfig represents the complete rca.yaml file structure.
type RCAYAMLConfig struct {
	Defaults       *Defaults          `yaml:"defaults"`
	Queue          *QueueConfig       `yaml:"queue"`
	Agent          *AgentConfig       `yaml:"agent"`
	Guard          *GuardConfig       `yaml:"guard"`
	Quota          *QuotaConfig       `yaml:"quota"`
	Retention      *RetentionConfig   `yaml:"retention"`
	LLM            *LLMConfig         `yaml:"llm"`
	Credentials    *CredentialsConfig `yaml:"credentials"`
	AllowedOrigins []string           `yaml:"allowed_origins"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load rca.yaml from configDir
//  2. Expand environment variables
//  3. Merge user YAML over built-in defaults
//  4. Validate all configuration
//  5. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	log.Info("Configuration initialized successfully",
		"workers", cfg.Queue.WorkerCount,
		"max_steps", cfg.Agent.MaxSteps,
		"guard_enabled", cfg.Guard.Enabled,
		"quota_enabled", cfg.Quota.Enabled)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	yamlCfg, err := loadRCAYAML(configDir)
	if err != nil {
		return nil, NewLoadError("rca.yaml", err)
	}

	// Start with built-in defaults, then merge user YAML on top so unset
	// fields keep their defaults.
	queueConfig := DefaultQueueConfig()
	if yamlCfg.Queue != nil {
		if err := mergo.Merge(queueConfig, yamlCfg.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	agentConfig := DefaultAgentConfig()
	if yamlCfg.Agent != nil {
		if err := mergo.Merge(agentConfig, yamlCfg.Agent, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge agent config: %w", err)
		}
		// Masking enabled is a meaningful false, taken verbatim when the
		// section is present.
		if yamlCfg.Agent.Masking != nil {
			agentConfig.Masking.Enabled = yamlCfg.Agent.Masking.Enabled
		}
	}

	// Guard and quota carry meaningful false/zero values, so bool toggles
	// are taken from YAML verbatim when the section is present.
	guardConfig := DefaultGuardConfig()
	if yamlCfg.Guard != nil {
		enabled, failClosed := yamlCfg.Guard.Enabled, yamlCfg.Guard.FailClosed
		if err := mergo.Merge(guardConfig, yamlCfg.Guard, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge guard config: %w", err)
		}
		guardConfig.Enabled = enabled
		guardConfig.FailClosed = failClosed
	}

	quotaConfig := DefaultQuotaConfig()
	if yamlCfg.Quota != nil {
		enabled, bypass := yamlCfg.Quota.Enabled, yamlCfg.Quota.BypassWithOwnLLM
		if err := mergo.Merge(quotaConfig, yamlCfg.Quota, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge quota config: %w", err)
		}
		quotaConfig.Enabled = enabled
		quotaConfig.BypassWithOwnLLM = bypass
	}

	retentionConfig := DefaultRetentionConfig()
	if yamlCfg.Retention != nil {
		enabled := yamlCfg.Retention.Enabled
		if err := mergo.Merge(retentionConfig, yamlCfg.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
		retentionConfig.Enabled = enabled
	}

	llmConfig := DefaultLLMConfig()
	if yamlCfg.LLM != nil {
		if err := mergo.Merge(llmConfig, yamlCfg.LLM, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge llm config: %w", err)
		}
	}

	defaults := yamlCfg.Defaults
	if defaults == nil {
		defaults = &Defaults{}
	}
	if defaults.LLMProvider == "" {
		defaults.LLMProvider = string(ProviderPlatform)
	}
	if defaults.Model == "" {
		defaults.Model = llmConfig.Platform.Model
	}
	if defaults.SlackPriority == 0 {
		defaults.SlackPriority = 10
	}

	credentials := yamlCfg.Credentials
	if credentials == nil {
		credentials = &CredentialsConfig{}
	}
	if credentials.KeyEnv == "" {
		credentials.KeyEnv = "CREDENTIALS_ENCRYPTION_KEY"
	}

	return &Config{
		configDir:      configDir,
		Defaults:       defaults,
		Queue:          queueConfig,
		Agent:          agentConfig,
		Guard:          guardConfig,
		Quota:          quotaConfig,
		Retention:      retentionConfig,
		LLM:            llmConfig,
		Credentials:    credentials,
		AllowedOrigins: yamlCfg.AllowedOrigins,
	}, nil
}

func loadRCAYAML(configDir string) (*RCAYAMLConfig, error) {
	var config RCAYAMLConfig

	path := filepath.Join(configDir, "rca.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// A missing file means pure defaults, not an error.
			slog.Info("No rca.yaml found, using built-in defaults", "path", path)
			return &config, nil
		}
		return nil, err
	}

	// Expand environment variables using {{.VAR}} template syntax
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return &config, nil
}

// validate performs sanity checks on loaded configuration.
func validate(cfg *Config) error {
	if cfg.Queue.WorkerCount < 1 {
		return NewValidationError("queue", "worker_count", fmt.Errorf("%w: must be >= 1", ErrInvalidValue))
	}
	if cfg.Queue.MaxConcurrentJobs < 1 {
		return NewValidationError("queue", "max_concurrent_jobs", fmt.Errorf("%w: must be >= 1", ErrInvalidValue))
	}
	if cfg.Queue.RetryBackoffBase <= 0 {
		return NewValidationError("queue", "retry_backoff_base", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if cfg.Agent.MaxSteps < 1 {
		return NewValidationError("agent", "max_steps", fmt.Errorf("%w: must be >= 1", ErrInvalidValue))
	}
	if cfg.Agent.WallClock <= 0 {
		return NewValidationError("agent", "wall_clock", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if cfg.Agent.ObservationLimit < 1024 {
		return NewValidationError("agent", "observation_limit", fmt.Errorf("%w: must be >= 1024", ErrInvalidValue))
	}
	if cfg.Quota.Enabled && cfg.Quota.DailyTurnLimit < 1 {
		return NewValidationError("quota", "daily_turn_limit", fmt.Errorf("%w: must be >= 1 when quota is enabled", ErrInvalidValue))
	}
	if cfg.Retention.Enabled && (cfg.Retention.MaxSessionAge <= 0 || cfg.Retention.SweepInterval <= 0) {
		return NewValidationError("retention", "max_session_age", fmt.Errorf("%w: must be positive when retention is enabled", ErrInvalidValue))
	}
	if cfg.LLM.Platform == nil || cfg.LLM.Platform.Model == "" {
		return NewValidationError("llm", "platform.model", fmt.Errorf("%w: platform model is required", ErrInvalidValue))
	}
	for provider := range cfg.LLM.ModelAllowlists {
		if !provider.Valid() {
			return NewValidationError("llm", "model_allowlists", fmt.Errorf("%w: unknown provider %q", ErrInvalidValue, provider))
		}
	}
	return nil
}
