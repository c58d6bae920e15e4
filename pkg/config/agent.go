package config

import (
	"time"

	"github.com/vibemonitor/rca/pkg/masking"
)

// AgentConfig holds the investigation loop budgets. Exceeding any of them
// forces the agent to conclude with whatever evidence it has gathered.
type AgentConfig struct {
	// MaxSteps is the maximum number of reasoning iterations per turn.
	MaxSteps int `yaml:"max_steps"`

	// WallClock is the per-turn wall-clock budget.
	WallClock time.Duration `yaml:"wall_clock"`

	// ObservationLimit is the maximum observation size in bytes; larger
	// tool results are truncated before entering the transcript.
	ObservationLimit int `yaml:"observation_limit"`

	// ToolTimeout bounds each individual tool invocation.
	ToolTimeout time.Duration `yaml:"tool_timeout"`

	// MaxConsecutiveFailures is tool failures in a row before the loop
	// gives up and concludes early.
	MaxConsecutiveFailures int `yaml:"max_consecutive_failures"`

	// Masking scrubs credential-shaped material from tool observations
	// before they enter the transcript.
	Masking *masking.Config `yaml:"masking"`
}

// DefaultAgentConfig returns the built-in agent budgets.
func DefaultAgentConfig() *AgentConfig {
	return &AgentConfig{
		MaxSteps:               10,
		WallClock:              120 * time.Second,
		ObservationLimit:       8192,
		ToolTimeout:            20 * time.Second,
		MaxConsecutiveFailures: 3,
		Masking:                masking.DefaultConfig(),
	}
}
