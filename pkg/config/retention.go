package config

import "time"

// RetentionConfig controls the background purge of aged sessions. Deleting
// a session cascades to its turns, steps, jobs, feedback, and comments.
type RetentionConfig struct {
	// Enabled turns the sweeper on. All replicas run it; the delete is a
	// single conditional statement, so concurrent sweeps are harmless.
	Enabled bool `yaml:"enabled"`

	// MaxSessionAge is how long a session may sit without activity before
	// it is purged. Sessions with a turn still in flight are never purged.
	MaxSessionAge time.Duration `yaml:"max_session_age"`

	// SweepInterval is how often the sweeper runs.
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		Enabled:       true,
		MaxSessionAge: 90 * 24 * time.Hour,
		SweepInterval: 12 * time.Hour,
	}
}
