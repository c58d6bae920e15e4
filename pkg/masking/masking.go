// Package masking scrubs credential-shaped material out of tool
// observations before they are persisted or fed back to the model. Log and
// config dumps routinely carry API keys, tokens, and certificates; once a
// secret lands in a turn step it is replayable forever, so masking happens
// at the tool boundary.
package masking

import (
	"log/slog"
	"regexp"
)

// PatternSpec is one custom masking rule from configuration.
type PatternSpec struct {
	Name        string `yaml:"name"`
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

// Config controls observation masking. Custom patterns run after the
// built-in set.
type Config struct {
	Enabled        bool          `yaml:"enabled"`
	CustomPatterns []PatternSpec `yaml:"custom_patterns,omitempty"`
}

// DefaultConfig returns masking defaults: enabled, built-in patterns only.
func DefaultConfig() *Config {
	return &Config{Enabled: true}
}

type compiledPattern struct {
	name        string
	regex       *regexp.Regexp
	replacement string
}

// builtinPatterns cover the secret shapes that show up in log and config
// dumps. Structural patterns run first, generic key/value sweeps last, so a
// PEM block is replaced whole before the key=value patterns can chew on it.
var builtinPatterns = []PatternSpec{
	{
		Name:        "certificate",
		Pattern:     `(?s)-----BEGIN [A-Z ]+-----.*?-----END [A-Z ]+-----`,
		Replacement: `__MASKED_CERTIFICATE__`,
	},
	{
		Name:        "ssh_key",
		Pattern:     `ssh-(?:rsa|dss|ed25519|ecdsa)\s+[A-Za-z0-9+/=]+`,
		Replacement: `__MASKED_SSH_KEY__`,
	},
	{
		Name:        "aws_secret",
		Pattern:     `(?i)aws_secret_access_key["']?\s*[:=]\s*["']?([A-Za-z0-9/+=]{30,})["']?`,
		Replacement: `aws_secret_access_key: __MASKED_AWS_SECRET__`,
	},
	{
		Name:        "api_key",
		Pattern:     `(?i)(?:api[_-]?key|apikey)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-]{20,})["']?`,
		Replacement: `api_key: __MASKED_API_KEY__`,
	},
	{
		Name:        "token",
		Pattern:     `(?i)(?:token|bearer|jwt)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-.]{20,})["']?`,
		Replacement: `token: __MASKED_TOKEN__`,
	},
	{
		Name:        "password",
		Pattern:     `(?i)(?:password|passwd|pwd)["']?\s*[:=]\s*["']?([^"'\s]{6,})["']?`,
		Replacement: `password: __MASKED_PASSWORD__`,
	},
}

// Masker applies a compiled pattern set. A nil Masker masks nothing, so
// callers never need to branch on whether masking is enabled.
type Masker struct {
	patterns []compiledPattern
}

// FromConfig compiles the built-in patterns plus any custom ones. Returns
// nil when masking is disabled. Invalid custom patterns are logged and
// skipped; the built-ins are known good.
func FromConfig(cfg *Config) *Masker {
	if cfg == nil || !cfg.Enabled {
		return nil
	}

	m := &Masker{patterns: make([]compiledPattern, 0, len(builtinPatterns)+len(cfg.CustomPatterns))}
	for _, spec := range builtinPatterns {
		m.patterns = append(m.patterns, compiledPattern{
			name:        spec.Name,
			regex:       regexp.MustCompile(spec.Pattern),
			replacement: spec.Replacement,
		})
	}
	for _, spec := range cfg.CustomPatterns {
		compiled, err := regexp.Compile(spec.Pattern)
		if err != nil {
			slog.Error("Failed to compile custom masking pattern, skipping",
				"pattern", spec.Name, "error", err)
			continue
		}
		m.patterns = append(m.patterns, compiledPattern{
			name:        spec.Name,
			regex:       compiled,
			replacement: spec.Replacement,
		})
	}
	return m
}

// Mask replaces every pattern match in s.
func (m *Masker) Mask(s string) string {
	if m == nil || s == "" {
		return s
	}
	for _, p := range m.patterns {
		s = p.regex.ReplaceAllString(s, p.replacement)
	}
	return s
}
