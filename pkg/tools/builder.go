package tools

import (
	"context"
	"fmt"
	"sort"

	"github.com/vibemonitor/rca/pkg/config"
	"github.com/vibemonitor/rca/pkg/masking"
	"github.com/vibemonitor/rca/pkg/providers"
)

// Builder turns a workspace's connected integrations into a tool set.
type Builder struct {
	registry *providers.Registry
	cfg      *config.AgentConfig
}

// NewBuilder creates a Builder over the provider registry.
func NewBuilder(registry *providers.Registry, cfg *config.AgentConfig) *Builder {
	return &Builder{registry: registry, cfg: cfg}
}

// ForWorkspace builds the tool set for one workspace: one tool per
// (capability, provider) pair, named "<capability>.<provider>". A capability
// nobody serves simply yields no tool.
func (b *Builder) ForWorkspace(ctx context.Context, workspaceID string) (*Set, error) {
	provs, err := b.registry.ForWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to build tool set: %w", err)
	}
	return SetFromProviders(provs, b.cfg), nil
}

// SetFromProviders builds a tool set directly from providers, bypassing the
// registry. Used where the providers are already in hand.
func SetFromProviders(provs []providers.Provider, cfg *config.AgentConfig) *Set {
	masker := masking.FromConfig(cfg.Masking)

	set := &Set{byName: make(map[string]*Tool)}
	for _, p := range provs {
		for _, cap := range p.Capabilities() {
			spec, ok := capabilitySpecs[cap]
			if !ok {
				continue
			}
			tool := &Tool{
				Name:        string(cap) + "." + p.Name(),
				Description: fmt.Sprintf(spec.description, p.Name()),
				capability:  cap,
				provider:    p,
				schema:      compiledSchemas[cap],
				rawSchema:   spec.schema,
				timeout:     cfg.ToolTimeout,
				obsLimit:    cfg.ObservationLimit,
				masker:      masker,
			}
			set.byName[tool.Name] = tool
		}
	}

	set.tools = make([]*Tool, 0, len(set.byName))
	for _, t := range set.byName {
		set.tools = append(set.tools, t)
	}
	sort.Slice(set.tools, func(i, j int) bool { return set.tools[i].Name < set.tools[j].Name })
	return set
}

// Set is the tools available to one turn, in stable name order.
type Set struct {
	tools  []*Tool
	byName map[string]*Tool
}

// Get looks a tool up by its full name.
func (s *Set) Get(name string) (*Tool, bool) {
	t, ok := s.byName[name]
	return t, ok
}

// All returns the tools in name order.
func (s *Set) All() []*Tool { return s.tools }

// Names returns the tool names in order, for prompts and error messages.
func (s *Set) Names() []string {
	names := make([]string, len(s.tools))
	for i, t := range s.tools {
		names[i] = t.Name
	}
	return names
}

// Empty reports whether the workspace has no usable tools at all.
func (s *Set) Empty() bool { return len(s.tools) == 0 }
