// Package guard screens user messages for prompt-injection attempts before
// a job is admitted. It runs an independent, cheap model through the
// platform LLM endpoint so the main analysis model never sees blocked
// input, and it records every non-allow verdict as a SecurityEvent.
package guard

import (
	"context"
	"log/slog"
	"strings"

	"github.com/vibemonitor/rca/ent/securityevent"
	"github.com/vibemonitor/rca/pkg/config"
	"github.com/vibemonitor/rca/pkg/llm"
	"github.com/vibemonitor/rca/pkg/models"
	"github.com/vibemonitor/rca/pkg/services"
)

// guardMaxTokens bounds the guard completion; the answer is one word.
const guardMaxTokens = 8

// Verdict classifies one screened message.
type Verdict string

const (
	// VerdictAllow admits the message.
	VerdictAllow Verdict = "allow"
	// VerdictBlock rejects the message as a detected injection attempt.
	VerdictBlock Verdict = "block"
	// VerdictDegraded means the guard itself was unavailable or gave an
	// indeterminate answer. Whether that blocks depends on FailClosed.
	VerdictDegraded Verdict = "degraded"
)

// Decision is the outcome of screening one message. Blocked is the
// operational answer: it folds the fail-open/fail-closed policy into the
// degraded verdict.
type Decision struct {
	Verdict Verdict
	Reason  string
	Blocked bool
}

// ModelGateway is the slice of the LLM gateway the guard needs.
type ModelGateway interface {
	PlatformModel(modelOverride string) (*llm.ResolvedModel, error)
	Complete(ctx context.Context, model llm.ChatModel, messages []llm.Message, opts llm.Options) (string, error)
}

// Guard is the pre-admission prompt-injection filter.
type Guard struct {
	cfg      *config.GuardConfig
	gateway  ModelGateway
	security *services.SecurityService
}

// New creates a Guard. security may be nil, in which case verdicts are
// still enforced but not audited.
func New(cfg *config.GuardConfig, gateway ModelGateway, security *services.SecurityService) *Guard {
	return &Guard{cfg: cfg, gateway: gateway, security: security}
}

// Screen classifies one user message. It never returns an error: a failing
// guard degrades, and the configured policy decides whether degraded
// blocks.
func (g *Guard) Screen(ctx context.Context, workspaceID, userID, message string) Decision {
	if !g.cfg.Enabled {
		return Decision{Verdict: VerdictAllow, Reason: "guard disabled"}
	}
	if strings.TrimSpace(message) == "" {
		return Decision{Verdict: VerdictAllow, Reason: "empty message"}
	}

	answer, err := g.classify(ctx, message)
	if err != nil {
		return g.degraded(ctx, workspaceID, userID, message, err.Error())
	}

	switch answer {
	case "true":
		return Decision{Verdict: VerdictAllow, Reason: "validated"}
	case "false":
		return g.block(ctx, workspaceID, userID, message)
	default:
		return g.degraded(ctx, workspaceID, userID, message,
			"guard returned an indeterminate answer")
	}
}

// classify runs the sandwich prompt and returns the model's normalized
// one-word answer.
func (g *Guard) classify(ctx context.Context, message string) (string, error) {
	model, err := g.gateway.PlatformModel(g.cfg.Model)
	if err != nil {
		return "", err
	}

	callCtx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	out, err := g.gateway.Complete(callCtx, model, []llm.Message{
		{Role: llm.RoleUser, Content: validationPrompt(message)},
	}, llm.Options{Temperature: 0, MaxTokens: guardMaxTokens})
	if err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(out)), nil
}

func (g *Guard) block(ctx context.Context, workspaceID, userID, message string) Decision {
	slog.Warn("Prompt injection detected",
		"workspace_id", workspaceID, "user_id", userID)
	g.record(ctx, workspaceID, userID, message,
		securityevent.EventTypePromptInjection, "Prompt injection detected by guard")
	return Decision{
		Verdict: VerdictBlock,
		Reason:  "Prompt injection detected by guard",
		Blocked: true,
	}
}

func (g *Guard) degraded(ctx context.Context, workspaceID, userID, message, cause string) Decision {
	slog.Warn("Prompt guard degraded",
		"workspace_id", workspaceID, "fail_closed", g.cfg.FailClosed, "cause", cause)
	g.record(ctx, workspaceID, userID, message,
		securityevent.EventTypeGuardDegraded, cause)
	return Decision{
		Verdict: VerdictDegraded,
		Reason:  cause,
		Blocked: g.cfg.FailClosed,
	}
}

func (g *Guard) record(ctx context.Context, workspaceID, userID, message string, eventType securityevent.EventType, detail string) {
	if g.security == nil {
		return
	}
	_, err := g.security.RecordEvent(ctx, models.RecordSecurityEventRequest{
		WorkspaceID:    workspaceID,
		UserID:         userID,
		EventType:      eventType,
		MessagePreview: message,
		Detail:         detail,
	})
	if err != nil {
		slog.Error("Failed to record security event",
			"workspace_id", workspaceID, "event_type", eventType, "error", err)
	}
}
