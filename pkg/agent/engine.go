// Package agent runs the ReAct investigation loop: the model reasons in
// Thought/Action/Action Input rounds, the engine executes tools and feeds
// observations back, and the loop ends with a Final Answer or a forced
// conclusion once the step or wall-clock budget runs out.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vibemonitor/rca/pkg/agent/prompt"
	"github.com/vibemonitor/rca/pkg/config"
	"github.com/vibemonitor/rca/pkg/events"
	"github.com/vibemonitor/rca/pkg/llm"
	"github.com/vibemonitor/rca/pkg/tools"
)

const (
	// Sampling temperature for investigation turns. Low but non-zero:
	// deterministic enough to be reproducible, warm enough to avoid
	// degenerate loops on repeated observations.
	temperature = 0.1

	// Budget for the single forced-conclusion call once the wall clock
	// or step budget is exhausted.
	forcedConclusionTimeout = 30 * time.Second

	// tool_end frames carry a summary, not the full observation; the full
	// text lives in the conversation history and the persisted step.
	toolSummaryLimit = 500
)

// StepSink receives the per-step frames the engine emits. Satisfied by
// events.Publisher.
type StepSink interface {
	AppendStatus(ctx context.Context, turnID, content string) (events.Frame, error)
	AppendThinking(ctx context.Context, turnID, content string) (events.Frame, error)
	StartToolCall(ctx context.Context, turnID, toolName string) (events.Frame, error)
	FinishToolCall(ctx context.Context, turnID, stepID, status, content string) (events.Frame, error)
}

// Request is one turn to investigate.
type Request struct {
	TurnID  string
	Message string
	Model   llm.ChatModel
	Tools   *tools.Set
}

// Engine drives the investigation loop for one turn at a time.
type Engine struct {
	cfg  *config.AgentConfig
	sink StepSink
}

func NewEngine(cfg *config.AgentConfig, sink StepSink) *Engine {
	return &Engine{cfg: cfg, sink: sink}
}

// Run executes the loop and returns the final answer text.
//
// Tool failures are absorbed as observations and never abort the loop. The
// returned error is always an engine-level failure: ErrProtocol when the
// model cannot hold the format, ErrDeadline when the budget expired and the
// forced conclusion failed too, a model error for transport/auth problems,
// or a sink error when a step could not be persisted (persistence precedes
// publication, so a step that cannot be written must fail the turn).
func (e *Engine) Run(ctx context.Context, req Request) (string, error) {
	loopCtx, cancel := context.WithTimeout(ctx, e.cfg.WallClock)
	defer cancel()

	// Frames are persisted even when the wall clock expires mid-step: a
	// tool_start without its tool_end would replay as forever-running.
	persistCtx := context.WithoutCancel(ctx)

	if _, err := e.sink.AppendStatus(persistCtx, req.TurnID, "Starting analysis"); err != nil {
		return "", fmt.Errorf("failed to record status step: %w", err)
	}

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: prompt.System(req.Tools)},
		{Role: llm.RoleUser, Content: req.Message},
	}

	state := &iterationState{}
	toolFailures := 0

	for state.step = 1; state.step <= e.cfg.MaxSteps; state.step++ {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if loopCtx.Err() != nil {
			break
		}

		reply, err := req.Model.Complete(loopCtx, messages, llm.Options{Temperature: temperature})
		if err != nil {
			if budgetExpired(loopCtx, ctx) {
				break
			}
			return "", fmt.Errorf("model call failed at step %d: %w", state.step, err)
		}
		messages = append(messages, llm.Message{Role: llm.RoleAssistant, Content: reply})

		parsed := ParseResponse(reply)

		if parsed.IsMalformed {
			if parsed.Thought != "" {
				if _, err := e.sink.AppendThinking(persistCtx, req.TurnID, parsed.Thought); err != nil {
					return "", fmt.Errorf("failed to record thinking step: %w", err)
				}
			}
			if state.recordMalformed() {
				return "", fmt.Errorf("%w: %d consecutive malformed responses", ErrProtocol, state.consecutiveMalformed)
			}
			slog.Debug("Malformed model response, sending format feedback",
				"turn_id", req.TurnID, "step", state.step)
			messages = append(messages, llm.Message{Role: llm.RoleUser, Content: FormatFeedback(parsed)})
			continue
		}
		state.recordParsed()

		if parsed.IsFinalAnswer {
			if parsed.Thought != "" {
				if _, err := e.sink.AppendThinking(persistCtx, req.TurnID, parsed.Thought); err != nil {
					return "", fmt.Errorf("failed to record thinking step: %w", err)
				}
			}
			return parsed.FinalAnswer, nil
		}

		// Tool call round.
		if parsed.Thought != "" {
			if _, err := e.sink.AppendThinking(persistCtx, req.TurnID, parsed.Thought); err != nil {
				return "", fmt.Errorf("failed to record thinking step: %w", err)
			}
		}

		tool, ok := req.Tools.Get(parsed.Action)
		if !ok {
			// No tool frames for a tool that does not exist.
			observation := fmt.Sprintf("ERROR: unknown tool %q. Available tools: %s",
				parsed.Action, strings.Join(req.Tools.Names(), ", "))
			messages = append(messages, llm.Message{Role: llm.RoleUser, Content: prompt.Observation(observation)})
			continue
		}

		start, err := e.sink.StartToolCall(persistCtx, req.TurnID, tool.Name)
		if err != nil {
			return "", fmt.Errorf("failed to record tool call start: %w", err)
		}

		result := tool.Invoke(loopCtx, parsed.ActionInput)

		status := "completed"
		if result.IsError {
			status = "failed"
			toolFailures++
		} else {
			toolFailures = 0
		}
		if _, err := e.sink.FinishToolCall(persistCtx, req.TurnID, start.StepID, status, summarize(result.Content)); err != nil {
			return "", fmt.Errorf("failed to record tool call result: %w", err)
		}

		messages = append(messages, llm.Message{Role: llm.RoleUser, Content: prompt.Observation(result.Content)})

		if e.cfg.MaxConsecutiveFailures > 0 && toolFailures >= e.cfg.MaxConsecutiveFailures {
			slog.Warn("Consecutive tool failures, concluding early",
				"turn_id", req.TurnID, "failures", toolFailures)
			break
		}
	}

	return e.forceConclusion(persistCtx, req, messages)
}

// forceConclusion issues one last model call asking for the final answer
// from the evidence gathered so far. Runs detached from the expired loop
// context with its own small budget.
func (e *Engine) forceConclusion(persistCtx context.Context, req Request, messages []llm.Message) (string, error) {
	if _, err := e.sink.AppendStatus(persistCtx, req.TurnID, "Investigation budget reached, concluding"); err != nil {
		return "", fmt.Errorf("failed to record status step: %w", err)
	}

	callCtx, cancel := context.WithTimeout(persistCtx, forcedConclusionTimeout)
	defer cancel()

	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: prompt.ForcedConclusion()})
	reply, err := req.Model.Complete(callCtx, messages, llm.Options{Temperature: temperature})
	if err != nil {
		return "", fmt.Errorf("%w: forced conclusion failed: %v", ErrDeadline, err)
	}

	answer := ForcedAnswer(reply)
	if answer == "" {
		return "", fmt.Errorf("%w: forced conclusion produced no answer", ErrDeadline)
	}
	return answer, nil
}

// budgetExpired reports whether the loop deadline fired while the parent
// context is still live. A parent cancellation is a shutdown, not a budget.
func budgetExpired(loopCtx, parent context.Context) bool {
	return loopCtx.Err() != nil && parent.Err() == nil
}

// summarize bounds tool_end frame content to toolSummaryLimit runes.
func summarize(content string) string {
	if utf8.RuneCountInString(content) <= toolSummaryLimit {
		return content
	}
	runes := []rune(content)
	return string(runes[:toolSummaryLimit-1]) + "…"
}
