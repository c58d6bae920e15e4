package queue

import (
	"context"
	"fmt"

	"github.com/vibemonitor/rca/ent"
	"github.com/vibemonitor/rca/ent/chatturn"
	"github.com/vibemonitor/rca/pkg/agent"
	"github.com/vibemonitor/rca/pkg/llm"
	"github.com/vibemonitor/rca/pkg/services"
	"github.com/vibemonitor/rca/pkg/tools"
)

// Runner executes one job's turn: resolves the workspace model and tool
// set, then drives the investigation loop. Implements TurnExecutor.
type Runner struct {
	turns       *services.TurnService
	gateway     *llm.Gateway
	toolBuilder *tools.Builder
	engine      *agent.Engine
}

// NewRunner creates a Runner.
func NewRunner(turns *services.TurnService, gateway *llm.Gateway, toolBuilder *tools.Builder, engine *agent.Engine) *Runner {
	return &Runner{
		turns:       turns,
		gateway:     gateway,
		toolBuilder: toolBuilder,
		engine:      engine,
	}
}

// Execute runs the investigation for the job's turn.
func (r *Runner) Execute(ctx context.Context, job *ent.Job) ExecutionResult {
	turn, err := r.turns.GetTurn(ctx, job.WorkspaceID, job.TurnID)
	if err != nil {
		return ExecutionResult{Err: fmt.Errorf("failed to load turn: %w", err)}
	}

	if ok, err := r.claimTurn(ctx, turn); err != nil {
		return ExecutionResult{Err: err}
	} else if !ok {
		// Completed turn with a still-queued job: report the stored
		// answer so the worker can close the job out.
		return ExecutionResult{Answer: derefOr(turn.FinalResponse, "")}
	}

	resolved, err := r.gateway.ForWorkspace(ctx, job.WorkspaceID)
	if err != nil {
		return ExecutionResult{Err: fmt.Errorf("failed to resolve model: %w", err)}
	}

	set, err := r.toolBuilder.ForWorkspace(ctx, job.WorkspaceID)
	if err != nil {
		return ExecutionResult{Err: fmt.Errorf("failed to build tool set: %w", err)}
	}

	answer, err := r.engine.Run(ctx, agent.Request{
		TurnID:  turn.ID,
		Message: turn.UserMessage,
		Model:   gatewayModel{gateway: r.gateway, resolved: resolved},
		Tools:   set,
	})
	if err != nil {
		return ExecutionResult{Err: err}
	}
	return ExecutionResult{Answer: answer}
}

// claimTurn moves the turn to processing. A turn already processing is a
// retry of this job and proceeds; a terminal turn means stale duplicate
// delivery.
func (r *Runner) claimTurn(ctx context.Context, turn *ent.ChatTurn) (bool, error) {
	ok, err := r.turns.MarkProcessing(ctx, turn.ID)
	if err != nil {
		return false, fmt.Errorf("failed to mark turn processing: %w", err)
	}
	if ok {
		return true, nil
	}

	switch turn.Status {
	case chatturn.StatusProcessing:
		return true, nil
	case chatturn.StatusCompleted:
		return false, nil
	default:
		return false, fmt.Errorf("%w: turn %s is %s", ErrTurnUnavailable, turn.ID, turn.Status)
	}
}

// gatewayModel routes engine completions through the gateway so they get
// its per-attempt timeout and transient-error retries.
type gatewayModel struct {
	gateway  *llm.Gateway
	resolved *llm.ResolvedModel
}

func (m gatewayModel) Complete(ctx context.Context, messages []llm.Message, opts llm.Options) (string, error) {
	return m.gateway.Complete(ctx, m.resolved, messages, opts)
}

func (m gatewayModel) Model() string { return m.resolved.Model() }

func derefOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}
