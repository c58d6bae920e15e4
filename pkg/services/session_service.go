// Package services contains business logic service layer implementations.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/vibemonitor/rca/ent"
	"github.com/vibemonitor/rca/ent/chatsession"
	"github.com/vibemonitor/rca/ent/chatturn"
	"github.com/vibemonitor/rca/pkg/models"
)

// maxTitleLen caps auto-generated session titles.
const maxTitleLen = 50

// maxListLimit caps the page size of session listings.
const maxListLimit = 250

// SessionService manages chat session lifecycle
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// CreateSession creates a new chat session in a workspace
func (s *SessionService) CreateSession(httpCtx context.Context, req models.CreateSessionRequest) (*ent.ChatSession, error) {
	if req.WorkspaceID == "" {
		return nil, NewValidationError("workspace_id", "required")
	}
	origin := req.Origin
	if origin == "" {
		origin = chatsession.OriginWeb
	}
	if origin == chatsession.OriginSlack {
		if req.ExternalChannelID == "" {
			return nil, NewValidationError("external_channel_id", "required for slack origin")
		}
		if req.ExternalThreadTS == "" {
			return nil, NewValidationError("external_thread_ts", "required for slack origin")
		}
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	create := s.client.ChatSession.Create().
		SetID(uuid.New().String()).
		SetWorkspaceID(req.WorkspaceID).
		SetOrigin(origin)
	if req.UserID != "" {
		create.SetUserID(req.UserID)
	}
	if req.Title != "" {
		create.SetTitle(req.Title)
	}
	if req.ExternalChannelID != "" {
		create.SetExternalChannelID(req.ExternalChannelID)
	}
	if req.ExternalThreadTS != "" {
		create.SetExternalThreadTs(req.ExternalThreadTS)
	}

	session, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// GetSession retrieves a session scoped to a workspace. A session belonging
// to another workspace reads as not found.
func (s *SessionService) GetSession(ctx context.Context, workspaceID, sessionID string) (*ent.ChatSession, error) {
	session, err := s.client.ChatSession.Query().
		Where(
			chatsession.IDEQ(sessionID),
			chatsession.WorkspaceIDEQ(workspaceID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// ListSessions returns a paginated list of workspace sessions, newest first
func (s *SessionService) ListSessions(ctx context.Context, workspaceID string, filters models.SessionFilters) (*models.SessionListResponse, error) {
	if workspaceID == "" {
		return nil, NewValidationError("workspace_id", "required")
	}

	query := s.client.ChatSession.Query().
		Where(chatsession.WorkspaceIDEQ(workspaceID))

	if filters.UserID != "" {
		query = query.Where(chatsession.UserIDEQ(filters.UserID))
	}
	if filters.Origin != "" {
		query = query.Where(chatsession.OriginEQ(chatsession.Origin(filters.Origin)))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(chatsession.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(chatsession.CreatedAtLT(*filters.CreatedBefore))
	}

	totalCount, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	sessions, err := query.
		Order(ent.Desc(chatsession.FieldCreatedAt)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return &models.SessionListResponse{
		Sessions:   sessions,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     filters.Offset,
	}, nil
}

// GetOrCreateExternalSession returns the session bound to an external chat
// thread, creating it if none exists. Returns (session, created, error).
// A partial unique index guarantees at most one session per thread; a
// constraint error means another request won the race, so we re-fetch.
func (s *SessionService) GetOrCreateExternalSession(httpCtx context.Context, workspaceID, channelID, threadTS string) (*ent.ChatSession, bool, error) {
	if workspaceID == "" {
		return nil, false, NewValidationError("workspace_id", "required")
	}
	if channelID == "" {
		return nil, false, NewValidationError("external_channel_id", "required")
	}
	if threadTS == "" {
		return nil, false, NewValidationError("external_thread_ts", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	byThread := func() (*ent.ChatSession, error) {
		return s.client.ChatSession.Query().
			Where(
				chatsession.WorkspaceIDEQ(workspaceID),
				chatsession.OriginEQ(chatsession.OriginSlack),
				chatsession.ExternalChannelIDEQ(channelID),
				chatsession.ExternalThreadTsEQ(threadTS),
			).
			Only(ctx)
	}

	existing, err := byThread()
	if err == nil {
		return existing, false, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("failed to query session by thread: %w", err)
	}

	session, err := s.client.ChatSession.Create().
		SetID(uuid.New().String()).
		SetWorkspaceID(workspaceID).
		SetOrigin(chatsession.OriginSlack).
		SetExternalChannelID(channelID).
		SetExternalThreadTs(threadTS).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			existing, queryErr := byThread()
			if queryErr != nil {
				return nil, false, fmt.Errorf("failed to query session after constraint error: %w", queryErr)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("failed to create session: %w", err)
	}

	return session, true, nil
}

// UpdateTitle renames a session. Workspace-scoped: a session belonging to
// another workspace reads as not found.
func (s *SessionService) UpdateTitle(httpCtx context.Context, workspaceID, sessionID, title string) (*ent.ChatSession, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, NewValidationError("title", "required")
	}
	if len([]rune(title)) > 200 {
		return nil, NewValidationError("title", "must be at most 200 characters")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	n, err := s.client.ChatSession.Update().
		Where(
			chatsession.IDEQ(sessionID),
			chatsession.WorkspaceIDEQ(workspaceID),
		).
		SetTitle(title).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update session title: %w", err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	return s.client.ChatSession.Get(ctx, sessionID)
}

// DeleteSession removes a session and, through cascading foreign keys, its
// turns, steps, jobs, feedback, and comments.
func (s *SessionService) DeleteSession(httpCtx context.Context, workspaceID, sessionID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	n, err := s.client.ChatSession.Delete().
		Where(
			chatsession.IDEQ(sessionID),
			chatsession.WorkspaceIDEQ(workspaceID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// PurgeIdleBefore deletes sessions whose last activity predates cutoff,
// across all workspaces. Sessions with a turn still in flight are skipped;
// everything else cascades away with the session row. Returns the number
// of sessions removed.
func (s *SessionService) PurgeIdleBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.ChatSession.Delete().
		Where(
			chatsession.UpdatedAtLT(cutoff),
			chatsession.Not(chatsession.HasTurnsWith(
				chatturn.StatusIn(chatturn.StatusPending, chatturn.StatusProcessing),
			)),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired sessions: %w", err)
	}
	return n, nil
}

// EnsureTitle sets the session title from the first user message when no
// title has been set yet. Best-effort: a concurrent writer winning is fine.
func (s *SessionService) EnsureTitle(ctx context.Context, sessionID, firstMessage string) error {
	title := SanitizeTitle(firstMessage)
	if title == "" {
		return nil
	}

	err := s.client.ChatSession.Update().
		Where(
			chatsession.IDEQ(sessionID),
			chatsession.TitleIsNil(),
		).
		SetTitle(title).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set session title: %w", err)
	}
	return nil
}

// SanitizeTitle derives a session title from a message: control characters
// stripped, whitespace collapsed, capped at 50 runes on a rune boundary.
func SanitizeTitle(message string) string {
	var b strings.Builder
	lastSpace := true
	for _, r := range message {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}

	title := strings.TrimSpace(b.String())
	runes := []rune(title)
	if len(runes) > maxTitleLen {
		title = strings.TrimSpace(string(runes[:maxTitleLen]))
	}
	return title
}
