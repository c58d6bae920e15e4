package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibemonitor/rca/ent/chatsession"
	"github.com/vibemonitor/rca/pkg/models"
)

func TestSessionService_CreateSession(t *testing.T) {
	client := setupTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, models.CreateSessionRequest{
		WorkspaceID: "ws-1",
		UserID:      "user-1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "ws-1", session.WorkspaceID)
	assert.Equal(t, chatsession.OriginWeb, session.Origin)
	require.NotNil(t, session.UserID)
	assert.Equal(t, "user-1", *session.UserID)
	assert.Nil(t, session.Title)
}

func TestSessionService_CreateSession_Validation(t *testing.T) {
	client := setupTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	_, err := svc.CreateSession(ctx, models.CreateSessionRequest{})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	// Slack origin requires thread coordinates.
	_, err = svc.CreateSession(ctx, models.CreateSessionRequest{
		WorkspaceID: "ws-1",
		Origin:      chatsession.OriginSlack,
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestSessionService_GetSession_WorkspaceScoping(t *testing.T) {
	client := setupTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	createTestSession(t, client.Client, "sess-1", "ws-1")

	session, err := svc.GetSession(ctx, "ws-1", "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", session.ID)

	// Another workspace cannot see it.
	_, err = svc.GetSession(ctx, "ws-2", "sess-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionService_ListSessions(t *testing.T) {
	client := setupTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	createTestSession(t, client.Client, "sess-a", "ws-1")
	createTestSession(t, client.Client, "sess-b", "ws-1")
	createTestSession(t, client.Client, "sess-c", "ws-2")

	resp, err := svc.ListSessions(ctx, "ws-1", models.SessionFilters{})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalCount)
	assert.Len(t, resp.Sessions, 2)

	resp, err = svc.ListSessions(ctx, "ws-1", models.SessionFilters{Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalCount)
	assert.Len(t, resp.Sessions, 1)
}

func TestSessionService_GetOrCreateExternalSession(t *testing.T) {
	client := setupTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	session, created, err := svc.GetOrCreateExternalSession(ctx, "ws-1", "C123", "1724671234.000100")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, chatsession.OriginSlack, session.Origin)

	// Same thread resolves to the same session.
	again, created, err := svc.GetOrCreateExternalSession(ctx, "ws-1", "C123", "1724671234.000100")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, session.ID, again.ID)

	// A different thread gets its own session.
	other, created, err := svc.GetOrCreateExternalSession(ctx, "ws-1", "C123", "1724671234.000200")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, session.ID, other.ID)
}

func TestSessionService_EnsureTitle(t *testing.T) {
	client := setupTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	createTestSession(t, client.Client, "sess-title", "ws-1")

	require.NoError(t, svc.EnsureTitle(ctx, "sess-title", "Why is\nthe    checkout service slow?"))

	session, err := client.ChatSession.Get(ctx, "sess-title")
	require.NoError(t, err)
	require.NotNil(t, session.Title)
	assert.Equal(t, "Why is the checkout service slow?", *session.Title)

	// A second message does not overwrite the title.
	require.NoError(t, svc.EnsureTitle(ctx, "sess-title", "Something else entirely"))
	session, err = client.ChatSession.Get(ctx, "sess-title")
	require.NoError(t, err)
	assert.Equal(t, "Why is the checkout service slow?", *session.Title)
}

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "plain message",
			message: "Why is checkout slow?",
			want:    "Why is checkout slow?",
		},
		{
			name:    "control characters and newlines collapse",
			message: "line one\nline\ttwo\x00three",
			want:    "line one line two three",
		},
		{
			name:    "long message truncated on rune boundary",
			message: strings.Repeat("héllo ", 20),
			want:    strings.TrimSpace(string([]rune(strings.Repeat("héllo ", 20))[:50])),
		},
		{
			name:    "whitespace only",
			message: "   \n\t  ",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeTitle(tt.message)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len([]rune(got)), 50)
		})
	}
}

func TestSessionService_UpdateTitle(t *testing.T) {
	client := setupTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	createTestSession(t, client.Client, "sess-1", "ws-1")

	session, err := svc.UpdateTitle(ctx, "ws-1", "sess-1", "  Checkout latency investigation  ")
	require.NoError(t, err)
	require.NotNil(t, session.Title)
	assert.Equal(t, "Checkout latency investigation", *session.Title)

	// Wrong workspace reads as not found.
	_, err = svc.UpdateTitle(ctx, "ws-2", "sess-1", "stolen")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.UpdateTitle(ctx, "ws-1", "sess-1", "   ")
	assert.True(t, IsValidationError(err))

	_, err = svc.UpdateTitle(ctx, "ws-1", "sess-1", strings.Repeat("x", 201))
	assert.True(t, IsValidationError(err))
}

func TestSessionService_DeleteSession(t *testing.T) {
	client := setupTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	createTestSession(t, client.Client, "sess-1", "ws-1")
	createTestTurn(t, client.Client, "turn-1", "sess-1", "why is checkout slow?")

	// Wrong workspace cannot delete.
	err := svc.DeleteSession(ctx, "ws-2", "sess-1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.DeleteSession(ctx, "ws-1", "sess-1"))

	_, err = svc.GetSession(ctx, "ws-1", "sess-1")
	assert.ErrorIs(t, err, ErrNotFound)

	// Turns are removed with the session.
	turns, err := NewTurnService(client.Client).ListTurns(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, turns)

	err = svc.DeleteSession(ctx, "ws-1", "sess-1")
	assert.ErrorIs(t, err, ErrNotFound)
}
