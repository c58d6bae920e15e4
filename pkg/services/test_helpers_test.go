package services

import (
	"testing"

	"github.com/vibemonitor/rca/ent"
	"github.com/vibemonitor/rca/pkg/database"
	testdb "github.com/vibemonitor/rca/test/database"
)

// setupTestClient creates an isolated database client for a service test.
func setupTestClient(t *testing.T) *database.Client {
	t.Helper()
	return testdb.NewTestClient(t)
}

// createTestSession is a shorthand for seeding a session row.
func createTestSession(t *testing.T, client *ent.Client, id, workspaceID string) *ent.ChatSession {
	t.Helper()
	session, err := client.ChatSession.Create().
		SetID(id).
		SetWorkspaceID(workspaceID).
		Save(t.Context())
	if err != nil {
		t.Fatalf("failed to seed session: %v", err)
	}
	return session
}

// createTestTurn seeds a pending turn in a session.
func createTestTurn(t *testing.T, client *ent.Client, id, sessionID, message string) *ent.ChatTurn {
	t.Helper()
	turn, err := client.ChatTurn.Create().
		SetID(id).
		SetSessionID(sessionID).
		SetUserMessage(message).
		Save(t.Context())
	if err != nil {
		t.Fatalf("failed to seed turn: %v", err)
	}
	return turn
}
