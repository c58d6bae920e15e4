package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibemonitor/rca/ent"
	"github.com/vibemonitor/rca/ent/chatturn"
	"github.com/vibemonitor/rca/pkg/config"
	"github.com/vibemonitor/rca/pkg/database"
	"github.com/vibemonitor/rca/pkg/services"
	testdb "github.com/vibemonitor/rca/test/database"
)

func newTestService(client *database.Client) *Service {
	return NewService(config.DefaultRetentionConfig(), services.NewSessionService(client.Client))
}

func seedSession(t *testing.T, client *ent.Client, id string, updatedAt time.Time, turnStatus chatturn.Status) {
	t.Helper()
	ctx := context.Background()

	_, err := client.ChatSession.Create().
		SetID(id).
		SetWorkspaceID("ws-1").
		SetUpdatedAt(updatedAt).
		Save(ctx)
	require.NoError(t, err)

	if turnStatus != "" {
		_, err = client.ChatTurn.Create().
			SetID("turn-" + id).
			SetSessionID(id).
			SetUserMessage("why is checkout failing?").
			SetStatus(turnStatus).
			Save(ctx)
		require.NoError(t, err)
	}
}

func TestSweep_PurgesAgedSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := newTestService(client)

	old := time.Now().Add(-100 * 24 * time.Hour)
	seedSession(t, client.Client, "sess-aged", old, chatturn.StatusCompleted)
	seedSession(t, client.Client, "sess-aged-empty", old, "")
	seedSession(t, client.Client, "sess-recent", time.Now(), chatturn.StatusCompleted)

	svc.sweep(t.Context())

	ids := client.ChatSession.Query().IDsX(t.Context())
	assert.ElementsMatch(t, []string{"sess-recent"}, ids)

	// The aged session's turn went with it.
	assert.Zero(t, client.ChatTurn.Query().CountX(t.Context()))
}

func TestSweep_SparesSessionsWithTurnsInFlight(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := newTestService(client)

	old := time.Now().Add(-100 * 24 * time.Hour)
	seedSession(t, client.Client, "sess-pending", old, chatturn.StatusPending)
	seedSession(t, client.Client, "sess-processing", old, chatturn.StatusProcessing)

	svc.sweep(t.Context())

	assert.Equal(t, 2, client.ChatSession.Query().CountX(t.Context()))
}

func TestStartStop(t *testing.T) {
	client := testdb.NewTestClient(t)

	t.Run("disabled is a no-op", func(t *testing.T) {
		svc := NewService(&config.RetentionConfig{Enabled: false},
			services.NewSessionService(client.Client))
		svc.Start(t.Context())
		svc.Stop()
	})

	t.Run("started sweeps immediately and stops cleanly", func(t *testing.T) {
		seedSession(t, client.Client, "sess-aged", time.Now().Add(-100*24*time.Hour), "")

		svc := newTestService(client)
		svc.Start(t.Context())
		defer svc.Stop()

		require.Eventually(t, func() bool {
			return client.ChatSession.Query().CountX(context.Background()) == 0
		}, 5*time.Second, 50*time.Millisecond)
	})
}
