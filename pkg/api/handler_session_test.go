package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibemonitor/rca/ent"
	"github.com/vibemonitor/rca/ent/chatturn"
	"github.com/vibemonitor/rca/pkg/models"
)

func TestListSessionsHandler_Validation(t *testing.T) {
	// Parameter validation returns 400 before touching the service.
	s := &Server{}

	tests := []struct {
		name   string
		query  string
		errMsg string
	}{
		{
			name:   "limit zero",
			query:  "limit=0",
			errMsg: "invalid limit",
		},
		{
			name:   "limit above cap",
			query:  "limit=251",
			errMsg: "invalid limit",
		},
		{
			name:   "negative offset",
			query:  "offset=-1",
			errMsg: "invalid offset",
		},
		{
			name:   "invalid created_after",
			query:  "created_after=yesterday",
			errMsg: "invalid created_after",
		},
		{
			name:   "created_before wrong format",
			query:  "created_before=2024-01-01",
			errMsg: "invalid created_before",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions?"+tt.query, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := s.listSessionsHandler(c)
			if assert.Error(t, err) {
				he, ok := err.(*echo.HTTPError)
				if assert.True(t, ok, "expected echo.HTTPError") {
					assert.Equal(t, http.StatusBadRequest, he.Code)
					assert.Contains(t, he.Message, tt.errMsg)
				}
			}
		})
	}
}

func TestSessionHandlers_Lifecycle(t *testing.T) {
	ts := newTestServer(t)
	seedTurn(t, ts.client.Client, "1", "ws-1", chatturn.StatusCompleted)

	rec := ts.do(t, http.MethodGet, "/api/v1/sessions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list models.SessionListResponse
	decodeJSON(t, rec, &list)
	require.Len(t, list.Sessions, 1)
	assert.Equal(t, "sess-1", list.Sessions[0].ID)

	rec = ts.do(t, http.MethodGet, "/api/v1/sessions/sess-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var session ent.ChatSession
	decodeJSON(t, rec, &session)
	assert.Equal(t, "sess-1", session.ID)

	rec = ts.do(t, http.MethodPatch, "/api/v1/sessions/sess-1", UpdateSessionRequest{Title: "Checkout RCA"})
	require.Equal(t, http.StatusOK, rec.Code)
	decodeJSON(t, rec, &session)
	require.NotNil(t, session.Title)
	assert.Equal(t, "Checkout RCA", *session.Title)

	rec = ts.do(t, http.MethodGet, "/api/v1/sessions/sess-1/turns", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var turns SessionTurnsResponse
	decodeJSON(t, rec, &turns)
	require.Len(t, turns.Turns, 1)
	assert.Equal(t, "turn-1", turns.Turns[0].ID)

	rec = ts.do(t, http.MethodDelete, "/api/v1/sessions/sess-1", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/sessions/sess-1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSessionHandlers_WorkspaceScoping(t *testing.T) {
	ts := newTestServer(t)
	seedTurn(t, ts.client.Client, "1", "ws-other", chatturn.StatusCompleted)

	for _, tc := range []struct {
		method string
		target string
		body   any
	}{
		{http.MethodGet, "/api/v1/sessions/sess-1", nil},
		{http.MethodPatch, "/api/v1/sessions/sess-1", UpdateSessionRequest{Title: "stolen"}},
		{http.MethodDelete, "/api/v1/sessions/sess-1", nil},
		{http.MethodGet, "/api/v1/sessions/sess-1/turns", nil},
	} {
		rec := ts.do(t, tc.method, tc.target, tc.body)
		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", tc.method, tc.target)
	}

	// Foreign sessions never appear in listings.
	rec := ts.do(t, http.MethodGet, "/api/v1/sessions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list models.SessionListResponse
	decodeJSON(t, rec, &list)
	assert.Empty(t, list.Sessions)
}

func TestUpdateSessionHandler_EmptyTitle(t *testing.T) {
	ts := newTestServer(t)
	seedTurn(t, ts.client.Client, "1", "ws-1", chatturn.StatusCompleted)

	rec := ts.do(t, http.MethodPatch, "/api/v1/sessions/sess-1", UpdateSessionRequest{Title: "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
