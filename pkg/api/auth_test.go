package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(headers map[string]string) *echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func TestHeaderAuthenticator(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		wantUser string
	}{
		{
			name:     "oauth2-proxy user wins",
			headers:  map[string]string{"X-Workspace-ID": "ws-1", "X-Forwarded-User": "alice", "X-Forwarded-Email": "alice@example.com", "X-Remote-User": "bob"},
			wantUser: "alice",
		},
		{
			name:     "email fallback",
			headers:  map[string]string{"X-Workspace-ID": "ws-1", "X-Forwarded-Email": "alice@example.com"},
			wantUser: "alice@example.com",
		},
		{
			name:     "kube-rbac-proxy fallback",
			headers:  map[string]string{"X-Workspace-ID": "ws-1", "X-Remote-User": "bob"},
			wantUser: "bob",
		},
		{
			name:     "anonymous api client",
			headers:  map[string]string{"X-Workspace-ID": "ws-1"},
			wantUser: "api-client",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := HeaderAuthenticator{}.Authenticate(newAuthContext(tt.headers))
			require.NoError(t, err)
			assert.Equal(t, "ws-1", id.WorkspaceID)
			assert.Equal(t, tt.wantUser, id.UserID)
		})
	}
}

func TestHeaderAuthenticator_MissingWorkspace(t *testing.T) {
	_, err := HeaderAuthenticator{}.Authenticate(newAuthContext(nil))
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected echo.HTTPError")
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestRequireIdentity(t *testing.T) {
	e := echo.New()
	e.Use(requireIdentity(HeaderAuthenticator{}))
	e.GET("/whoami", func(c *echo.Context) error {
		id := callerIdentity(c)
		return c.String(http.StatusOK, id.WorkspaceID+"/"+id.UserID)
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-Workspace-ID", "ws-1")
	req.Header.Set("X-Forwarded-User", "alice")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ws-1/alice", rec.Body.String())

	// No workspace header: rejected before the handler runs.
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
