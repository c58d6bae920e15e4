package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// identityKey is the echo context key the auth middleware stores the
// resolved Identity under.
const identityKey = "identity"

// Identity is the authenticated caller of one request.
type Identity struct {
	UserID      string
	WorkspaceID string
}

// Authenticator resolves the caller's identity from a request. The core sits
// behind an authenticating proxy, so the default implementation trusts
// proxy-injected headers; tests substitute a stub.
type Authenticator interface {
	Authenticate(c *echo.Context) (Identity, error)
}

// HeaderAuthenticator extracts identity from proxy headers.
// User priority: X-Forwarded-User (oauth2-proxy) > X-Forwarded-Email
// (oauth2-proxy) > X-Remote-User (kube-rbac-proxy) > "api-client".
// Workspace comes from X-Workspace-ID, which the proxy injects after
// checking the caller's workspace access.
type HeaderAuthenticator struct{}

// Authenticate implements Authenticator.
func (HeaderAuthenticator) Authenticate(c *echo.Context) (Identity, error) {
	workspace := c.Request().Header.Get("X-Workspace-ID")
	if workspace == "" {
		return Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "workspace identity is required")
	}
	return Identity{
		UserID:      extractUser(c),
		WorkspaceID: workspace,
	}, nil
}

func extractUser(c *echo.Context) string {
	if user := c.Request().Header.Get("X-Forwarded-User"); user != "" {
		return user
	}
	if email := c.Request().Header.Get("X-Forwarded-Email"); email != "" {
		return email
	}
	if user := c.Request().Header.Get("X-Remote-User"); user != "" {
		return user
	}
	return "api-client"
}

// requireIdentity returns middleware that authenticates every request and
// stores the Identity on the context.
func requireIdentity(authn Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			id, err := authn.Authenticate(c)
			if err != nil {
				return err
			}
			c.Set(identityKey, id)
			return next(c)
		}
	}
}

// callerIdentity reads the Identity stored by requireIdentity.
func callerIdentity(c *echo.Context) Identity {
	if id, ok := c.Get(identityKey).(Identity); ok {
		return id
	}
	return Identity{}
}
