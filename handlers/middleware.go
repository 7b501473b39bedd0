package handlers

import (
	"net/http"
	"slices"

	"github.com/pocketbase/pocketbase/core"
)

// RequireRole rejects requests whose authenticated user does not carry one
// of the given roles. Superusers always pass. Unauthenticated requests get
// a 401, authenticated ones without a matching role a 403.
func RequireRole(roles ...string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if e.HasSuperuserAuth() {
			return e.Next()
		}

		if e.Auth == nil {
			return e.JSON(http.StatusUnauthorized, map[string]any{"error": "authentication required"})
		}

		role := e.Auth.GetString("role")
		if !slices.Contains(roles, role) {
			return e.JSON(http.StatusForbidden, map[string]any{"error": "insufficient role"})
		}

		return e.Next()
	}
}
