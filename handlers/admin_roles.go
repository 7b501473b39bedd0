package handlers

import (
	"log"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"importmanager/collections"
)

type setRoleRequest struct {
	Role string `json:"role"`
}

func (r setRoleRequest) Validate() error {
	roles := make([]any, 0, len(collections.UserRoles))
	for _, role := range collections.UserRoles {
		roles = append(roles, role)
	}

	return validation.ValidateStruct(&r,
		validation.Field(&r.Role, validation.Required, validation.In(roles...)),
	)
}

// HandleSetUserRole assigns a role to a user. The route is guarded by
// RequireRole("admin") in main.
func HandleSetUserRole(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		user, err := app.FindRecordById("users", id)
		if err != nil {
			log.Printf("set_role: user %s not found: %v", id, err)
			return e.JSON(http.StatusNotFound, map[string]any{"error": "user not found"})
		}

		var req setRoleRequest
		if err := e.BindBody(&req); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		}
		if err := req.Validate(); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
		}

		user.Set("role", req.Role)
		if err := app.Save(user); err != nil {
			log.Printf("set_role: could not update user %s: %v", id, err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "could not update user"})
		}

		return e.JSON(http.StatusOK, map[string]any{
			"id":   user.Id,
			"role": req.Role,
		})
	}
}
