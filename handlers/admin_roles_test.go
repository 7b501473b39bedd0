package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"importmanager/testhelpers"
)

func TestHandleSetUserRole_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	user := testhelpers.CreateTestUser(t, app, "promotee@example.com", "viewer")

	handler := HandleSetUserRole(app)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/users/"+user.Id+"/role", strings.NewReader(`{"role": "manager"}`))
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue("id", user.Id)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	saved, err := app.FindRecordById("users", user.Id)
	if err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if saved.GetString("role") != "manager" {
		t.Errorf("role = %q, want manager", saved.GetString("role"))
	}
}

func TestHandleSetUserRole_UnknownRole(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	user := testhelpers.CreateTestUser(t, app, "someone@example.com", "viewer")

	handler := HandleSetUserRole(app)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/users/"+user.Id+"/role", strings.NewReader(`{"role": "superadmin"}`))
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue("id", user.Id)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}

	saved, err := app.FindRecordById("users", user.Id)
	if err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if saved.GetString("role") != "viewer" {
		t.Errorf("role changed to %q on invalid request", saved.GetString("role"))
	}
}

func TestHandleSetUserRole_UserNotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleSetUserRole(app)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/users/nonexistent/role", strings.NewReader(`{"role": "admin"}`))
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue("id", "nonexistent")
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}
