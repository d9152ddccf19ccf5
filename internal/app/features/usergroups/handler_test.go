package usergroups_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/grouphub/internal/app/features/usergroups"
	"github.com/dalemusser/grouphub/internal/app/system/auth"
	"github.com/dalemusser/grouphub/internal/testutil"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const testActor = "test-admin"

func newTestHandler(t *testing.T) (*usergroups.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	handler := usergroups.NewHandler(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	return handler, fixtures
}

// do routes the request through the full feature router so URL params and
// middleware behave as in production.
func do(h *usergroups.Handler, method, target, body string, authed bool) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if authed {
		req = auth.WithTestActor(req, testActor)
	}
	rec := httptest.NewRecorder()
	usergroups.Routes(h).ServeHTTP(rec, req)
	return rec
}

func decodeGroup(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestHandleCreate_Success(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := do(handler, "POST", "/", `{
		"institutionId": "inst-1",
		"productId": "prod-io",
		"name": "Operators",
		"description": "ops crew",
		"members": ["`+uuid.NewString()+`"]
	}`, true)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d (%s)", rec.Code, http.StatusCreated, rec.Body.String())
	}
	got := decodeGroup(t, rec)
	if got["id"] == "" {
		t.Error("expected generated id")
	}
	if got["status"] != "ACTIVE" {
		t.Errorf("status: got %v, want ACTIVE", got["status"])
	}
	if got["createdBy"] != testActor {
		t.Errorf("createdBy: got %v, want %q", got["createdBy"], testActor)
	}
}

func TestHandleCreate_Unauthenticated(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := do(handler, "POST", "/", `{"institutionId":"i","productId":"p","name":"n"}`, false)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestHandleCreate_DuplicateName(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateGroup(ctx, "inst-1", "prod-io", "Operators")

	// Same name, different case: the fold index still rejects it.
	rec := do(handler, "POST", "/", `{"institutionId":"inst-1","productId":"prod-io","name":"OPERATORS"}`, true)
	if rec.Code != http.StatusConflict {
		t.Errorf("status: got %d, want %d (%s)", rec.Code, http.StatusConflict, rec.Body.String())
	}
}

func TestHandleGet_NotFound(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := do(handler, "GET", "/missing-id", "", true)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
	got := decodeGroup(t, rec)
	if got["code"] != "RESOURCE_NOT_FOUND" {
		t.Errorf("code: got %v, want RESOURCE_NOT_FOUND", got["code"])
	}
}

func TestHandleList_InvalidSort(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := do(handler, "GET", "/?sort=name", "", true)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
	got := decodeGroup(t, rec)
	if got["message"] != "Sorting not allowed without productId or institutionId" {
		t.Errorf("message: got %v", got["message"])
	}
}

func TestHandleList_ScopedPage(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateGroup(ctx, "inst-1", "prod-io", "Bravo")
	fixtures.CreateGroup(ctx, "inst-1", "prod-io", "Alpha")
	fixtures.CreateGroup(ctx, "inst-2", "prod-io", "Charlie")

	rec := do(handler, "GET", "/?institutionId=inst-1&sort=name", "", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d (%s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var page struct {
		Content []struct {
			Name string `json:"name"`
		} `json:"content"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&page); err != nil {
		t.Fatalf("decode page: %v", err)
	}
	if len(page.Content) != 2 {
		t.Fatalf("content: got %d groups, want 2", len(page.Content))
	}
	if page.Content[0].Name != "Alpha" || page.Content[1].Name != "Bravo" {
		t.Errorf("order: got %q, %q", page.Content[0].Name, page.Content[1].Name)
	}
}

func TestLifecycle_SuspendBlocksMemberAdd(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	g := fixtures.CreateGroup(ctx, "inst-1", "prod-io", "Operators")
	member := uuid.NewString()

	if rec := do(handler, "POST", "/"+g.ID+"/suspend", "", true); rec.Code != http.StatusNoContent {
		t.Fatalf("suspend: got %d (%s)", rec.Code, rec.Body.String())
	}

	rec := do(handler, "PUT", "/"+g.ID+"/members/"+member, "", true)
	if rec.Code != http.StatusConflict {
		t.Fatalf("add member to suspended: got %d, want %d", rec.Code, http.StatusConflict)
	}
	got := decodeGroup(t, rec)
	if got["message"] != "Trying to modify suspended group" {
		t.Errorf("message: got %v", got["message"])
	}

	if rec := do(handler, "POST", "/"+g.ID+"/activate", "", true); rec.Code != http.StatusNoContent {
		t.Fatalf("activate: got %d (%s)", rec.Code, rec.Body.String())
	}
	if rec := do(handler, "PUT", "/"+g.ID+"/members/"+member, "", true); rec.Code != http.StatusNoContent {
		t.Fatalf("add member after activate: got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestHandleAddMember_BadUUID(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	g := fixtures.CreateGroup(ctx, "inst-1", "prod-io", "Operators")

	rec := do(handler, "PUT", "/"+g.ID+"/members/not-a-uuid", "", true)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleDelete_Idempotent(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	g := fixtures.CreateGroup(ctx, "inst-1", "prod-io", "Operators")

	if rec := do(handler, "DELETE", "/"+g.ID, "", true); rec.Code != http.StatusNoContent {
		t.Fatalf("first delete: got %d (%s)", rec.Code, rec.Body.String())
	}
	if rec := do(handler, "DELETE", "/"+g.ID, "", true); rec.Code != http.StatusNoContent {
		t.Errorf("second delete: got %d, want %d", rec.Code, http.StatusNoContent)
	}

	// The group is still readable, now in DELETED state.
	rec := do(handler, "GET", "/"+g.ID, "", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("get after delete: got %d", rec.Code)
	}
	got := decodeGroup(t, rec)
	if got["status"] != "DELETED" {
		t.Errorf("status: got %v, want DELETED", got["status"])
	}
}

func TestHandleRemoveMemberEverywhere(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	member := uuid.NewString()
	fixtures.CreateGroup(ctx, "inst-1", "prod-io", "Operators", member)
	fixtures.CreateGroupWithStatus(ctx, "inst-1", "prod-io", "Reviewers", "SUSPENDED", member)

	rec := do(handler, "DELETE", "/members/"+member+"?institutionId=inst-1&productId=prod-io", "", true)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status: got %d (%s)", rec.Code, rec.Body.String())
	}

	// Repeating the call has nothing left to modify.
	rec = do(handler, "DELETE", "/members/"+member+"?institutionId=inst-1&productId=prod-io", "", true)
	if rec.Code != http.StatusConflict {
		t.Errorf("repeat status: got %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestHandleUpdate_SuspendedGroup(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	g := fixtures.CreateGroupWithStatus(ctx, "inst-1", "prod-io", "Operators", "SUSPENDED")

	rec := do(handler, "PUT", "/"+g.ID, `{"name":"Renamed"}`, true)
	if rec.Code != http.StatusConflict {
		t.Errorf("status: got %d, want %d (%s)", rec.Code, http.StatusConflict, rec.Body.String())
	}
}
