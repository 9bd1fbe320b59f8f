package workspaces_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/taskhub/internal/app/features/tasks"
	"github.com/dalemusser/taskhub/internal/app/features/workspaces"
	statstore "github.com/dalemusser/taskhub/internal/app/store/stats"
	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"github.com/dalemusser/taskhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// testEnv bundles the in-memory stores behind a mounted workspaces
// router, mirroring the wiring in bootstrap.BuildHandler.
type testEnv struct {
	router http.Handler
	users  *testutil.MemUsers
	ws     *testutil.MemWorkspaces
	stats  *testutil.MemStats
}

func newTestEnv() *testEnv {
	logger := zap.NewNop()
	errLog := respond.NewErrorLogger(logger)

	env := &testEnv{
		users: testutil.NewMemUsers(),
		ws:    testutil.NewMemWorkspaces(),
		stats: testutil.NewMemStats(),
	}

	th := tasks.NewHandler(testutil.NewMemTasks(), env.ws, env.stats, errLog, logger)
	wh := workspaces.NewHandler(env.ws, env.users, env.stats, errLog, logger)
	env.router = workspaces.Routes(wh, th)
	return env
}

func (e *testEnv) seedUser(t *testing.T, username string) models.User {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()
	u, err := e.users.GetOrCreate(ctx, username)
	if err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	return u
}

func (e *testEnv) seedWorkspace(t *testing.T, name string, creator primitive.ObjectID) models.Workspace {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()
	ws, err := e.ws.Create(ctx, name, creator)
	if err != nil {
		t.Fatalf("seed workspace failed: %v", err)
	}
	return ws
}

func (e *testEnv) seedMember(t *testing.T, wsID, userID primitive.ObjectID, role models.Role) {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := e.ws.AddMember(ctx, wsID, userID, role); err != nil {
		t.Fatalf("seed member failed: %v", err)
	}
}

func (e *testEnv) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	req := testutil.NewJSONRequest(t, method, target, body)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestHandleCreate(t *testing.T) {
	env := newTestEnv()
	creator := env.seedUser(t, "alice")

	rec := env.do(t, "POST", "/", map[string]string{
		"name":    "Team Alpha",
		"user_id": creator.ID.Hex(),
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d (body %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var resp struct {
		WorkspaceID string `json:"workspace_id"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	wsID, err := primitive.ObjectIDFromHex(resp.WorkspaceID)
	if err != nil {
		t.Fatalf("workspace_id is not a valid id: %v", err)
	}

	// The creator is the sole member, with the admin role.
	ctx, cancel := testutil.TestContext()
	defer cancel()
	role, found, err := env.ws.GetUserRole(ctx, wsID, creator.ID)
	if err != nil {
		t.Fatalf("GetUserRole failed: %v", err)
	}
	if !found || role != models.RoleAdmin {
		t.Errorf("creator role: got (%q, %v), want (admin, true)", role, found)
	}
}

func TestHandleCreate_UnknownUser(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, "POST", "/", map[string]string{
		"name":    "Ghost Team",
		"user_id": primitive.NewObjectID().Hex(),
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandleCreate_MissingName(t *testing.T) {
	env := newTestEnv()
	creator := env.seedUser(t, "alice")

	rec := env.do(t, "POST", "/", map[string]string{
		"name":    "  ",
		"user_id": creator.ID.Hex(),
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleList(t *testing.T) {
	env := newTestEnv()
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")

	mine := env.seedWorkspace(t, "Mine", alice.ID)
	shared := env.seedWorkspace(t, "Shared", bob.ID)
	env.seedMember(t, shared.ID, alice.ID, models.RoleViewer)
	env.seedWorkspace(t, "Not Mine", bob.ID)

	rec := env.do(t, "GET", "/?user_id="+alice.ID.Hex(), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Workspaces []struct {
			WorkspaceID string `json:"workspace_id"`
			Name        string `json:"name"`
			Role        string `json:"role"`
		} `json:"workspaces"`
		Count int `json:"count"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Count != 2 {
		t.Fatalf("count: got %d, want 2", resp.Count)
	}

	roles := map[string]string{}
	for _, ws := range resp.Workspaces {
		roles[ws.WorkspaceID] = ws.Role
	}
	if roles[mine.ID.Hex()] != "admin" {
		t.Errorf("role in own workspace: got %q, want admin", roles[mine.ID.Hex()])
	}
	if roles[shared.ID.Hex()] != "viewer" {
		t.Errorf("role in shared workspace: got %q, want viewer", roles[shared.ID.Hex()])
	}
}

func TestHandleAddMember(t *testing.T) {
	env := newTestEnv()
	admin := env.seedUser(t, "admin")
	target := env.seedUser(t, "newbie")
	ws := env.seedWorkspace(t, "Team", admin.ID)

	rec := env.do(t, "POST", "/"+ws.ID.Hex()+"/members", map[string]string{
		"admin_id": admin.ID.Hex(),
		"user_id":  target.ID.Hex(),
		"role":     "editor",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	// The new membership is immediately visible.
	ctx, cancel := testutil.TestContext()
	defer cancel()
	role, found, err := env.ws.GetUserRole(ctx, ws.ID, target.ID)
	if err != nil {
		t.Fatalf("GetUserRole failed: %v", err)
	}
	if !found || role != models.RoleEditor {
		t.Errorf("target role: got (%q, %v), want (editor, true)", role, found)
	}

	// The members_added counter was bumped.
	n, err := env.stats.Get(ctx, statstore.WorkspaceKey(ws.ID, statstore.MetricMembersAdded))
	if err != nil {
		t.Fatalf("read counter failed: %v", err)
	}
	if n != 1 {
		t.Errorf("members_added: got %d, want 1", n)
	}
}

func TestHandleAddMember_NonAdmin(t *testing.T) {
	env := newTestEnv()
	admin := env.seedUser(t, "admin")
	editor := env.seedUser(t, "editor")
	target := env.seedUser(t, "newbie")
	ws := env.seedWorkspace(t, "Team", admin.ID)
	env.seedMember(t, ws.ID, editor.ID, models.RoleEditor)

	rec := env.do(t, "POST", "/"+ws.ID.Hex()+"/members", map[string]string{
		"admin_id": editor.ID.Hex(),
		"user_id":  target.ID.Hex(),
		"role":     "viewer",
	})
	if rec.Code != http.StatusForbidden {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestHandleAddMember_Duplicate(t *testing.T) {
	env := newTestEnv()
	admin := env.seedUser(t, "admin")
	target := env.seedUser(t, "newbie")
	ws := env.seedWorkspace(t, "Team", admin.ID)
	env.seedMember(t, ws.ID, target.ID, models.RoleViewer)

	rec := env.do(t, "POST", "/"+ws.ID.Hex()+"/members", map[string]string{
		"admin_id": admin.ID.Hex(),
		"user_id":  target.ID.Hex(),
		"role":     "editor",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}

	// The original role must be untouched.
	ctx, cancel := testutil.TestContext()
	defer cancel()
	role, _, err := env.ws.GetUserRole(ctx, ws.ID, target.ID)
	if err != nil {
		t.Fatalf("GetUserRole failed: %v", err)
	}
	if role != models.RoleViewer {
		t.Errorf("role after duplicate add: got %q, want viewer", role)
	}
}

func TestHandleAddMember_BadRole(t *testing.T) {
	env := newTestEnv()
	admin := env.seedUser(t, "admin")
	target := env.seedUser(t, "newbie")
	ws := env.seedWorkspace(t, "Team", admin.ID)

	rec := env.do(t, "POST", "/"+ws.ID.Hex()+"/members", map[string]string{
		"admin_id": admin.ID.Hex(),
		"user_id":  target.ID.Hex(),
		"role":     "owner",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleAddMember_WorkspaceNotFound(t *testing.T) {
	env := newTestEnv()
	admin := env.seedUser(t, "admin")

	rec := env.do(t, "POST", "/"+primitive.NewObjectID().Hex()+"/members", map[string]string{
		"admin_id": admin.ID.Hex(),
		"user_id":  admin.ID.Hex(),
		"role":     "viewer",
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandleAddMember_CounterFailureIsSwallowed(t *testing.T) {
	env := newTestEnv()
	admin := env.seedUser(t, "admin")
	target := env.seedUser(t, "newbie")
	ws := env.seedWorkspace(t, "Team", admin.ID)

	env.stats.Err = errors.New("redis down")

	rec := env.do(t, "POST", "/"+ws.ID.Hex()+"/members", map[string]string{
		"admin_id": admin.ID.Hex(),
		"user_id":  target.ID.Hex(),
		"role":     "viewer",
	})
	// The membership write succeeded, so the counter failure must not
	// surface to the client.
	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestHandleRemoveMember(t *testing.T) {
	env := newTestEnv()
	admin := env.seedUser(t, "admin")
	target := env.seedUser(t, "leaver")
	ws := env.seedWorkspace(t, "Team", admin.ID)
	env.seedMember(t, ws.ID, target.ID, models.RoleEditor)

	rec := env.do(t, "DELETE", "/"+ws.ID.Hex()+"/members", map[string]string{
		"requester_id": admin.ID.Hex(),
		"target_id":    target.ID.Hex(),
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	_, found, err := env.ws.GetUserRole(ctx, ws.ID, target.ID)
	if err != nil {
		t.Fatalf("GetUserRole failed: %v", err)
	}
	if found {
		t.Error("expected member to be removed")
	}

	n, err := env.stats.Get(ctx, statstore.WorkspaceKey(ws.ID, statstore.MetricMembersRemoved))
	if err != nil {
		t.Fatalf("read counter failed: %v", err)
	}
	if n != 1 {
		t.Errorf("members_removed: got %d, want 1", n)
	}
}

func TestHandleRemoveMember_Self(t *testing.T) {
	env := newTestEnv()
	admin := env.seedUser(t, "admin")
	ws := env.seedWorkspace(t, "Team", admin.ID)

	rec := env.do(t, "DELETE", "/"+ws.ID.Hex()+"/members", map[string]string{
		"requester_id": admin.ID.Hex(),
		"target_id":    admin.ID.Hex(),
	})
	if rec.Code != http.StatusForbidden {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestHandleRemoveMember_NonAdmin(t *testing.T) {
	env := newTestEnv()
	admin := env.seedUser(t, "admin")
	editor := env.seedUser(t, "editor")
	ws := env.seedWorkspace(t, "Team", admin.ID)
	env.seedMember(t, ws.ID, editor.ID, models.RoleEditor)

	rec := env.do(t, "DELETE", "/"+ws.ID.Hex()+"/members", map[string]string{
		"requester_id": editor.ID.Hex(),
		"target_id":    admin.ID.Hex(),
	})
	if rec.Code != http.StatusForbidden {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestHandleRemoveMember_NotAMember(t *testing.T) {
	env := newTestEnv()
	admin := env.seedUser(t, "admin")
	ws := env.seedWorkspace(t, "Team", admin.ID)

	rec := env.do(t, "DELETE", "/"+ws.ID.Hex()+"/members", map[string]string{
		"requester_id": admin.ID.Hex(),
		"target_id":    primitive.NewObjectID().Hex(),
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandleListMembers(t *testing.T) {
	env := newTestEnv()
	admin := env.seedUser(t, "admin")
	viewer := env.seedUser(t, "viewer")
	ws := env.seedWorkspace(t, "Team", admin.ID)
	env.seedMember(t, ws.ID, viewer.ID, models.RoleViewer)

	rec := env.do(t, "GET", "/"+ws.ID.Hex()+"/members", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Members []struct {
			UserID   string `json:"user_id"`
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"members"`
		Count int `json:"count"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Count != 2 {
		t.Fatalf("count: got %d, want 2", resp.Count)
	}

	byID := map[string]struct{ Username, Role string }{}
	for _, m := range resp.Members {
		byID[m.UserID] = struct{ Username, Role string }{m.Username, m.Role}
	}
	if got := byID[admin.ID.Hex()]; got.Username != "admin" || got.Role != "admin" {
		t.Errorf("admin member: got %+v", got)
	}
	if got := byID[viewer.ID.Hex()]; got.Username != "viewer" || got.Role != "viewer" {
		t.Errorf("viewer member: got %+v", got)
	}
}

func TestHandleListMembers_WorkspaceNotFound(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, "GET", "/"+primitive.NewObjectID().Hex()+"/members", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandleStats(t *testing.T) {
	env := newTestEnv()
	admin := env.seedUser(t, "admin")
	a := env.seedUser(t, "a")
	b := env.seedUser(t, "b")
	ws := env.seedWorkspace(t, "Team", admin.ID)

	for _, u := range []models.User{a, b} {
		rec := env.do(t, "POST", "/"+ws.ID.Hex()+"/members", map[string]string{
			"admin_id": admin.ID.Hex(),
			"user_id":  u.ID.Hex(),
			"role":     "viewer",
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("add member failed: %d", rec.Code)
		}
	}

	rec := env.do(t, "GET", "/"+ws.ID.Hex()+"/stats", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		WorkspaceID string           `json:"workspace_id"`
		Stats       map[string]int64 `json:"stats"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.WorkspaceID != ws.ID.Hex() {
		t.Errorf("workspace_id: got %q, want %q", resp.WorkspaceID, ws.ID.Hex())
	}
	if resp.Stats[statstore.MetricMembersAdded] != 2 {
		t.Errorf("members_added: got %d, want 2", resp.Stats[statstore.MetricMembersAdded])
	}
}
