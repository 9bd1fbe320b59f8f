package users_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/taskhub/internal/app/features/users"
	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"github.com/dalemusser/taskhub/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler() (*users.Handler, *testutil.MemUsers) {
	logger := zap.NewNop()
	store := testutil.NewMemUsers()
	return users.NewHandler(store, respond.NewErrorLogger(logger), logger), store
}

func TestHandleRegister(t *testing.T) {
	handler, _ := newTestHandler()

	req := testutil.NewJSONRequest(t, "POST", "/register", map[string]string{"username": "alice"})
	rec := httptest.NewRecorder()
	handler.HandleRegister(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		UserID   string `json:"user_id"`
		Username string `json:"username"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.UserID == "" {
		t.Error("expected user_id to be set")
	}
	if resp.Username != "alice" {
		t.Errorf("username: got %q, want %q", resp.Username, "alice")
	}
}

func TestHandleRegister_Idempotent(t *testing.T) {
	handler, _ := newTestHandler()

	register := func() string {
		req := testutil.NewJSONRequest(t, "POST", "/register", map[string]string{"username": "bob"})
		rec := httptest.NewRecorder()
		handler.HandleRegister(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
		}
		var resp struct {
			UserID string `json:"user_id"`
		}
		testutil.DecodeJSON(t, rec, &resp)
		return resp.UserID
	}

	first := register()
	second := register()
	if first != second {
		t.Errorf("expected the same user_id, got %q and %q", first, second)
	}
}

func TestHandleRegister_MissingUsername(t *testing.T) {
	handler, _ := newTestHandler()

	req := testutil.NewJSONRequest(t, "POST", "/register", map[string]string{"username": "   "})
	rec := httptest.NewRecorder()
	handler.HandleRegister(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleRegister_BadJSON(t *testing.T) {
	handler, _ := newTestHandler()

	req := httptest.NewRequest("POST", "/register", nil)
	rec := httptest.NewRecorder()
	handler.HandleRegister(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleList(t *testing.T) {
	handler, store := newTestHandler()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, name := range []string{"zoe", "adam"} {
		if _, err := store.GetOrCreate(ctx, name); err != nil {
			t.Fatalf("seed user failed: %v", err)
		}
	}

	req := httptest.NewRequest("GET", "/users", nil)
	rec := httptest.NewRecorder()
	handler.HandleList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Users []struct {
			UserID   string `json:"user_id"`
			Username string `json:"username"`
		} `json:"users"`
		Count int `json:"count"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Count != 2 {
		t.Fatalf("count: got %d, want 2", resp.Count)
	}
	if resp.Users[0].Username != "adam" || resp.Users[1].Username != "zoe" {
		t.Errorf("expected users sorted by username, got %+v", resp.Users)
	}
}
