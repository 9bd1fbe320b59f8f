package friends_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/taskhub/internal/app/features/friends"
	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"github.com/dalemusser/taskhub/internal/testutil"
	"go.uber.org/zap"
)

func newTestRouter() (http.Handler, *testutil.MemGraph) {
	logger := zap.NewNop()
	graph := testutil.NewMemGraph()
	handler := friends.NewHandler(graph, respond.NewErrorLogger(logger), logger)
	return friends.Routes(handler), graph
}

func addFriend(t *testing.T, router http.Handler, userID, friendID string) *httptest.ResponseRecorder {
	t.Helper()
	req := testutil.NewJSONRequest(t, "POST", "/", map[string]string{
		"user_id":   userID,
		"friend_id": friendID,
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleAdd_Symmetric(t *testing.T) {
	router, _ := newTestRouter()

	if rec := addFriend(t, router, "u1", "u2"); rec.Code != http.StatusOK {
		t.Fatalf("add status: got %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	// Both endpoints must see the friendship.
	for user, want := range map[string]string{"u1": "u2", "u2": "u1"} {
		req := httptest.NewRequest("GET", "/"+user, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("list status: got %d, want %d", rec.Code, http.StatusOK)
		}
		var resp struct {
			Friends []string `json:"friends"`
			Count   int      `json:"count"`
		}
		testutil.DecodeJSON(t, rec, &resp)
		if resp.Count != 1 || resp.Friends[0] != want {
			t.Errorf("%s's friends: got %v, want [%s]", user, resp.Friends, want)
		}
	}
}

func TestHandleAdd_Self(t *testing.T) {
	router, _ := newTestRouter()

	rec := addFriend(t, router, "u1", "u1")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleAdd_MissingField(t *testing.T) {
	router, _ := newTestRouter()

	rec := addFriend(t, router, "u1", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleRemove_Idempotent(t *testing.T) {
	router, _ := newTestRouter()

	if rec := addFriend(t, router, "u1", "u2"); rec.Code != http.StatusOK {
		t.Fatalf("add failed: %d", rec.Code)
	}

	remove := func() int {
		req := testutil.NewJSONRequest(t, "DELETE", "/", map[string]string{
			"user_id":   "u2",
			"friend_id": "u1",
		})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := remove(); code != http.StatusOK {
		t.Errorf("first remove: got %d, want %d", code, http.StatusOK)
	}
	// Removing a friendship that no longer exists is still a success.
	if code := remove(); code != http.StatusOK {
		t.Errorf("second remove: got %d, want %d", code, http.StatusOK)
	}

	req := httptest.NewRequest("GET", "/u1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	var resp struct {
		Count int `json:"count"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Count != 0 {
		t.Errorf("expected no friends after removal, count %d", resp.Count)
	}
}

func TestHandleList_EmptyGraph(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest("GET", "/stranger", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	var resp struct {
		Friends []string `json:"friends"`
		Count   int      `json:"count"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Friends == nil {
		t.Error("expected friends to be an empty list, not null")
	}
	if resp.Count != 0 {
		t.Errorf("count: got %d, want 0", resp.Count)
	}
}

func TestHandleRecommendations_Ranking(t *testing.T) {
	router, _ := newTestRouter()

	// u shares two friends with c and one with d; d and c are not
	// friends of u.
	for _, p := range [][2]string{{"u", "f1"}, {"u", "f2"}, {"f1", "c"}, {"f2", "c"}, {"f1", "d"}} {
		if rec := addFriend(t, router, p[0], p[1]); rec.Code != http.StatusOK {
			t.Fatalf("add %v failed: %d", p, rec.Code)
		}
	}

	req := httptest.NewRequest("GET", "/u/recommendations", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	var resp struct {
		Recommendations []struct {
			UserID      string `json:"user_id"`
			MutualCount int64  `json:"mutual_count"`
		} `json:"recommendations"`
		Count int `json:"count"`
	}
	testutil.DecodeJSON(t, rec, &resp)

	if resp.Count != 2 {
		t.Fatalf("count: got %d, want 2 (%+v)", resp.Count, resp.Recommendations)
	}
	if resp.Recommendations[0].UserID != "c" || resp.Recommendations[0].MutualCount != 2 {
		t.Errorf("first rec: got %+v, want c with 2 mutuals", resp.Recommendations[0])
	}
	if resp.Recommendations[1].UserID != "d" || resp.Recommendations[1].MutualCount != 1 {
		t.Errorf("second rec: got %+v, want d with 1 mutual", resp.Recommendations[1])
	}
}

func TestHandleRecommendations_Limit(t *testing.T) {
	router, _ := newTestRouter()

	for _, p := range [][2]string{{"u", "f"}, {"f", "c1"}, {"f", "c2"}, {"f", "c3"}} {
		if rec := addFriend(t, router, p[0], p[1]); rec.Code != http.StatusOK {
			t.Fatalf("add %v failed: %d", p, rec.Code)
		}
	}

	req := httptest.NewRequest("GET", "/u/recommendations?limit=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp struct {
		Count int `json:"count"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Count != 2 {
		t.Errorf("count: got %d, want 2", resp.Count)
	}
}

func TestHandleRecommendations_BadLimit(t *testing.T) {
	router, _ := newTestRouter()

	for _, raw := range []string{"zero", "0", "-3"} {
		req := httptest.NewRequest("GET", "/u/recommendations?limit="+raw, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("limit=%s: got %d, want %d", raw, rec.Code, http.StatusBadRequest)
		}
	}
}
