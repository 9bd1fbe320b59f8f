// internal/testutil/memstores.go
//
// In-memory stand-ins for the three backing stores. Handler tests run
// against these so authorization and lifecycle logic is exercised
// without MongoDB, Redis, or Neo4j. Each fake honors the same
// sentinels and semantics as the real adapter it mimics.
package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	friendstore "github.com/dalemusser/taskhub/internal/app/store/friends"
	taskstore "github.com/dalemusser/taskhub/internal/app/store/tasks"
	userstore "github.com/dalemusser/taskhub/internal/app/store/users"
	workspacestore "github.com/dalemusser/taskhub/internal/app/store/workspaces"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemUsers is an in-memory identity store.
type MemUsers struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]models.User
}

func NewMemUsers() *MemUsers {
	return &MemUsers{users: make(map[primitive.ObjectID]models.User)}
}

func (m *MemUsers) GetOrCreate(_ context.Context, username string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	u := models.User{ID: primitive.NewObjectID(), Username: username}
	m.users[u.ID] = u
	return u, nil
}

func (m *MemUsers) GetByID(_ context.Context, id primitive.ObjectID) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return models.User{}, userstore.ErrNotFound
	}
	return u, nil
}

func (m *MemUsers) List(_ context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (m *MemUsers) ListByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.User
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

// MemWorkspaces is an in-memory workspace store with embedded members.
type MemWorkspaces struct {
	mu         sync.Mutex
	workspaces map[primitive.ObjectID]models.Workspace
}

func NewMemWorkspaces() *MemWorkspaces {
	return &MemWorkspaces{workspaces: make(map[primitive.ObjectID]models.Workspace)}
}

func (m *MemWorkspaces) Create(_ context.Context, name string, creatorID primitive.ObjectID) (models.Workspace, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	ws := models.Workspace{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Members:   []models.Membership{{UserID: creatorID, Role: models.RoleAdmin}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.workspaces[ws.ID] = ws
	return ws, nil
}

func (m *MemWorkspaces) GetByID(_ context.Context, id primitive.ObjectID) (models.Workspace, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ws, ok := m.workspaces[id]
	if !ok {
		return models.Workspace{}, workspacestore.ErrNotFound
	}
	return ws, nil
}

func (m *MemWorkspaces) GetUserRole(_ context.Context, wsID, userID primitive.ObjectID) (models.Role, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ws, ok := m.workspaces[wsID]
	if !ok {
		return "", false, nil
	}
	role, ok := ws.RoleOf(userID)
	return role, ok, nil
}

func (m *MemWorkspaces) AddMember(_ context.Context, wsID, userID primitive.ObjectID, role models.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ws, ok := m.workspaces[wsID]
	if !ok {
		return workspacestore.ErrNotFound
	}
	if _, present := ws.RoleOf(userID); present {
		return workspacestore.ErrDuplicateMember
	}
	ws.Members = append(ws.Members, models.Membership{UserID: userID, Role: role})
	m.workspaces[wsID] = ws
	return nil
}

func (m *MemWorkspaces) RemoveMember(_ context.Context, wsID, userID primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ws, ok := m.workspaces[wsID]
	if !ok {
		return workspacestore.ErrNotFound
	}
	for i, mem := range ws.Members {
		if mem.UserID == userID {
			ws.Members = append(ws.Members[:i], ws.Members[i+1:]...)
			m.workspaces[wsID] = ws
			return nil
		}
	}
	return workspacestore.ErrMemberNotFound
}

func (m *MemWorkspaces) ListForUser(_ context.Context, userID primitive.ObjectID) ([]models.Workspace, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Workspace
	for _, ws := range m.workspaces {
		if _, ok := ws.RoleOf(userID); ok {
			out = append(out, ws)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// MemTasks is an in-memory task store.
type MemTasks struct {
	mu    sync.Mutex
	tasks map[primitive.ObjectID]models.Task
}

func NewMemTasks() *MemTasks {
	return &MemTasks{tasks: make(map[primitive.ObjectID]models.Task)}
}

func (m *MemTasks) Create(_ context.Context, wsID primitive.ObjectID, text, date string) (models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	task := models.Task{
		ID:          primitive.NewObjectID(),
		WorkspaceID: wsID,
		Text:        text,
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}
	m.tasks[task.ID] = task
	return task, nil
}

func (m *MemTasks) SetStatus(_ context.Context, wsID, taskID primitive.ObjectID, isDone bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	task, ok := m.tasks[taskID]
	if !ok || task.WorkspaceID != wsID {
		return taskstore.ErrNotFound
	}
	task.IsDone = isDone
	m.tasks[taskID] = task
	return nil
}

func (m *MemTasks) Delete(_ context.Context, wsID, taskID primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	task, ok := m.tasks[taskID]
	if !ok || task.WorkspaceID != wsID {
		return taskstore.ErrNotFound
	}
	delete(m.tasks, taskID)
	return nil
}

func (m *MemTasks) ListByDate(_ context.Context, wsID primitive.ObjectID, date string) ([]models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Task
	for _, task := range m.tasks {
		if task.WorkspaceID == wsID && task.Date == date {
			out = append(out, task)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// MemGraph is an in-memory symmetric friend graph.
type MemGraph struct {
	mu    sync.Mutex
	edges map[string]map[string]bool
}

func NewMemGraph() *MemGraph {
	return &MemGraph{edges: make(map[string]map[string]bool)}
}

func (m *MemGraph) link(a, b string) {
	if m.edges[a] == nil {
		m.edges[a] = make(map[string]bool)
	}
	m.edges[a][b] = true
}

func (m *MemGraph) AddFriend(_ context.Context, userID, friendID string) error {
	if userID == friendID {
		return friendstore.ErrSelfFriendship
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.link(userID, friendID)
	m.link(friendID, userID)
	return nil
}

func (m *MemGraph) RemoveFriend(_ context.Context, userID, friendID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.edges[userID], friendID)
	delete(m.edges[friendID], userID)
	return nil
}

func (m *MemGraph) ListFriends(_ context.Context, userID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.edges[userID]))
	for id := range m.edges[userID] {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

func (m *MemGraph) RecommendFriends(_ context.Context, userID string, limit int) ([]friendstore.Recommendation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	mutual := make(map[string]int64)
	for friend := range m.edges[userID] {
		for candidate := range m.edges[friend] {
			if candidate == userID || m.edges[userID][candidate] {
				continue
			}
			mutual[candidate]++
		}
	}

	out := make([]friendstore.Recommendation, 0, len(mutual))
	for id, n := range mutual {
		out = append(out, friendstore.Recommendation{UserID: id, MutualCount: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MutualCount != out[j].MutualCount {
			return out[i].MutualCount > out[j].MutualCount
		}
		return out[i].UserID < out[j].UserID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// MemStats is an in-memory counter store. Setting Err makes every
// operation fail, for exercising best-effort increment handling.
type MemStats struct {
	mu       sync.Mutex
	counters map[string]int64

	Err error
}

func NewMemStats() *MemStats {
	return &MemStats{counters: make(map[string]int64)}
}

func (m *MemStats) Increment(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.counters[key]++
	return nil
}

func (m *MemStats) Get(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	return m.counters[key], nil
}

func (m *MemStats) GetAllWithPrefix(_ context.Context, prefix string) (map[string]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := make(map[string]int64)
	for k, v := range m.counters {
		if strings.HasPrefix(k, prefix) {
			out[strings.TrimPrefix(k, prefix)] = v
		}
	}
	return out, nil
}
