// internal/app/features/workspaces/types.go
package workspaces

// statusResponse is the body for mutations that return no entity.
type statusResponse struct {
	Status string `json:"status"`
}

var statusOK = statusResponse{Status: "ok"}

// workspaceView is one workspace in a listing, seen from the
// requesting user's perspective.
type workspaceView struct {
	WorkspaceID string `json:"workspace_id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	MemberCount int    `json:"member_count"`
}

// memberView is one membership with the username resolved from the
// users collection.
type memberView struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
