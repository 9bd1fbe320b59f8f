// internal/app/features/tasks/types.go
package tasks

// statusResponse is the body for mutations that return no entity.
type statusResponse struct {
	Status string `json:"status"`
}

var statusOK = statusResponse{Status: "ok"}
