// internal/app/policy/workspacepolicy.go
//
// Package workspacepolicy holds the role gates for workspace-scoped
// mutations. Every authorization decision in the service routes through
// these helpers; there is no denormalized permission table.
package workspacepolicy

import (
	"github.com/dalemusser/taskhub/internal/domain/models"
)

// CanManageMembers reports whether role may add or remove members.
// Only admins manage membership.
func CanManageMembers(role models.Role) bool {
	return role == models.RoleAdmin
}

// CanCreateTask reports whether role may create tasks. Admins and
// editors can; viewers cannot.
func CanCreateTask(role models.Role) bool {
	return role.AtLeast(models.RoleEditor)
}

// CanUpdateTask reports whether role may flip a task's completion flag.
// Same gate as creation.
func CanUpdateTask(role models.Role) bool {
	return role.AtLeast(models.RoleEditor)
}

// CanDeleteTask reports whether role may delete tasks. Strictly admin:
// editors create and update but never delete.
func CanDeleteTask(role models.Role) bool {
	return role == models.RoleAdmin
}

// CanViewTasks reports whether role may read the workspace task list.
// Any membership suffices.
func CanViewTasks(role models.Role) bool {
	return role.AtLeast(models.RoleViewer)
}
