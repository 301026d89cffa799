package rbac

import "go-employee/internal/domain"

const (
	ResourceEmployee = "employee"

	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Permissions is the operation to role table checked by the authorization gate.
var Permissions = []domain.Permission{
	{Resource: ResourceEmployee, Action: ActionRead, Roles: []string{domain.RoleViewer, domain.RoleManager, domain.RoleHR, domain.RoleAdmin}},
	{Resource: ResourceEmployee, Action: ActionCreate, Roles: []string{domain.RoleHR, domain.RoleAdmin}},
	{Resource: ResourceEmployee, Action: ActionUpdate, Roles: []string{domain.RoleManager, domain.RoleHR, domain.RoleAdmin}},
	{Resource: ResourceEmployee, Action: ActionDelete, Roles: []string{domain.RoleAdmin}},
}
