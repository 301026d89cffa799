package domain

const (
	RoleViewer  = "VIEWER"
	RoleManager = "MANAGER"
	RoleHR      = "HR"
	RoleAdmin   = "ADMIN"
)

// Roles lists every role the API knows about.
var Roles = []string{RoleViewer, RoleManager, RoleHR, RoleAdmin}

// EnforceRequest asks whether any of Roles may perform Action on Resource.
type EnforceRequest struct {
	Roles    []string
	Resource string
	Action   string
}

// Permission grants an action on a resource to a set of roles.
type Permission struct {
	Resource string
	Action   string
	Roles    []string
}
