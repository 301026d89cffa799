package rbac

import (
	"testing"

	"go-employee/internal/domain"
	"go-employee/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	enforcer, err := infra.NewEnforcer()
	require.NoError(t, err)

	svc, err := NewService(enforcer, Permissions)
	require.NoError(t, err)
	return svc
}

func TestRBACService_Enforce(t *testing.T) {
	svc := newTestService(t)

	cases := []struct {
		role    string
		action  string
		allowed bool
	}{
		{domain.RoleViewer, ActionRead, true},
		{domain.RoleViewer, ActionCreate, false},
		{domain.RoleViewer, ActionUpdate, false},
		{domain.RoleViewer, ActionDelete, false},
		{domain.RoleManager, ActionRead, true},
		{domain.RoleManager, ActionCreate, false},
		{domain.RoleManager, ActionUpdate, true},
		{domain.RoleManager, ActionDelete, false},
		{domain.RoleHR, ActionCreate, true},
		{domain.RoleHR, ActionUpdate, true},
		{domain.RoleHR, ActionDelete, false},
		{domain.RoleAdmin, ActionCreate, true},
		{domain.RoleAdmin, ActionUpdate, true},
		{domain.RoleAdmin, ActionDelete, true},
	}

	for _, tc := range cases {
		t.Run(tc.role+"_"+tc.action, func(t *testing.T) {
			allowed, err := svc.Enforce(domain.EnforceRequest{
				Roles:    []string{tc.role},
				Resource: ResourceEmployee,
				Action:   tc.action,
			})
			assert.NoError(t, err)
			assert.Equal(t, tc.allowed, allowed)
		})
	}
}

func TestRBACService_EnforceAnyRole(t *testing.T) {
	svc := newTestService(t)

	allowed, err := svc.Enforce(domain.EnforceRequest{
		Roles:    []string{domain.RoleViewer, domain.RoleAdmin},
		Resource: ResourceEmployee,
		Action:   ActionDelete,
	})
	assert.NoError(t, err)
	assert.True(t, allowed)

	denied, err := svc.Enforce(domain.EnforceRequest{
		Roles:    nil,
		Resource: ResourceEmployee,
		Action:   ActionRead,
	})
	assert.NoError(t, err)
	assert.False(t, denied)

	unknown, err := svc.Enforce(domain.EnforceRequest{
		Roles:    []string{"ROOT"},
		Resource: ResourceEmployee,
		Action:   ActionRead,
	})
	assert.NoError(t, err)
	assert.False(t, unknown)
}

func TestRBACService_LoadPolicyReplaces(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.LoadPolicy([]domain.Permission{
		{Resource: ResourceEmployee, Action: ActionRead, Roles: []string{domain.RoleAdmin}},
	}))

	allowed, err := svc.Enforce(domain.EnforceRequest{
		Roles:    []string{domain.RoleViewer},
		Resource: ResourceEmployee,
		Action:   ActionRead,
	})
	assert.NoError(t, err)
	assert.False(t, allowed)
}
