package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicyTable(t *testing.T) {
	e, err := NewEnforcer()
	assert.NoError(t, err)

	cases := []struct {
		role, resource, action string
		allowed                bool
	}{
		{RoleStudent, "meal_attendance", "mark", true},
		{RoleWard, "meal_attendance", "mark", false},
		{RoleCook, "meal_attendance", "read_stats", true},
		{RoleAdmin, "meal_attendance", "read_stats", true},
		{RoleStudent, "meal_attendance", "read_stats", false},

		{RoleStudent, "typed_attendance", "mark_general", true},
		{RoleWard, "typed_attendance", "mark_general", false},
		{RoleWard, "typed_attendance", "post_ward", true},
		{RoleStudent, "typed_attendance", "post_ward", false},
		{RoleAdmin, "typed_attendance", "verify", true},
		{RoleWard, "typed_attendance", "verify", false},

		{RoleCook, "menu", "write", true},
		{RoleStudent, "menu", "write", false},

		{RoleAdmin, "users", "manage", true},
		{RoleCook, "users", "manage", false},
	}

	for _, tc := range cases {
		allowed, err := e.Enforce(tc.role, tc.resource, tc.action)
		assert.NoError(t, err)
		assert.Equal(t, tc.allowed, allowed, "%s %s:%s", tc.role, tc.resource, tc.action)
	}
}
