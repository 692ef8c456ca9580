// Package rbac pins the role-to-operation contract. The role set is closed
// (admin, cook, student, ward) and the mapping is part of the API contract,
// so the policy lives in code rather than in a mutable store.
package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const (
	RoleAdmin   = "admin"
	RoleCook    = "cook"
	RoleStudent = "student"
	RoleWard    = "ward"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// policies is the full role-to-operation table. A route without an
// Authorize wrapper is open to every authenticated role.
var policies = [][]string{
	{RoleStudent, "meal_attendance", "mark"},
	{RoleStudent, "meal_attendance", "read_own"},
	{RoleAdmin, "meal_attendance", "read_stats"},
	{RoleCook, "meal_attendance", "read_stats"},

	{RoleStudent, "typed_attendance", "mark_general"},
	{RoleWard, "typed_attendance", "post_ward"},
	{RoleAdmin, "typed_attendance", "read_all"},
	{RoleAdmin, "typed_attendance", "verify"},

	{RoleStudent, "movement", "checkout"},
	{RoleStudent, "movement", "checkin"},

	{RoleAdmin, "menu", "write"},
	{RoleCook, "menu", "write"},

	{RoleAdmin, "users", "manage"},
}

// NewEnforcer builds the static enforcer used by the Authorize middleware.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policies {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return e, nil
}
