package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const (
	RoleAdmin    = "admin"
	RoleHR       = "hr"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && (r.act == p.act || p.act == "*")
`

// The role set is the fixed claim enum carried by the token, so policies
// are declared in code rather than loaded from storage.
var policies = [][]string{
	{RoleAdmin, "employee", "*"},
	{RoleAdmin, "masterdata", "*"},
	{RoleAdmin, "paydetail", "*"},
	{RoleAdmin, "payroll", "*"},

	{RoleHR, "employee", "read"},
	{RoleHR, "employee", "create"},
	{RoleHR, "employee", "update"},
	{RoleHR, "masterdata", "read"},
	{RoleHR, "masterdata", "create"},
	{RoleHR, "paydetail", "read"},
	{RoleHR, "payroll", "read"},

	{RoleManager, "employee", "read"},
	{RoleManager, "masterdata", "read"},
	{RoleManager, "payroll", "read"},

	{RoleEmployee, "payroll", "read"},
}

func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
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
