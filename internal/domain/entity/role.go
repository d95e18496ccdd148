// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role is a role claim carried by access tokens issued by the identity service.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleCourier  Role = "courier"
	RoleStore    Role = "store"
	// RoleDispatcher may initialize and override any delivery.
	RoleDispatcher Role = "dispatcher"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleCourier, RoleStore, RoleDispatcher:
		return true
	default:
		return false
	}
}

// Roles are the role claims of one caller.
type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// HasAny reports whether the caller holds at least one of the given roles.
func (rs Roles) HasAny(roles ...Role) bool {
	return slices.ContainsFunc(roles, rs.Contains)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings drops unknown role names, so a token minted for a newer
// role set still authenticates with the roles this service knows.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		if role := Role(s); role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
