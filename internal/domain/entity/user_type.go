// Package entity contains the core business objects of the project.
package entity

// UserType identifies which side of a delivery a viewer session belongs to.
type UserType string

const (
	// UserTypeCustomer is the buyer following the order.
	UserTypeCustomer UserType = "customer"
	// UserTypeCourier is the delivery partner.
	UserTypeCourier UserType = "courier"
	// UserTypeStore is the shopkeeper preparing the order.
	UserTypeStore UserType = "store"
)

// String returns the string representation of the UserType.
func (u UserType) String() string {
	return string(u)
}

// IsValid checks if the UserType is a valid value.
func (u UserType) IsValid() bool {
	switch u {
	case UserTypeCustomer, UserTypeCourier, UserTypeStore:
		return true
	default:
		return false
	}
}

// UserTypeFromRoles picks the viewer type for a set of token roles.
// Dispatchers watch deliveries with the store's visibility.
func UserTypeFromRoles(roles Roles) UserType {
	switch {
	case roles.Contains(RoleCourier):
		return UserTypeCourier
	case roles.Contains(RoleStore), roles.Contains(RoleDispatcher):
		return UserTypeStore
	default:
		return UserTypeCustomer
	}
}
