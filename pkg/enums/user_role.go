package enums

import "fmt"

// UserRole represents the platform's role partition.
type UserRole string

const (
	UserRoleMaster   UserRole = "MASTER"
	UserRoleOwner    UserRole = "OWNER"
	UserRoleChef     UserRole = "CHEF"
	UserRoleCustomer UserRole = "CUSTOMER"
)

var validUserRoles = []UserRole{
	UserRoleMaster,
	UserRoleOwner,
	UserRoleChef,
	UserRoleCustomer,
}

// String implements fmt.Stringer.
func (r UserRole) String() string {
	return string(r)
}

// IsValid reports whether the value is a known UserRole.
func (r UserRole) IsValid() bool {
	for _, candidate := range validUserRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseUserRole converts raw input into a UserRole.
func ParseUserRole(value string) (UserRole, error) {
	for _, candidate := range validUserRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid user role %q", value)
}
