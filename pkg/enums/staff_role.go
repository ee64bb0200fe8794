package enums

import "fmt"

// StaffRole is the host capability level carried in admin tokens.
type StaffRole string

const (
	StaffRoleAdministrator StaffRole = "administrator"
	StaffRoleShopManager   StaffRole = "shop_manager"
)

var validStaffRoles = []StaffRole{
	StaffRoleAdministrator,
	StaffRoleShopManager,
}

// IsValid reports whether the role is recognised.
func (r StaffRole) IsValid() bool {
	for _, candidate := range validStaffRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseStaffRole converts raw input into a StaffRole.
func ParseStaffRole(value string) (StaffRole, error) {
	for _, candidate := range validStaffRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid staff role %q", value)
}
