// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Role represents the kind of account an authenticated caller holds.
// Merchants and users live in separate collections; the role travels with the
// authenticated identity instead of being probed against both collections.
type Role string

const (
	// RoleUser indicates a regular customer account.
	RoleUser Role = "user"
	// RoleMerchant indicates a merchant account.
	RoleMerchant Role = "merchant"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleMerchant:
		return true
	default:
		return false
	}
}
