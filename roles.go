package authclient

// Role is the single flat access level carried by a credential.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// Destination is one of the three logical navigation targets.
type Destination string

const (
	DestinationEntry Destination = "entry"
	DestinationAdmin Destination = "admin-dashboard"
	DestinationUser  Destination = "user-dashboard"
)

// IsValid checks if the role is one of the predefined valid roles
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	default:
		return false
	}
}

// Destination maps a role to its dashboard. Unknown roles land on the entry
// point; the decoder rejects them before they ever reach navigation.
func (r Role) Destination() Destination {
	switch r {
	case RoleAdmin:
		return DestinationAdmin
	case RoleUser:
		return DestinationUser
	default:
		return DestinationEntry
	}
}

// GetAllRoles returns all predefined roles
func GetAllRoles() []Role {
	return []Role{RoleAdmin, RoleUser}
}

// ParseRole safely parses a string into a Role type
func ParseRole(roleStr string) (Role, bool) {
	role := Role(roleStr)
	return role, role.IsValid()
}
