package domain

// Role is the closed set of principal roles. Scope and mutation rules
// dispatch on it with exhaustive switches, so adding a role shows up as a
// compile-visible change in every dispatch site.
type Role string

const (
	RoleHRAdmin  Role = "HR_ADMIN"
	RoleManager  Role = "MANAGER"
	RoleEmployee Role = "EMPLOYEE"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleHRAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// Status is the lifecycle state of an employee or department record.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}
