package user

import "time"

type Role string

const (
	RoleStudent        Role = "student"         // Regular employee/student, applies for leave
	RoleCounselor      Role = "counselor"       // Approves leaves of assigned students
	RoleHOD            Role = "hod"             // Head of department - full access
	RolePayrollOfficer Role = "payroll_officer" // Reads leave data for payroll, no approvals
)

// Roles is the closed set of recognized roles.
var Roles = []Role{RoleStudent, RoleCounselor, RoleHOD, RolePayrollOfficer}

func IsValidRole(r Role) bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role

	// CounselorID is a weak reference to another user with role counselor.
	// It scopes visibility only, never ownership.
	CounselorID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Actor identifies the caller of an engine operation. Handlers build it from
// verified token claims; services never reach into ambient session state.
type Actor struct {
	ID   string
	Role Role
}

// CanApprove checks if the actor can approve or reject leave requests
func (a Actor) CanApprove() bool {
	return a.Role == RoleCounselor || a.Role == RoleHOD
}

// IsHOD checks if the actor has department-wide access
func (a Actor) IsHOD() bool {
	return a.Role == RoleHOD
}
