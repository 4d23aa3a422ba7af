package entities

type Role string

const (
	RoleStudent         Role = "STUDENT"
	RoleCompany         Role = "COMPANY"
	RoleMentor          Role = "MENTOR"
	RoleUniversityAdmin Role = "UNIVERSITY_ADMIN"
	RoleSuperAdmin      Role = "SUPER_ADMIN"
)

// Caller is the verified identity behind a request.
type Caller struct {
	UserID string
	Role   Role
}

func (c Caller) IsSuperAdmin() bool {
	return c.Role == RoleSuperAdmin
}
