package user

import "strings"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// IsAdmin gates catalog management, manual grants and the webhook ledger.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// NewRole accepts any letter case; stored roles are lower-case.
func NewRole(s string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
