package model

import "github.com/google/uuid"

type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleSupport   Role = "SUPPORT"
	RoleLandowner Role = "LANDOWNER"
	RoleDeveloper Role = "DEVELOPER"
)

// Principal is the authenticated caller extracted from the access token.
type Principal struct {
	UserID uuid.UUID
	Email  string
	Role   Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

func (p Principal) IsSupport() bool {
	return p.Role == RoleSupport
}

func (p Principal) IsLandowner() bool {
	return p.Role == RoleLandowner
}

func (p Principal) IsDeveloper() bool {
	return p.Role == RoleDeveloper
}
