package domain

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"
	RolePartner Role = "partner"
)

type User struct {
	ID           int32     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	PartnerID    *int32    `json:"partner_id,omitempty"`
	CreatedOn    time.Time `json:"created_on"`
}

// Actor is the authenticated caller of a workflow operation. Authentication
// happens at the HTTP boundary; services only check role and ownership.
type Actor struct {
	UserID int32
	Role   Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
