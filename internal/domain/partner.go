package domain

import "time"

// RegistrationStatus tracks admin approval of a partner organization's
// registration. AccountStatus tracks whether the account may act at all.
// The two are orthogonal: an approved partner can still be blocked, and
// unblocking does not re-approve a rejected registration.
type RegistrationStatus string

const (
	RegistrationPending  RegistrationStatus = "PENDING"
	RegistrationApproved RegistrationStatus = "APPROVED"
	RegistrationRejected RegistrationStatus = "REJECTED"
)

type AccountStatus string

const (
	AccountActive  AccountStatus = "ACTIVE"
	AccountBlocked AccountStatus = "BLOCKED"
)

type Partner struct {
	ID                 int32              `json:"id"`
	OrganizationName   string             `json:"organization_name"`
	OrganizationType   string             `json:"organization_type"`
	ContactPerson      string             `json:"contact_person"`
	Email              string             `json:"email"`
	Phone              string             `json:"phone"`
	State              string             `json:"state"`
	District           string             `json:"district"`
	Address            string             `json:"address"`
	RegistrationStatus RegistrationStatus `json:"registration_status"`
	AccountStatus      AccountStatus      `json:"account_status"`
	RejectionReason    string             `json:"rejection_reason,omitempty"`
	ApprovedAt         *time.Time         `json:"approved_at,omitempty"`
	ApprovedBy         *int32             `json:"approved_by,omitempty"`
	UserID             int32              `json:"user_id"`
	CreatedOn          time.Time          `json:"created_on"`
}

// CanAct reports whether the partner may submit or modify trainings.
func (p *Partner) CanAct() bool {
	return p.RegistrationStatus == RegistrationApproved && p.AccountStatus == AccountActive
}
