package domain

import "time"

type TrainingStatus string

const (
	TrainingStatusPending  TrainingStatus = "PENDING"
	TrainingStatusApproved TrainingStatus = "APPROVED"
	TrainingStatusRejected TrainingStatus = "REJECTED"
)

// Location is where a training took place. Latitude/longitude are optional;
// events entered without map coordinates keep them nil.
type Location struct {
	State     string   `json:"state"`
	District  string   `json:"district"`
	City      string   `json:"city"`
	Pincode   string   `json:"pincode"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// MediaFile references an object held by the storage gateway. PublicID is the
// gateway's opaque identifier; it may be empty for legacy records that only
// carry a URL.
type MediaFile struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id,omitempty"`
	Filename string `json:"filename"`
}

type ParticipantBreakdown struct {
	Government int32 `json:"government"`
	NGO        int32 `json:"ngo"`
	Volunteers int32 `json:"volunteers"`
}

// TrainingEvent is a single training session submitted by a partner. Exactly
// one of ApprovedAt/ApprovedBy (APPROVED) or RejectionReason (REJECTED) is
// meaningful; a PENDING event carries neither.
type TrainingEvent struct {
	ID                   int32                `json:"id"`
	Title                string               `json:"title"`
	Theme                string               `json:"theme"`
	Description          string               `json:"description"`
	StartDate            string               `json:"start_date"` // YYYY-MM-DD
	EndDate              string               `json:"end_date"`   // YYYY-MM-DD
	Location             Location             `json:"location"`
	TrainerName          string               `json:"trainer_name"`
	TrainerEmail         string               `json:"trainer_email"`
	ParticipantsCount    int32                `json:"participants_count"`
	ParticipantBreakdown ParticipantBreakdown `json:"participant_breakdown"`
	Photos               []MediaFile          `json:"photos"`
	AttendanceSheet      *MediaFile           `json:"attendance_sheet,omitempty"`
	Status               TrainingStatus       `json:"status"`
	RejectionReason      string               `json:"rejection_reason,omitempty"`
	PartnerID            int32                `json:"partner_id"`
	ApprovedAt           *time.Time           `json:"approved_at,omitempty"`
	ApprovedBy           *int32               `json:"approved_by,omitempty"`
	CreatedOn            time.Time            `json:"created_on"`
	UpdatedOn            time.Time            `json:"updated_on"`
}

// TrainingFilter narrows List queries. Zero values mean "no constraint".
type TrainingFilter struct {
	Status    TrainingStatus
	PartnerID int32
	Theme     string
	State     string
}
