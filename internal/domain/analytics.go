package domain

// DashboardStats feeds the admin landing page.
type DashboardStats struct {
	TotalTrainings    int32 `json:"total_trainings"`
	ActivePartners    int32 `json:"active_partners"`
	StatesCovered     int32 `json:"states_covered"`
	TotalParticipants int32 `json:"total_participants"`
}

type StateCoverage struct {
	State        string `json:"state"`
	Count        int32  `json:"count"`
	Participants int32  `json:"participants"`
}

type DistrictCoverage struct {
	District string `json:"district"`
	State    string `json:"state"`
	Count    int32  `json:"count"`
}

// CoverageReport aggregates approved trainings by theme and state.
type CoverageReport struct {
	TrainingsByTheme     map[string]int32     `json:"trainings_by_theme"`
	TrainingsByState     []StateCoverage      `json:"trainings_by_state"`
	ParticipantBreakdown ParticipantBreakdown `json:"participant_breakdown"`
}

// GapReport lists states without any approved training and the districts with
// the thinnest coverage.
type GapReport struct {
	UncoveredStates      []string           `json:"uncovered_states"`
	LowCoverageDistricts []DistrictCoverage `json:"low_coverage_districts"`
}

// TrainingLocation is a map pin for an approved training.
type TrainingLocation struct {
	ID          int32   `json:"id"`
	Title       string  `json:"title"`
	Theme       string  `json:"theme"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	State       string  `json:"state"`
	District    string  `json:"district"`
	City        string  `json:"city"`
	Status      string  `json:"status"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	PartnerName string  `json:"partner_name"`
}
