package assessment

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/carelink/carelink/internal/actionplan"
	"github.com/carelink/carelink/internal/scoring"
)

// Assessment statuses. Records are never deleted: saving a newer assessment
// of the same type for the same patient supersedes the prior active one.
const (
	StatusActive     = "active"
	StatusCompleted  = "completed"
	StatusSuperseded = "superseded"
)

// Assessment is the persisted outcome of one risk screening. The factor set
// is stored as submitted; score and risk level are always computed
// server-side and never mutated after creation except for status
// transitions.
type Assessment struct {
	ID              uuid.UUID              `db:"id" json:"id"`
	PatientID       uuid.UUID              `db:"patient_id" json:"patient_id"`
	Type            scoring.AssessmentType `db:"type" json:"type"`
	Strategy        scoring.DVTStrategy    `db:"strategy" json:"strategy,omitempty"`
	Assessor        string                 `db:"assessor" json:"assessor"`
	OccurredAt      time.Time              `db:"occurred_at" json:"occurred_at"`
	Factors         json.RawMessage        `db:"factors" json:"factors"`
	Score           int                    `db:"score" json:"score"`
	RiskLevel       scoring.RiskLevel      `db:"risk_level" json:"risk_level"`
	Recommendations []string               `db:"recommendations" json:"recommendations"`
	Items           []actionplan.Item      `db:"-" json:"action_plan"`
	NextDueAt       *time.Time             `db:"next_due_at" json:"next_due_at,omitempty"`
	Status          string                 `db:"status" json:"status"`
	CreatedAt       time.Time              `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time              `db:"updated_at" json:"updated_at"`
}

// SaveRequest carries one factor set matching the assessment type. Exactly
// one of Caprini, Wells, Braden or MUST must be populated.
type SaveRequest struct {
	PatientID  uuid.UUID               `json:"patient_id"`
	Type       scoring.AssessmentType  `json:"type"`
	Strategy   scoring.DVTStrategy     `json:"strategy,omitempty"`
	Assessor   string                  `json:"assessor"`
	OccurredAt *time.Time              `json:"occurred_at,omitempty"`
	Caprini    *scoring.CapriniFactors  `json:"caprini,omitempty"`
	Wells      *scoring.WellsFactors    `json:"wells,omitempty"`
	Braden     *scoring.BradenSubscores `json:"braden,omitempty"`
	MUST       *scoring.MUSTInputs      `json:"must,omitempty"`
}

// ItemUpdate is the care-team workflow mutation applied to a single action
// plan item after creation.
type ItemUpdate struct {
	Status actionplan.Status `json:"status"`
	Notes  *string           `json:"notes,omitempty"`
}

// reassessmentIntervals fix the next-due horizon per type and band.
var reassessmentIntervals = map[scoring.AssessmentType]map[scoring.RiskLevel]time.Duration{
	scoring.TypeDVT: {
		scoring.RiskVeryHigh: 24 * time.Hour,
		scoring.RiskHigh:     48 * time.Hour,
		scoring.RiskModerate: 72 * time.Hour,
		scoring.RiskLow:      7 * 24 * time.Hour,
	},
	scoring.TypePressureSore: {
		scoring.RiskVeryHigh: 24 * time.Hour,
		scoring.RiskHigh:     24 * time.Hour,
		scoring.RiskModerate: 48 * time.Hour,
		scoring.RiskLow:      7 * 24 * time.Hour,
	},
	scoring.TypeNutrition: {
		scoring.RiskHigh:     48 * time.Hour,
		scoring.RiskModerate: 72 * time.Hour,
		scoring.RiskLow:      7 * 24 * time.Hour,
	},
}

// NextDue returns when an assessment of the given type and band should be
// repeated, counted from now.
func NextDue(t scoring.AssessmentType, level scoring.RiskLevel, now time.Time) *time.Time {
	intervals, ok := reassessmentIntervals[t]
	if !ok {
		return nil
	}
	d, ok := intervals[level]
	if !ok {
		return nil
	}
	due := now.Add(d)
	return &due
}
