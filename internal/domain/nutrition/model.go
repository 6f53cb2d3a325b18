package nutrition

import (
	"time"

	"github.com/google/uuid"

	"github.com/carelink/carelink/internal/mealplan"
)

// MealPlan is the persisted 7-day diet plan for one patient. A patient has
// at most one stored plan; regeneration replaces it in place while keeping
// the original row identity.
type MealPlan struct {
	ID          uuid.UUID        `db:"id" json:"id"`
	PatientID   uuid.UUID        `db:"patient_id" json:"patient_id"`
	Profile     mealplan.Profile `db:"profile" json:"profile"`
	Plan        mealplan.Plan    `db:"plan" json:"plan"`
	GeneratedAt time.Time        `db:"generated_at" json:"generated_at"`
	CreatedAt   time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time        `db:"updated_at" json:"updated_at"`
}
