package patient

import (
	"time"

	"github.com/google/uuid"

	"github.com/carelink/carelink/internal/mealplan"
)

// Patient maps to the patient table. Demographics are context data for
// recommendations and meal planning; they never feed the scoring math.
type Patient struct {
	ID             uuid.UUID               `db:"id" json:"id"`
	HospitalNumber string                  `db:"hospital_number" json:"hospital_number"`
	FirstName      string                  `db:"first_name" json:"first_name"`
	LastName       string                  `db:"last_name" json:"last_name"`
	BirthDate      *time.Time              `db:"birth_date" json:"birth_date,omitempty"`
	Sex            string                  `db:"sex" json:"sex"`
	Diagnosis      string                  `db:"diagnosis" json:"diagnosis"`
	Comorbidities  mealplan.Comorbidities  `db:"comorbidities" json:"comorbidities"`
	HeightCm       float64                 `db:"height_cm" json:"height_cm"`
	WeightKg       float64                 `db:"weight_kg" json:"weight_kg"`
	ActivityLevel  mealplan.ActivityLevel  `db:"activity_level" json:"activity_level"`
	CreatedAt      time.Time               `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time               `db:"updated_at" json:"updated_at"`
}

// Profile assembles the meal-plan generator input from the stored
// anthropometrics and comorbidity flags.
func (p *Patient) Profile() mealplan.Profile {
	return mealplan.Profile{
		WeightKg:      p.WeightKg,
		HeightCm:      p.HeightCm,
		ActivityLevel: p.ActivityLevel,
		Diagnosis:     p.Diagnosis,
		Comorbidities: p.Comorbidities,
	}
}
