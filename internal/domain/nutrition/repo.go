package nutrition

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no meal plan exists for the patient.
var ErrNotFound = errors.New("meal plan not found")

// Repository defines the meal plan persistence interface.
type Repository interface {
	// Upsert inserts the patient's plan or replaces the existing one.
	Upsert(ctx context.Context, mp *MealPlan) error
	GetByPatient(ctx context.Context, patientID uuid.UUID) (*MealPlan, error)
	DeleteByPatient(ctx context.Context, patientID uuid.UUID) error
}
