package nutrition

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/carelink/carelink/internal/domain/patient"
	"github.com/carelink/carelink/internal/mealplan"
)

// PatientSource resolves the patient whose profile drives plan generation.
// patient.Service satisfies it.
type PatientSource interface {
	Get(ctx context.Context, id uuid.UUID) (*patient.Patient, error)
}

// Service generates and stores therapeutic meal plans.
type Service struct {
	repo     Repository
	patients PatientSource
	now      func() time.Time
}

func NewService(repo Repository, patients PatientSource) *Service {
	return &Service{repo: repo, patients: patients, now: time.Now}
}

// Generate builds a fresh 7-day plan from the patient's current profile and
// stores it, replacing any earlier plan for the patient. Generation is
// deterministic, so regenerating against an unchanged profile yields the
// same plan.
func (s *Service) Generate(ctx context.Context, patientID uuid.UUID) (*MealPlan, error) {
	p, err := s.patients.Get(ctx, patientID)
	if err != nil {
		return nil, err
	}
	profile := p.Profile()
	plan, err := mealplan.Generate(profile)
	if err != nil {
		return nil, err
	}

	mp := &MealPlan{
		PatientID:   patientID,
		Profile:     profile,
		Plan:        *plan,
		GeneratedAt: s.now().UTC(),
	}
	if err := s.repo.Upsert(ctx, mp); err != nil {
		return nil, fmt.Errorf("store meal plan: %w", err)
	}
	return mp, nil
}

// Get returns the stored plan for the patient.
func (s *Service) Get(ctx context.Context, patientID uuid.UUID) (*MealPlan, error) {
	return s.repo.GetByPatient(ctx, patientID)
}

// Delete removes the stored plan, typically after discharge.
func (s *Service) Delete(ctx context.Context, patientID uuid.UUID) error {
	return s.repo.DeleteByPatient(ctx, patientID)
}
