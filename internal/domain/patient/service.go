package patient

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/carelink/carelink/internal/mealplan"
)

type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

var validSexes = map[string]bool{
	"male":    true,
	"female":  true,
	"other":   true,
	"unknown": true,
}

var validActivityLevels = map[mealplan.ActivityLevel]bool{
	mealplan.ActivitySedentary: true,
	mealplan.ActivityModerate:  true,
	mealplan.ActivityActive:    true,
}

func (s *Service) validate(p *Patient) error {
	if p.HospitalNumber == "" {
		return fmt.Errorf("hospital_number is required")
	}
	if p.FirstName == "" || p.LastName == "" {
		return fmt.Errorf("first_name and last_name are required")
	}
	if p.Sex == "" {
		p.Sex = "unknown"
	}
	if !validSexes[p.Sex] {
		return fmt.Errorf("invalid sex: %s", p.Sex)
	}
	if p.HeightCm < 0 || p.WeightKg < 0 {
		return fmt.Errorf("height and weight must not be negative")
	}
	if p.ActivityLevel == "" {
		p.ActivityLevel = mealplan.ActivitySedentary
	}
	if !validActivityLevels[p.ActivityLevel] {
		return fmt.Errorf("invalid activity_level: %s", p.ActivityLevel)
	}
	return nil
}

func (s *Service) Register(ctx context.Context, p *Patient) error {
	if err := s.validate(p); err != nil {
		return err
	}
	if existing, err := s.patients.GetByHospitalNumber(ctx, p.HospitalNumber); err == nil && existing != nil {
		return fmt.Errorf("hospital number %s already registered", p.HospitalNumber)
	}
	return s.patients.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) GetByHospitalNumber(ctx context.Context, hospitalNumber string) (*Patient, error) {
	return s.patients.GetByHospitalNumber(ctx, hospitalNumber)
}

func (s *Service) Update(ctx context.Context, p *Patient) error {
	if err := s.validate(p); err != nil {
		return err
	}
	return s.patients.Update(ctx, p)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.patients.List(ctx, limit, offset)
}
