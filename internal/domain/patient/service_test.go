package patient

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/carelink/carelink/internal/mealplan"
)

// -- Mock Repository --

type mockRepo struct {
	store map[uuid.UUID]*Patient
}

func newMockRepo() *mockRepo {
	return &mockRepo{store: make(map[uuid.UUID]*Patient)}
}

func (m *mockRepo) Create(_ context.Context, p *Patient) error {
	p.ID = uuid.New()
	m.store[p.ID] = p
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	p, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (m *mockRepo) GetByHospitalNumber(_ context.Context, hospitalNumber string) (*Patient, error) {
	for _, p := range m.store {
		if p.HospitalNumber == hospitalNumber {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockRepo) Update(_ context.Context, p *Patient) error {
	if _, ok := m.store[p.ID]; !ok {
		return ErrNotFound
	}
	m.store[p.ID] = p
	return nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Patient, int, error) {
	var r []*Patient
	for _, p := range m.store {
		r = append(r, p)
	}
	return r, len(r), nil
}

func validPatient() *Patient {
	return &Patient{
		HospitalNumber: "HN-00123",
		FirstName:      "Amina",
		LastName:       "Bello",
		Sex:            "female",
		HeightCm:       165,
		WeightKg:       58,
		ActivityLevel:  mealplan.ActivityModerate,
	}
}

// -- Service Tests --

func TestRegister_Success(t *testing.T) {
	svc := NewService(newMockRepo())
	p := validPatient()
	if err := svc.Register(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == uuid.Nil {
		t.Error("expected ID to be set")
	}
}

func TestRegister_MissingHospitalNumber(t *testing.T) {
	svc := NewService(newMockRepo())
	p := validPatient()
	p.HospitalNumber = ""
	if err := svc.Register(context.Background(), p); err == nil {
		t.Fatal("expected error for missing hospital number")
	}
}

func TestRegister_MissingName(t *testing.T) {
	svc := NewService(newMockRepo())
	p := validPatient()
	p.FirstName = ""
	if err := svc.Register(context.Background(), p); err == nil {
		t.Fatal("expected error for missing first name")
	}
}

func TestRegister_DuplicateHospitalNumber(t *testing.T) {
	svc := NewService(newMockRepo())
	if err := svc.Register(context.Background(), validPatient()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Register(context.Background(), validPatient()); err == nil {
		t.Fatal("expected error for duplicate hospital number")
	}
}

func TestRegister_DefaultsSexAndActivity(t *testing.T) {
	svc := NewService(newMockRepo())
	p := validPatient()
	p.Sex = ""
	p.ActivityLevel = ""
	if err := svc.Register(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Sex != "unknown" {
		t.Errorf("expected sex 'unknown', got %q", p.Sex)
	}
	if p.ActivityLevel != mealplan.ActivitySedentary {
		t.Errorf("expected sedentary default, got %q", p.ActivityLevel)
	}
}

func TestRegister_InvalidSex(t *testing.T) {
	svc := NewService(newMockRepo())
	p := validPatient()
	p.Sex = "n/a"
	if err := svc.Register(context.Background(), p); err == nil {
		t.Fatal("expected error for invalid sex")
	}
}

func TestRegister_InvalidActivityLevel(t *testing.T) {
	svc := NewService(newMockRepo())
	p := validPatient()
	p.ActivityLevel = "athletic"
	if err := svc.Register(context.Background(), p); err == nil {
		t.Fatal("expected error for invalid activity level")
	}
}

func TestRegister_NegativeAnthropometrics(t *testing.T) {
	svc := NewService(newMockRepo())
	p := validPatient()
	p.WeightKg = -4
	if err := svc.Register(context.Background(), p); err == nil {
		t.Fatal("expected error for negative weight")
	}
}

func TestUpdate_Success(t *testing.T) {
	svc := NewService(newMockRepo())
	p := validPatient()
	svc.Register(context.Background(), p)

	p.Diagnosis = "post surgery wound care"
	if err := svc.Update(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := svc.Get(context.Background(), p.ID)
	if got.Diagnosis != "post surgery wound care" {
		t.Errorf("diagnosis not updated: %q", got.Diagnosis)
	}
}

func TestProfile_AssemblesMealPlanInput(t *testing.T) {
	p := validPatient()
	p.Diagnosis = "leg wound"
	p.Comorbidities.Diabetes = true

	profile := p.Profile()
	if profile.WeightKg != 58 || profile.HeightCm != 165 {
		t.Errorf("unexpected anthropometrics: %+v", profile)
	}
	if !profile.Comorbidities.Diabetes {
		t.Error("expected diabetes flag carried into profile")
	}
	if profile.Diagnosis != "leg wound" {
		t.Errorf("unexpected diagnosis: %q", profile.Diagnosis)
	}
}
