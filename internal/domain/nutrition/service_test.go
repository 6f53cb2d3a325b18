package nutrition

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/carelink/carelink/internal/domain/patient"
	"github.com/carelink/carelink/internal/mealplan"
	"github.com/carelink/carelink/internal/scoring"
)

// -- Mocks --

type mockRepo struct {
	byPatient map[uuid.UUID]*MealPlan
}

func newMockRepo() *mockRepo {
	return &mockRepo{byPatient: make(map[uuid.UUID]*MealPlan)}
}

func (m *mockRepo) Upsert(_ context.Context, mp *MealPlan) error {
	if existing, ok := m.byPatient[mp.PatientID]; ok {
		mp.ID = existing.ID
	} else if mp.ID == uuid.Nil {
		mp.ID = uuid.New()
	}
	cp := *mp
	m.byPatient[mp.PatientID] = &cp
	return nil
}

func (m *mockRepo) GetByPatient(_ context.Context, patientID uuid.UUID) (*MealPlan, error) {
	mp, ok := m.byPatient[patientID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *mp
	return &cp, nil
}

func (m *mockRepo) DeleteByPatient(_ context.Context, patientID uuid.UUID) error {
	if _, ok := m.byPatient[patientID]; !ok {
		return ErrNotFound
	}
	delete(m.byPatient, patientID)
	return nil
}

type mockPatients struct {
	store map[uuid.UUID]*patient.Patient
}

func (m *mockPatients) Get(_ context.Context, id uuid.UUID) (*patient.Patient, error) {
	p, ok := m.store[id]
	if !ok {
		return nil, patient.ErrNotFound
	}
	return p, nil
}

func testPatient() *patient.Patient {
	return &patient.Patient{
		ID:             uuid.New(),
		HospitalNumber: "HN-00450",
		FirstName:      "Chinedu",
		LastName:       "Okeke",
		Sex:            "male",
		Diagnosis:      "community acquired pneumonia",
		HeightCm:       172,
		WeightKg:       70,
		ActivityLevel:  mealplan.ActivityModerate,
	}
}

func newTestService(p *patient.Patient) (*Service, *mockRepo) {
	repo := newMockRepo()
	patients := &mockPatients{store: map[uuid.UUID]*patient.Patient{p.ID: p}}
	return NewService(repo, patients), repo
}

// -- Service Tests --

func TestGenerate_StoresPlan(t *testing.T) {
	p := testPatient()
	svc, repo := newTestService(p)

	mp, err := svc.Generate(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mp.Plan.Days) != 7 {
		t.Errorf("expected 7 days, got %d", len(mp.Plan.Days))
	}
	stored, err := repo.GetByPatient(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.ID != mp.ID {
		t.Error("expected the generated plan to be stored")
	}
}

func TestGenerate_ReplacesExistingPlan(t *testing.T) {
	p := testPatient()
	svc, repo := newTestService(p)

	first, err := svc.Generate(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.Comorbidities.Diabetes = true
	second, err := svc.Generate(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if second.ID != first.ID {
		t.Error("expected regeneration to keep the same row identity")
	}
	stored, _ := repo.GetByPatient(context.Background(), p.ID)
	if !stored.Profile.Comorbidities.Diabetes {
		t.Error("expected stored profile to reflect the updated comorbidities")
	}
	if stored.Plan.Days[0].Nutrition.CarbsG == first.Plan.Days[0].Nutrition.CarbsG {
		t.Error("expected the diabetic carb allocation to differ")
	}
}

func TestGenerate_UnknownPatient(t *testing.T) {
	svc, _ := newTestService(testPatient())
	_, err := svc.Generate(context.Background(), uuid.New())
	if !errors.Is(err, patient.ErrNotFound) {
		t.Fatalf("expected patient not found, got %v", err)
	}
}

func TestGenerate_InvalidProfileRejected(t *testing.T) {
	p := testPatient()
	p.WeightKg = 0
	svc, repo := newTestService(p)

	_, err := svc.Generate(context.Background(), p.ID)
	var ve *scoring.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := repo.GetByPatient(context.Background(), p.ID); !errors.Is(err, ErrNotFound) {
		t.Error("expected nothing stored for an invalid profile")
	}
}

func TestGet_MissingPlan(t *testing.T) {
	p := testPatient()
	svc, _ := newTestService(p)
	if _, err := svc.Get(context.Background(), p.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDelete_RemovesPlan(t *testing.T) {
	p := testPatient()
	svc, _ := newTestService(p)
	if _, err := svc.Generate(context.Background(), p.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(context.Background(), p.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Get(context.Background(), p.ID); !errors.Is(err, ErrNotFound) {
		t.Error("expected plan gone after delete")
	}
}
