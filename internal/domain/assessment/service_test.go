package assessment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/carelink/carelink/internal/actionplan"
	"github.com/carelink/carelink/internal/recommend"
	"github.com/carelink/carelink/internal/scoring"
)

// -- Mock Repository --

type mockRepo struct {
	assessments map[uuid.UUID]*Assessment
	items       map[uuid.UUID][]actionplan.Item
	superseded  int
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		assessments: make(map[uuid.UUID]*Assessment),
		items:       make(map[uuid.UUID][]actionplan.Item),
	}
}

func (m *mockRepo) Create(_ context.Context, a *Assessment) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	cp := *a
	m.assessments[a.ID] = &cp
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Assessment, error) {
	a, ok := m.assessments[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *mockRepo) ListByPatient(_ context.Context, patientID uuid.UUID, limit, offset int) ([]*Assessment, int, error) {
	var r []*Assessment
	for _, a := range m.assessments {
		if a.PatientID == patientID {
			r = append(r, a)
		}
	}
	return r, len(r), nil
}

func (m *mockRepo) GetLatest(_ context.Context, patientID uuid.UUID, t scoring.AssessmentType) (*Assessment, error) {
	var latest *Assessment
	for _, a := range m.assessments {
		if a.PatientID != patientID || a.Type != t || a.Status != StatusActive {
			continue
		}
		if latest == nil || a.OccurredAt.After(latest.OccurredAt) {
			latest = a
		}
	}
	if latest == nil {
		return nil, ErrNotFound
	}
	cp := *latest
	return &cp, nil
}

func (m *mockRepo) SupersedeActive(_ context.Context, patientID uuid.UUID, t scoring.AssessmentType) (int, error) {
	n := 0
	for _, a := range m.assessments {
		if a.PatientID == patientID && a.Type == t && a.Status == StatusActive {
			a.Status = StatusSuperseded
			n++
		}
	}
	m.superseded += n
	return n, nil
}

func (m *mockRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	a, ok := m.assessments[id]
	if !ok {
		return ErrNotFound
	}
	a.Status = status
	return nil
}

func (m *mockRepo) ListDue(_ context.Context, asOf time.Time) ([]*Assessment, error) {
	var r []*Assessment
	for _, a := range m.assessments {
		if a.Status == StatusActive && a.NextDueAt != nil && !a.NextDueAt.After(asOf) {
			r = append(r, a)
		}
	}
	return r, nil
}

func (m *mockRepo) CreateItems(_ context.Context, assessmentID uuid.UUID, items []actionplan.Item) error {
	m.items[assessmentID] = append(m.items[assessmentID], items...)
	return nil
}

func (m *mockRepo) ListItems(_ context.Context, assessmentID uuid.UUID) ([]actionplan.Item, error) {
	items := m.items[assessmentID]
	if items == nil {
		return []actionplan.Item{}, nil
	}
	return items, nil
}

func (m *mockRepo) GetItem(_ context.Context, itemID uuid.UUID) (*actionplan.Item, error) {
	for _, items := range m.items {
		for _, item := range items {
			if item.ID == itemID {
				cp := item
				return &cp, nil
			}
		}
	}
	return nil, ErrNotFound
}

func (m *mockRepo) UpdateItem(_ context.Context, itemID uuid.UUID, item *actionplan.Item) error {
	for id, items := range m.items {
		for i := range items {
			if items[i].ID == itemID {
				items[i].Status = item.Status
				items[i].CompletedAt = item.CompletedAt
				items[i].Notes = item.Notes
				m.items[id] = items
				return nil
			}
		}
	}
	return ErrNotFound
}

func newTestService(repo Repository) *Service {
	return NewService(repo, recommend.NewEngine(recommend.DefaultCatalog()), nil)
}

func highRiskCaprini() *scoring.CapriniFactors {
	return &scoring.CapriniFactors{
		Age61To74:          true, // 2
		Malignancy:         true, // 2
		PersonalHistoryVTE: true, // 3
	}
}

func capriniRequest(patientID uuid.UUID) *SaveRequest {
	return &SaveRequest{
		PatientID: patientID,
		Type:      scoring.TypeDVT,
		Assessor:  "Nurse Adeyemi",
		Caprini:   highRiskCaprini(),
	}
}

// -- Service Tests --

func TestSave_CapriniScoresAndClassifies(t *testing.T) {
	svc := newTestService(newMockRepo())
	a, err := svc.Save(context.Background(), capriniRequest(uuid.New()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Score != 7 {
		t.Errorf("expected score 7, got %d", a.Score)
	}
	if a.RiskLevel != scoring.RiskHigh {
		t.Errorf("expected high risk, got %q", a.RiskLevel)
	}
	if a.Strategy != scoring.StrategyCaprini {
		t.Errorf("expected caprini strategy default, got %q", a.Strategy)
	}
	if a.Status != StatusActive {
		t.Errorf("expected active status, got %q", a.Status)
	}
}

func TestSave_AttachesRecommendationsAndActionPlan(t *testing.T) {
	svc := newTestService(newMockRepo())
	a, err := svc.Save(context.Background(), capriniRequest(uuid.New()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a.Recommendations) == 0 {
		t.Error("expected clinical recommendations for a high-risk result")
	}
	if len(a.Items) == 0 {
		t.Fatal("expected action plan items for a high-risk result")
	}
	for _, item := range a.Items {
		if item.Status != actionplan.StatusPending {
			t.Errorf("expected pending item, got %q", item.Status)
		}
		if item.Priority != actionplan.PriorityHigh {
			t.Errorf("expected high priority, got %q", item.Priority)
		}
	}
}

func TestSave_SetsNextDueAt(t *testing.T) {
	svc := newTestService(newMockRepo())
	a, err := svc.Save(context.Background(), capriniRequest(uuid.New()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.NextDueAt == nil {
		t.Fatal("expected next_due_at for a high-risk dvt assessment")
	}
	d := a.NextDueAt.Sub(a.CreatedAt)
	if d != 48*time.Hour {
		t.Errorf("expected 48h reassessment horizon, got %s", d)
	}
}

func TestSave_SupersedesPriorActive(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	patientID := uuid.New()

	first, err := svc.Save(context.Background(), capriniRequest(patientID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Save(context.Background(), capriniRequest(patientID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prior, _ := repo.GetByID(context.Background(), first.ID)
	if prior.Status != StatusSuperseded {
		t.Errorf("expected first assessment superseded, got %q", prior.Status)
	}
	latest, err := svc.GetLatest(context.Background(), patientID, scoring.TypeDVT)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if latest.ID != second.ID {
		t.Error("expected the second assessment to be the latest active one")
	}
}

func TestSave_DifferentTypeDoesNotSupersede(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	patientID := uuid.New()

	dvt, err := svc.Save(context.Background(), capriniRequest(patientID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = svc.Save(context.Background(), &SaveRequest{
		PatientID: patientID,
		Type:      scoring.TypePressureSore,
		Assessor:  "Nurse Adeyemi",
		Braden: &scoring.BradenSubscores{
			SensoryPerception: 4, Moisture: 4, Activity: 4,
			Mobility: 4, Nutrition: 4, FrictionShear: 3,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := repo.GetByID(context.Background(), dvt.ID)
	if got.Status != StatusActive {
		t.Errorf("expected dvt assessment untouched, got %q", got.Status)
	}
}

func TestSave_WellsStrategy(t *testing.T) {
	svc := newTestService(newMockRepo())
	a, err := svc.Save(context.Background(), &SaveRequest{
		PatientID: uuid.New(),
		Type:      scoring.TypeDVT,
		Strategy:  scoring.StrategyWells,
		Assessor:  "Dr Okafor",
		Wells: &scoring.WellsFactors{
			ActiveCancer:        true,
			EntireLegSwollen:    true,
			LocalizedTenderness: true,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Score != 3 || a.RiskLevel != scoring.RiskHigh {
		t.Errorf("expected wells 3/high, got %d/%q", a.Score, a.RiskLevel)
	}
	if a.Strategy != scoring.StrategyWells {
		t.Errorf("expected wells strategy recorded, got %q", a.Strategy)
	}
}

func TestSave_FactorSetMustMatchType(t *testing.T) {
	svc := newTestService(newMockRepo())
	_, err := svc.Save(context.Background(), &SaveRequest{
		PatientID: uuid.New(),
		Type:      scoring.TypeNutrition,
		Assessor:  "Dietitian Musa",
		Caprini:   highRiskCaprini(),
	})
	var ve *scoring.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSave_RejectsMultipleFactorSets(t *testing.T) {
	svc := newTestService(newMockRepo())
	req := capriniRequest(uuid.New())
	req.MUST = &scoring.MUSTInputs{BMIScore: 1}
	_, err := svc.Save(context.Background(), req)
	var ve *scoring.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSave_RejectsUnknownType(t *testing.T) {
	svc := newTestService(newMockRepo())
	req := capriniRequest(uuid.New())
	req.Type = "cardiac"
	if _, err := svc.Save(context.Background(), req); err == nil {
		t.Fatal("expected error for unknown assessment type")
	}
}

func TestSave_RejectsMissingAssessor(t *testing.T) {
	svc := newTestService(newMockRepo())
	req := capriniRequest(uuid.New())
	req.Assessor = ""
	if _, err := svc.Save(context.Background(), req); err == nil {
		t.Fatal("expected error for missing assessor")
	}
}

func TestSave_InvalidBradenRejected(t *testing.T) {
	svc := newTestService(newMockRepo())
	_, err := svc.Save(context.Background(), &SaveRequest{
		PatientID: uuid.New(),
		Type:      scoring.TypePressureSore,
		Assessor:  "Nurse Adeyemi",
		Braden: &scoring.BradenSubscores{
			SensoryPerception: 4, Moisture: 4, Activity: 4,
			Mobility: 4, Nutrition: 4, // friction_shear unset
		},
	})
	var ve *scoring.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGet_AttachesItems(t *testing.T) {
	svc := newTestService(newMockRepo())
	saved, err := svc.Save(context.Background(), capriniRequest(uuid.New()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := svc.Get(context.Background(), saved.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Items) != len(saved.Items) {
		t.Errorf("expected %d items, got %d", len(saved.Items), len(got.Items))
	}
}

func TestComplete_ActiveOnly(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	a, err := svc.Save(context.Background(), capriniRequest(uuid.New()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	done, err := svc.Complete(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if done.Status != StatusCompleted {
		t.Errorf("expected completed, got %q", done.Status)
	}
	if _, err := svc.Complete(context.Background(), a.ID); err == nil {
		t.Fatal("expected error completing a non-active assessment")
	}
}

func TestUpdateItem_CompletedStampsTimestamp(t *testing.T) {
	svc := newTestService(newMockRepo())
	a, err := svc.Save(context.Background(), capriniRequest(uuid.New()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	notes := "heparin administered 06:00"
	item, err := svc.UpdateItem(context.Background(), a.Items[0].ID, &ItemUpdate{
		Status: actionplan.StatusCompleted,
		Notes:  &notes,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.CompletedAt == nil {
		t.Error("expected completed_at to be stamped")
	}
	if item.Notes == nil || *item.Notes != notes {
		t.Error("expected notes to be recorded")
	}

	reopened, err := svc.UpdateItem(context.Background(), item.ID, &ItemUpdate{Status: actionplan.StatusInProgress})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reopened.CompletedAt != nil {
		t.Error("expected completed_at cleared when reopened")
	}
}

func TestUpdateItem_RejectsUnknownStatus(t *testing.T) {
	svc := newTestService(newMockRepo())
	_, err := svc.UpdateItem(context.Background(), uuid.New(), &ItemUpdate{Status: "archived"})
	var ve *scoring.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

type stubExporter struct{}

func (stubExporter) Export(_ context.Context, a *Assessment) (*Document, error) {
	return &Document{ContentType: "text/plain", Data: []byte(a.ID.String())}, nil
}

func TestExport_RequiresConfiguredExporter(t *testing.T) {
	svc := newTestService(newMockRepo())
	a, err := svc.Save(context.Background(), capriniRequest(uuid.New()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Export(context.Background(), a.ID); !errors.Is(err, ErrExportUnavailable) {
		t.Fatalf("expected ErrExportUnavailable, got %v", err)
	}

	svc.SetExporter(stubExporter{})
	doc, err := svc.Export(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.ContentType != "text/plain" || len(doc.Data) == 0 {
		t.Errorf("unexpected document: %+v", doc)
	}
}

func TestListDue_ReturnsOverdueActive(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	a, err := svc.Save(context.Background(), capriniRequest(uuid.New()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	due, err := svc.ListDue(context.Background(), a.NextDueAt.Add(time.Minute))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(due) != 1 {
		t.Fatalf("expected 1 due assessment, got %d", len(due))
	}
	none, err := svc.ListDue(context.Background(), a.NextDueAt.Add(-time.Minute))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no due assessments before the horizon, got %d", len(none))
	}
}
