package assessment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/carelink/carelink/internal/actionplan"
	"github.com/carelink/carelink/internal/recommend"
	"github.com/carelink/carelink/internal/scoring"
)

// TxRunner executes fn atomically. The production wiring passes db.WithTx
// bound to the pool; a nil runner executes fn directly, which keeps unit
// tests free of database plumbing.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

// Service owns the assessment workflow: it scores submitted factor sets
// server-side, classifies them, resolves recommendations, derives the action
// plan and persists everything atomically.
type Service struct {
	repo     Repository
	engine   *recommend.Engine
	inTx     TxRunner
	exporter Exporter
	now      func() time.Time
}

func NewService(repo Repository, engine *recommend.Engine, inTx TxRunner) *Service {
	if inTx == nil {
		inTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}
	}
	return &Service{repo: repo, engine: engine, inTx: inTx, now: time.Now}
}

// Save scores the submitted factor set, attaches recommendations and a fresh
// action plan, and persists the assessment. Any prior active assessment of
// the same type for the patient is marked superseded in the same
// transaction; records are never deleted.
func (s *Service) Save(ctx context.Context, req *SaveRequest) (*Assessment, error) {
	if req.PatientID == uuid.Nil {
		return nil, &scoring.ValidationError{Field: "patient_id", Msg: "is required"}
	}
	if !scoring.ValidType(req.Type) {
		return nil, &scoring.ValidationError{Field: "type", Msg: fmt.Sprintf("unknown assessment type %q", req.Type)}
	}
	if req.Assessor == "" {
		return nil, &scoring.ValidationError{Field: "assessor", Msg: "is required"}
	}

	result, strategy, factors, err := s.score(req)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	occurred := now
	if req.OccurredAt != nil {
		occurred = req.OccurredAt.UTC()
	}
	advice := s.engine.Recommendations(req.Type, result.RiskLevel)
	items := actionplan.Build(advice.Interventions, result.RiskLevel, now)

	a := &Assessment{
		ID:              uuid.New(),
		PatientID:       req.PatientID,
		Type:            req.Type,
		Strategy:        strategy,
		Assessor:        req.Assessor,
		OccurredAt:      occurred,
		Factors:         factors,
		Score:           result.Score,
		RiskLevel:       result.RiskLevel,
		Recommendations: advice.Clinical,
		Items:           items,
		NextDueAt:       NextDue(req.Type, result.RiskLevel, now),
		Status:          StatusActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = s.inTx(ctx, func(ctx context.Context) error {
		if _, err := s.repo.SupersedeActive(ctx, a.PatientID, a.Type); err != nil {
			return fmt.Errorf("supersede prior assessments: %w", err)
		}
		if err := s.repo.Create(ctx, a); err != nil {
			return fmt.Errorf("create assessment: %w", err)
		}
		if err := s.repo.CreateItems(ctx, a.ID, a.Items); err != nil {
			return fmt.Errorf("create action plan: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// score dispatches to the calculator matching the assessment type. The
// factor set must match the type; extra factor sets in the request are
// rejected rather than silently ignored.
func (s *Service) score(req *SaveRequest) (scoring.Result, scoring.DVTStrategy, json.RawMessage, error) {
	if n := countFactorSets(req); n != 1 {
		return scoring.Result{}, "", nil, &scoring.ValidationError{
			Field: "factors", Msg: fmt.Sprintf("exactly one factor set is required, got %d", n),
		}
	}

	switch req.Type {
	case scoring.TypeDVT:
		strategy := req.Strategy
		if strategy == "" {
			strategy = scoring.StrategyCaprini
		}
		switch strategy {
		case scoring.StrategyCaprini:
			if req.Caprini == nil {
				return scoring.Result{}, "", nil, &scoring.ValidationError{Field: "caprini", Msg: "is required for the caprini strategy"}
			}
			return marshalled(scoring.CalculateDVT(*req.Caprini), strategy, req.Caprini)
		case scoring.StrategyWells:
			if req.Wells == nil {
				return scoring.Result{}, "", nil, &scoring.ValidationError{Field: "wells", Msg: "is required for the wells strategy"}
			}
			return marshalled(scoring.CalculateWells(*req.Wells), strategy, req.Wells)
		default:
			return scoring.Result{}, "", nil, &scoring.ValidationError{Field: "strategy", Msg: fmt.Sprintf("unknown dvt strategy %q", strategy)}
		}
	case scoring.TypePressureSore:
		if req.Braden == nil {
			return scoring.Result{}, "", nil, &scoring.ValidationError{Field: "braden", Msg: "is required for pressure sore assessments"}
		}
		result, err := scoring.CalculateBraden(*req.Braden)
		if err != nil {
			return scoring.Result{}, "", nil, err
		}
		return marshalled(result, "", req.Braden)
	case scoring.TypeNutrition:
		if req.MUST == nil {
			return scoring.Result{}, "", nil, &scoring.ValidationError{Field: "must", Msg: "is required for nutrition assessments"}
		}
		result, err := scoring.CalculateMUST(*req.MUST)
		if err != nil {
			return scoring.Result{}, "", nil, err
		}
		return marshalled(result, "", req.MUST)
	}
	return scoring.Result{}, "", nil, &scoring.ValidationError{Field: "type", Msg: fmt.Sprintf("unknown assessment type %q", req.Type)}
}

func countFactorSets(req *SaveRequest) int {
	n := 0
	if req.Caprini != nil {
		n++
	}
	if req.Wells != nil {
		n++
	}
	if req.Braden != nil {
		n++
	}
	if req.MUST != nil {
		n++
	}
	return n
}

func marshalled(result scoring.Result, strategy scoring.DVTStrategy, factors interface{}) (scoring.Result, scoring.DVTStrategy, json.RawMessage, error) {
	raw, err := json.Marshal(factors)
	if err != nil {
		return scoring.Result{}, "", nil, fmt.Errorf("marshal factors: %w", err)
	}
	return result, strategy, raw, nil
}

// Get returns one assessment with its action plan attached.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Assessment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.ListItems(ctx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("list action items: %w", err)
	}
	a.Items = items
	return a, nil
}

// GetLatest returns the newest active assessment of the given type for the
// patient, with its action plan attached.
func (s *Service) GetLatest(ctx context.Context, patientID uuid.UUID, t scoring.AssessmentType) (*Assessment, error) {
	if !scoring.ValidType(t) {
		return nil, &scoring.ValidationError{Field: "type", Msg: fmt.Sprintf("unknown assessment type %q", t)}
	}
	a, err := s.repo.GetLatest(ctx, patientID, t)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.ListItems(ctx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("list action items: %w", err)
	}
	a.Items = items
	return a, nil
}

// ListByPatient returns the patient's assessment history, newest first.
// Action plans are not attached on list; callers fetch one assessment for
// the full detail.
func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Assessment, int, error) {
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}

// Complete marks an active assessment as completed. Superseded assessments
// stay superseded.
func (s *Service) Complete(ctx context.Context, id uuid.UUID) (*Assessment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Status != StatusActive {
		return nil, &scoring.ValidationError{Field: "status", Msg: fmt.Sprintf("cannot complete a %s assessment", a.Status)}
	}
	if err := s.repo.UpdateStatus(ctx, id, StatusCompleted); err != nil {
		return nil, err
	}
	a.Status = StatusCompleted
	return a, nil
}

// UpdateItem applies a care-team workflow mutation to one action plan item.
// Moving the item to completed stamps CompletedAt; moving it anywhere else
// clears it.
func (s *Service) UpdateItem(ctx context.Context, itemID uuid.UUID, upd *ItemUpdate) (*actionplan.Item, error) {
	if !actionplan.ValidStatus(upd.Status) {
		return nil, &scoring.ValidationError{Field: "status", Msg: fmt.Sprintf("unknown status %q", upd.Status)}
	}
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	item.Status = upd.Status
	if upd.Status == actionplan.StatusCompleted {
		now := s.now().UTC()
		item.CompletedAt = &now
	} else {
		item.CompletedAt = nil
	}
	if upd.Notes != nil {
		item.Notes = upd.Notes
	}
	if err := s.repo.UpdateItem(ctx, itemID, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListDue returns active assessments whose reassessment horizon has passed.
func (s *Service) ListDue(ctx context.Context, asOf time.Time) ([]*Assessment, error) {
	return s.repo.ListDue(ctx, asOf)
}
