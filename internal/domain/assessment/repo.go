package assessment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/carelink/carelink/internal/actionplan"
	"github.com/carelink/carelink/internal/scoring"
)

// ErrNotFound is returned when no assessment or action item matches the
// lookup. Persistence failures are reported as distinct wrapped errors and
// never conflated with validation errors.
var ErrNotFound = errors.New("assessment not found")

// Repository defines the assessment persistence interface.
type Repository interface {
	Create(ctx context.Context, a *Assessment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Assessment, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Assessment, int, error)
	// GetLatest returns the newest active assessment of the given type.
	GetLatest(ctx context.Context, patientID uuid.UUID, t scoring.AssessmentType) (*Assessment, error)
	// SupersedeActive marks every active assessment of the given type for
	// the patient as superseded, returning how many were affected.
	SupersedeActive(ctx context.Context, patientID uuid.UUID, t scoring.AssessmentType) (int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	// ListDue returns active assessments whose next_due_at is at or before asOf.
	ListDue(ctx context.Context, asOf time.Time) ([]*Assessment, error)

	CreateItems(ctx context.Context, assessmentID uuid.UUID, items []actionplan.Item) error
	ListItems(ctx context.Context, assessmentID uuid.UUID) ([]actionplan.Item, error)
	GetItem(ctx context.Context, itemID uuid.UUID) (*actionplan.Item, error)
	UpdateItem(ctx context.Context, itemID uuid.UUID, item *actionplan.Item) error
}
