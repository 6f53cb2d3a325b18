package patient

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the patient persistence interface.
type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	GetByHospitalNumber(ctx context.Context, hospitalNumber string) (*Patient, error)
	Update(ctx context.Context, p *Patient) error
	List(ctx context.Context, limit, offset int) ([]*Patient, int, error)
}
