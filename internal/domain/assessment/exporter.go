package assessment

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrExportUnavailable is returned when no exporter has been configured.
var ErrExportUnavailable = errors.New("assessment export not configured")

// Document is a rendered assessment ready to hand to the caller.
type Document struct {
	ContentType string
	Data        []byte
}

// Exporter renders an assessment with its action plan into a shareable
// document. Rendering lives outside this service; deployments that don't
// need export simply leave the exporter unset.
type Exporter interface {
	Export(ctx context.Context, a *Assessment) (*Document, error)
}

// SetExporter wires the optional document renderer.
func (s *Service) SetExporter(e Exporter) {
	s.exporter = e
}

// Export renders one assessment, action plan included.
func (s *Service) Export(ctx context.Context, id uuid.UUID) (*Document, error) {
	if s.exporter == nil {
		return nil, ErrExportUnavailable
	}
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.exporter.Export(ctx, a)
}
