// Package jobs hosts the background schedules that run alongside the HTTP
// server.
package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/carelink/carelink/internal/domain/assessment"
)

// AssessmentSource lists assessments whose reassessment horizon has passed.
// assessment.Service satisfies it.
type AssessmentSource interface {
	ListDue(ctx context.Context, asOf time.Time) ([]*assessment.Assessment, error)
}

// ReassessmentSweep periodically flags active assessments that are overdue
// for repetition. The sweep only surfaces them in the logs; rescoring stays
// a clinician action.
type ReassessmentSweep struct {
	src  AssessmentSource
	cron *cron.Cron
	log  zerolog.Logger
}

func NewReassessmentSweep(src AssessmentSource, spec string, log zerolog.Logger) (*ReassessmentSweep, error) {
	s := &ReassessmentSweep{
		src:  src,
		cron: cron.New(),
		log:  log.With().Str("job", "reassessment_sweep").Logger(),
	}
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ReassessmentSweep) Start() { s.cron.Start() }

// Stop halts the schedule and waits for an in-flight run to finish.
func (s *ReassessmentSweep) Stop() {
	<-s.cron.Stop().Done()
}

func (s *ReassessmentSweep) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	due, err := s.src.ListDue(ctx, time.Now().UTC())
	if err != nil {
		s.log.Error().Err(err).Msg("listing due assessments failed")
		return
	}
	for _, a := range due {
		s.log.Warn().
			Str("assessment_id", a.ID.String()).
			Str("patient_id", a.PatientID.String()).
			Str("type", string(a.Type)).
			Str("risk_level", string(a.RiskLevel)).
			Time("next_due_at", *a.NextDueAt).
			Msg("assessment overdue for reassessment")
	}
	s.log.Info().Int("due", len(due)).Msg("reassessment sweep complete")
}
