package assessment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carelink/carelink/internal/actionplan"
	"github.com/carelink/carelink/internal/scoring"
	"github.com/carelink/carelink/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const assessmentCols = `id, patient_id, type, strategy, assessor, occurred_at, factors, score,
	risk_level, recommendations, next_due_at, status, created_at, updated_at`

func scanAssessment(row pgx.Row) (*Assessment, error) {
	var a Assessment
	err := row.Scan(&a.ID, &a.PatientID, &a.Type, &a.Strategy, &a.Assessor, &a.OccurredAt,
		&a.Factors, &a.Score, &a.RiskLevel, &a.Recommendations, &a.NextDueAt, &a.Status,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *repoPG) Create(ctx context.Context, a *Assessment) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO assessment (id, patient_id, type, strategy, assessor, occurred_at,
			factors, score, risk_level, recommendations, next_due_at, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		a.ID, a.PatientID, a.Type, a.Strategy, a.Assessor, a.OccurredAt, a.Factors,
		a.Score, a.RiskLevel, a.Recommendations, a.NextDueAt, a.Status)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Assessment, error) {
	return scanAssessment(r.conn(ctx).QueryRow(ctx, `SELECT `+assessmentCols+` FROM assessment WHERE id = $1`, id))
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Assessment, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM assessment WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+assessmentCols+` FROM assessment WHERE patient_id = $1 ORDER BY occurred_at DESC LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	return items, total, nil
}

func (r *repoPG) GetLatest(ctx context.Context, patientID uuid.UUID, t scoring.AssessmentType) (*Assessment, error) {
	return scanAssessment(r.conn(ctx).QueryRow(ctx, `
		SELECT `+assessmentCols+` FROM assessment
		WHERE patient_id = $1 AND type = $2 AND status = $3
		ORDER BY occurred_at DESC, created_at DESC LIMIT 1`, patientID, t, StatusActive))
}

func (r *repoPG) SupersedeActive(ctx context.Context, patientID uuid.UUID, t scoring.AssessmentType) (int, error) {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE assessment SET status = $3, updated_at = NOW()
		WHERE patient_id = $1 AND type = $2 AND status = $4`,
		patientID, t, StatusSuperseded, StatusActive)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (r *repoPG) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := r.conn(ctx).Exec(ctx, `UPDATE assessment SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) ListDue(ctx context.Context, asOf time.Time) ([]*Assessment, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+assessmentCols+` FROM assessment
		WHERE status = $1 AND next_due_at IS NOT NULL AND next_due_at <= $2
		ORDER BY next_due_at`, StatusActive, asOf)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, nil
}

// -- Action plan items --

const itemCols = `id, assessment_id, description, priority, assignee_role,
	due_at, status, completed_at, notes`

func scanItem(row pgx.Row) (*actionplan.Item, error) {
	var item actionplan.Item
	var assessmentID uuid.UUID
	err := row.Scan(&item.ID, &assessmentID, &item.Description, &item.Priority,
		&item.AssigneeRole, &item.DueAt, &item.Status, &item.CompletedAt, &item.Notes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *repoPG) CreateItems(ctx context.Context, assessmentID uuid.UUID, items []actionplan.Item) error {
	for _, item := range items {
		_, err := r.conn(ctx).Exec(ctx, `
			INSERT INTO action_plan_item (id, assessment_id, description, priority,
				assignee_role, due_at, status)
			VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			item.ID, assessmentID, item.Description, item.Priority,
			item.AssigneeRole, item.DueAt, item.Status)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *repoPG) ListItems(ctx context.Context, assessmentID uuid.UUID) ([]actionplan.Item, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+itemCols+` FROM action_plan_item WHERE assessment_id = $1 ORDER BY due_at, id`, assessmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []actionplan.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}

func (r *repoPG) GetItem(ctx context.Context, itemID uuid.UUID) (*actionplan.Item, error) {
	return scanItem(r.conn(ctx).QueryRow(ctx, `SELECT `+itemCols+` FROM action_plan_item WHERE id = $1`, itemID))
}

func (r *repoPG) UpdateItem(ctx context.Context, itemID uuid.UUID, item *actionplan.Item) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE action_plan_item SET status=$2, completed_at=$3, notes=$4
		WHERE id = $1`,
		itemID, item.Status, item.CompletedAt, item.Notes)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
