package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

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

const mealPlanCols = `id, patient_id, profile, plan, generated_at, created_at, updated_at`

func scanMealPlan(row pgx.Row) (*MealPlan, error) {
	var mp MealPlan
	var profile, plan []byte
	err := row.Scan(&mp.ID, &mp.PatientID, &profile, &plan, &mp.GeneratedAt,
		&mp.CreatedAt, &mp.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(profile, &mp.Profile); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	if err := json.Unmarshal(plan, &mp.Plan); err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	return &mp, nil
}

func (r *repoPG) Upsert(ctx context.Context, mp *MealPlan) error {
	if mp.ID == uuid.Nil {
		mp.ID = uuid.New()
	}
	profile, err := json.Marshal(mp.Profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	plan, err := json.Marshal(mp.Plan)
	if err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	// RETURNING keeps the caller's view of the row identity stable when the
	// insert resolves to an update of the existing row.
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO meal_plan (id, patient_id, profile, plan, generated_at)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (patient_id) DO UPDATE SET
			profile = EXCLUDED.profile,
			plan = EXCLUDED.plan,
			generated_at = EXCLUDED.generated_at,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`,
		mp.ID, mp.PatientID, profile, plan, mp.GeneratedAt).
		Scan(&mp.ID, &mp.CreatedAt, &mp.UpdatedAt)
}

func (r *repoPG) GetByPatient(ctx context.Context, patientID uuid.UUID) (*MealPlan, error) {
	return scanMealPlan(r.conn(ctx).QueryRow(ctx, `SELECT `+mealPlanCols+` FROM meal_plan WHERE patient_id = $1`, patientID))
}

func (r *repoPG) DeleteByPatient(ctx context.Context, patientID uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM meal_plan WHERE patient_id = $1`, patientID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
