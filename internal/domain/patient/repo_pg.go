package patient

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

// ErrNotFound is returned when no patient matches the lookup.
var ErrNotFound = errors.New("patient not found")

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

const patientCols = `id, hospital_number, first_name, last_name, birth_date, sex,
	diagnosis, comorbidities, height_cm, weight_kg, activity_level,
	created_at, updated_at`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	var comorbidities []byte
	err := row.Scan(&p.ID, &p.HospitalNumber, &p.FirstName, &p.LastName, &p.BirthDate, &p.Sex,
		&p.Diagnosis, &comorbidities, &p.HeightCm, &p.WeightKg, &p.ActivityLevel,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if len(comorbidities) > 0 {
		if err := json.Unmarshal(comorbidities, &p.Comorbidities); err != nil {
			return nil, fmt.Errorf("decode comorbidities: %w", err)
		}
	}
	return &p, nil
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	comorbidities, err := json.Marshal(p.Comorbidities)
	if err != nil {
		return fmt.Errorf("encode comorbidities: %w", err)
	}
	_, err = r.conn(ctx).Exec(ctx, `
		INSERT INTO patient (id, hospital_number, first_name, last_name, birth_date, sex,
			diagnosis, comorbidities, height_cm, weight_kg, activity_level)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		p.ID, p.HospitalNumber, p.FirstName, p.LastName, p.BirthDate, p.Sex,
		p.Diagnosis, comorbidities, p.HeightCm, p.WeightKg, p.ActivityLevel)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return scanPatient(r.conn(ctx).QueryRow(ctx, `SELECT `+patientCols+` FROM patient WHERE id = $1`, id))
}

func (r *repoPG) GetByHospitalNumber(ctx context.Context, hospitalNumber string) (*Patient, error) {
	return scanPatient(r.conn(ctx).QueryRow(ctx, `SELECT `+patientCols+` FROM patient WHERE hospital_number = $1`, hospitalNumber))
}

func (r *repoPG) Update(ctx context.Context, p *Patient) error {
	comorbidities, err := json.Marshal(p.Comorbidities)
	if err != nil {
		return fmt.Errorf("encode comorbidities: %w", err)
	}
	_, err = r.conn(ctx).Exec(ctx, `
		UPDATE patient SET first_name=$2, last_name=$3, birth_date=$4, sex=$5,
			diagnosis=$6, comorbidities=$7, height_cm=$8, weight_kg=$9,
			activity_level=$10, updated_at=NOW()
		WHERE id = $1`,
		p.ID, p.FirstName, p.LastName, p.BirthDate, p.Sex,
		p.Diagnosis, comorbidities, p.HeightCm, p.WeightKg, p.ActivityLevel)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM patient`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+patientCols+` FROM patient ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, nil
}
