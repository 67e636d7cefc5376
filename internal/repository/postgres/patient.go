package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/repository"
	"github.com/jwalitptl/hospital-api/pkg/metrics"
)

type patientRepository struct {
	BaseRepository
}

func NewPatientRepository(db *sqlx.DB, m *metrics.Metrics) repository.PatientRepository {
	return &patientRepository{BaseRepository: NewBaseRepository(db, m)}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) (id int64, err error) {
	defer func(start time.Time) { r.observe("patient_create", start, err) }(time.Now())

	query := `
		INSERT INTO patients (full_name, policy_number, email)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err = r.db.GetContext(ctx, &id, query, patient.FullName, patient.PolicyNumber, patient.Email); err != nil {
		return 0, wrapError("failed to create patient", err)
	}
	patient.ID = id
	return id, nil
}

func (r *patientRepository) Get(ctx context.Context, id int64) (patient *model.Patient, err error) {
	defer func(start time.Time) { r.observe("patient_get", start, err) }(time.Now())

	query := `SELECT id, full_name, policy_number, email FROM patients WHERE id = $1`
	var p model.Patient
	if err = r.db.GetContext(ctx, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return &p, nil
}

func (r *patientRepository) List(ctx context.Context, filters *model.PatientFilters) (patients []*model.Patient, err error) {
	defer func(start time.Time) { r.observe("patient_list", start, err) }(time.Now())

	query := `SELECT id, full_name, policy_number, email FROM patients`
	args := []interface{}{}

	if filters != nil && filters.Search != "" {
		query += ` WHERE full_name ILIKE $1 OR policy_number ILIKE $1`
		args = append(args, containsPattern(filters.Search))
	}

	query += ` ORDER BY full_name ASC`

	patients = []*model.Patient{}
	if err = r.db.SelectContext(ctx, &patients, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

func (r *patientRepository) Exists(ctx context.Context, id int64) (exists bool, err error) {
	defer func(start time.Time) { r.observe("patient_exists", start, err) }(time.Now())

	query := `SELECT EXISTS (SELECT 1 FROM patients WHERE id = $1)`
	if err = r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("failed to check patient: %w", err)
	}
	return exists, nil
}
