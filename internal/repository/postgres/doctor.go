package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/repository"
	"github.com/jwalitptl/hospital-api/pkg/metrics"
)

type doctorRepository struct {
	BaseRepository
}

func NewDoctorRepository(db *sqlx.DB, m *metrics.Metrics) repository.DoctorRepository {
	return &doctorRepository{BaseRepository: NewBaseRepository(db, m)}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *model.Doctor) (id int64, err error) {
	defer func(start time.Time) { r.observe("doctor_create", start, err) }(time.Now())

	query := `
		INSERT INTO doctors (full_name, specialization, phone)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err = r.db.GetContext(ctx, &id, query, doctor.FullName, doctor.Specialization, doctor.Phone); err != nil {
		return 0, wrapError("failed to create doctor", err)
	}
	doctor.ID = id
	return id, nil
}

func (r *doctorRepository) List(ctx context.Context) (doctors []*model.Doctor, err error) {
	defer func(start time.Time) { r.observe("doctor_list", start, err) }(time.Now())

	query := `SELECT id, full_name, specialization, phone FROM doctors ORDER BY id`
	doctors = []*model.Doctor{}
	if err = r.db.SelectContext(ctx, &doctors, query); err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

func (r *doctorRepository) Exists(ctx context.Context, id int64) (exists bool, err error) {
	defer func(start time.Time) { r.observe("doctor_exists", start, err) }(time.Now())

	query := `SELECT EXISTS (SELECT 1 FROM doctors WHERE id = $1)`
	if err = r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("failed to check doctor: %w", err)
	}
	return exists, nil
}
