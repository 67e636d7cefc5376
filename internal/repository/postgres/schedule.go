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

type scheduleRepository struct {
	BaseRepository
}

func NewScheduleRepository(db *sqlx.DB, m *metrics.Metrics) repository.ScheduleRepository {
	return &scheduleRepository{BaseRepository: NewBaseRepository(db, m)}
}

func (r *scheduleRepository) Create(ctx context.Context, entry *model.ScheduleEntry) (id int64, err error) {
	defer func(start time.Time) { r.observe("schedule_create", start, err) }(time.Now())

	query := `
		INSERT INTO schedules (doctor_id, work_date, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	if err = r.db.GetContext(ctx, &id, query, entry.DoctorID, entry.WorkDate, entry.StartTime, entry.EndTime); err != nil {
		return 0, wrapError("failed to create schedule", err)
	}
	entry.ID = id
	return id, nil
}

// List casts the date and time columns to text so they keep their SQL form.
func (r *scheduleRepository) List(ctx context.Context, filters *model.ScheduleFilters) (entries []*model.ScheduleEntry, err error) {
	defer func(start time.Time) { r.observe("schedule_list", start, err) }(time.Now())

	query := `
		SELECT id, doctor_id,
			   work_date::text AS work_date,
			   start_time::text AS start_time,
			   end_time::text AS end_time
		FROM schedules
	`
	args := []interface{}{}

	if filters != nil && filters.DoctorID != nil {
		query += " WHERE doctor_id = $1"
		args = append(args, *filters.DoctorID)
	}

	query += " ORDER BY work_date, start_time, id"

	entries = []*model.ScheduleEntry{}
	if err = r.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	return entries, nil
}
