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

type appointmentRepository struct {
	BaseRepository
}

func NewAppointmentRepository(db *sqlx.DB, m *metrics.Metrics) repository.AppointmentRepository {
	return &appointmentRepository{BaseRepository: NewBaseRepository(db, m)}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) (id int64, err error) {
	defer func(start time.Time) { r.observe("appointment_create", start, err) }(time.Now())

	query := `
		INSERT INTO appointments (doctor_id, patient_id, appointment_time, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err = r.db.GetContext(ctx, &id, query,
		appointment.DoctorID,
		appointment.PatientID,
		appointment.AppointmentTime,
		appointment.Status,
	)
	if err != nil {
		return 0, wrapError("failed to create appointment", err)
	}
	appointment.ID = id
	return id, nil
}

func (r *appointmentRepository) List(ctx context.Context, filters *model.AppointmentFilters) (appointments []*model.AppointmentView, err error) {
	defer func(start time.Time) { r.observe("appointment_list", start, err) }(time.Now())

	status := model.AppointmentStatusPlanned
	if filters != nil && filters.Status != "" {
		status = filters.Status
	}

	query := `
		SELECT a.id, a.doctor_id, a.patient_id, a.appointment_time, a.status,
			   d.full_name AS doctor_name, p.full_name AS patient_name
		FROM appointments a
		JOIN doctors d ON d.id = a.doctor_id
		JOIN patients p ON p.id = a.patient_id
		WHERE a.status = $1
	`
	args := []interface{}{status}
	argCount := 2

	if filters != nil && filters.DoctorID != nil {
		query += fmt.Sprintf(" AND a.doctor_id = $%d", argCount)
		args = append(args, *filters.DoctorID)
		argCount++
	}

	if filters != nil && filters.PatientID != nil {
		query += fmt.Sprintf(" AND a.patient_id = $%d", argCount)
		args = append(args, *filters.PatientID)
	}

	query += " ORDER BY a.appointment_time ASC"

	appointments = []*model.AppointmentView{}
	if err = r.db.SelectContext(ctx, &appointments, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id int64, status model.AppointmentStatus) (updated bool, err error) {
	defer func(start time.Time) { r.observe("appointment_update_status", start, err) }(time.Now())

	query := `UPDATE appointments SET status = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return false, wrapError("failed to update appointment", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}
