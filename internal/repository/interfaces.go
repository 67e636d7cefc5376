package repository

import (
	"context"
	"errors"

	"github.com/jwalitptl/hospital-api/internal/model"
)

// All repository interfaces in one file
type (
	DoctorRepository interface {
		Create(ctx context.Context, doctor *model.Doctor) (int64, error)
		List(ctx context.Context) ([]*model.Doctor, error)
		Exists(ctx context.Context, id int64) (bool, error)
	}

	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) (int64, error)
		Get(ctx context.Context, id int64) (*model.Patient, error)
		List(ctx context.Context, filters *model.PatientFilters) ([]*model.Patient, error)
		Exists(ctx context.Context, id int64) (bool, error)
	}

	// AppointmentRepository.UpdateStatus reports false when no row matched.
	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) (int64, error)
		List(ctx context.Context, filters *model.AppointmentFilters) ([]*model.AppointmentView, error)
		UpdateStatus(ctx context.Context, id int64, status model.AppointmentStatus) (bool, error)
	}

	ScheduleRepository interface {
		Create(ctx context.Context, entry *model.ScheduleEntry) (int64, error)
		List(ctx context.Context, filters *model.ScheduleFilters) ([]*model.ScheduleEntry, error)
	}

	// Pinger backs the readiness probe.
	Pinger interface {
		PingContext(ctx context.Context) error
	}
)

// ErrNotFound is returned by lookups that matched no row.
var ErrNotFound = errors.New("record not found")
