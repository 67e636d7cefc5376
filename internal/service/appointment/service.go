package appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/repository"
	apperrors "github.com/jwalitptl/hospital-api/pkg/errors"
)

type Service struct {
	repo     repository.AppointmentRepository
	doctors  repository.DoctorRepository
	patients repository.PatientRepository
	now      func() time.Time
	location *time.Location
}

type Option func(*Service)

// WithClock replaces time.Now as the reference for "in the future".
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLocation sets the zone for timestamps that carry no offset.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) { s.location = loc }
}

func NewService(repo repository.AppointmentRepository, doctors repository.DoctorRepository, patients repository.PatientRepository, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		doctors:  doctors,
		patients: patients,
		now:      time.Now,
		location: time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateAppointment runs the checks in order and stops at the first failure,
// so nothing is written unless every check passes. The existence checks and
// the insert are separate statements.
func (s *Service) CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (int64, error) {
	switch {
	case req.DoctorID == 0:
		return 0, apperrors.NewValidation("missing required field: doctor_id", nil)
	case req.PatientID == 0:
		return 0, apperrors.NewValidation("missing required field: patient_id", nil)
	case strings.TrimSpace(req.AppointmentTime) == "":
		return 0, apperrors.NewValidation("missing required field: appointment_time", nil)
	}

	at, err := model.ParseAppointmentTime(strings.TrimSpace(req.AppointmentTime), s.location)
	if err != nil {
		return 0, apperrors.NewInvalidFormat("invalid appointment_time format, expected ISO 8601", err)
	}

	if !at.After(s.now()) {
		return 0, apperrors.NewValidation("appointment_time must be in the future", nil)
	}

	exists, err := s.doctors.Exists(ctx, req.DoctorID)
	if err != nil {
		return 0, apperrors.NewInternal(err)
	}
	if !exists {
		return 0, apperrors.NewNotFound("Doctor", nil)
	}

	exists, err = s.patients.Exists(ctx, req.PatientID)
	if err != nil {
		return 0, apperrors.NewInternal(err)
	}
	if !exists {
		return 0, apperrors.NewNotFound("Patient", nil)
	}

	id, err := s.repo.Create(ctx, &model.Appointment{
		DoctorID:        req.DoctorID,
		PatientID:       req.PatientID,
		AppointmentTime: at,
		Status:          model.AppointmentStatusPlanned,
	})
	if err != nil {
		return 0, apperrors.NewInternal(err)
	}

	log.Ctx(ctx).Debug().
		Int64("appointment_id", id).
		Int64("doctor_id", req.DoctorID).
		Int64("patient_id", req.PatientID).
		Msg("appointment created")

	return id, nil
}

// ListAppointments applies the planned status when filters carry none.
func (s *Service) ListAppointments(ctx context.Context, filters *model.AppointmentFilters) ([]*model.AppointmentView, error) {
	if filters == nil {
		filters = &model.AppointmentFilters{}
	}
	if filters.Status == "" {
		filters.Status = model.AppointmentStatusPlanned
	}

	appointments, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return appointments, nil
}

// UpdateStatus accepts any transition between valid statuses.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) error {
	if status == "" {
		return apperrors.NewValidation("missing required field: status", nil)
	}

	st := model.AppointmentStatus(status)
	if !st.Valid() {
		return apperrors.NewValidation(fmt.Sprintf("invalid status, must be one of: %s", statusList()), nil)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, st)
	if err != nil {
		return apperrors.NewInternal(err)
	}
	if !updated {
		return apperrors.NewNotFound("Appointment", nil)
	}
	return nil
}

func statusList() string {
	names := make([]string, len(model.AppointmentStatuses))
	for i, st := range model.AppointmentStatuses {
		names[i] = string(st)
	}
	return strings.Join(names, ", ")
}
