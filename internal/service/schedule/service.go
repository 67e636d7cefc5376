package schedule

import (
	"context"
	"time"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/repository"
	apperrors "github.com/jwalitptl/hospital-api/pkg/errors"
	"github.com/jwalitptl/hospital-api/pkg/validator"
)

const workDateLayout = "2006-01-02"

type Service struct {
	repo repository.ScheduleRepository
}

func NewService(repo repository.ScheduleRepository) *Service {
	return &Service{repo: repo}
}

// ListSchedules returns all entries, or one doctor's entries when doctorID is set.
func (s *Service) ListSchedules(ctx context.Context, doctorID *int64) ([]*model.ScheduleEntry, error) {
	entries, err := s.repo.List(ctx, &model.ScheduleFilters{DoctorID: doctorID})
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return entries, nil
}

// CreateSchedule inserts the entry as given: the doctor is not looked up and
// overlapping shifts are accepted.
func (s *Service) CreateSchedule(ctx context.Context, req *model.CreateScheduleRequest) (int64, error) {
	if err := validateSchedule(req); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, &model.ScheduleEntry{
		DoctorID:  req.DoctorID,
		WorkDate:  req.WorkDate,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		return 0, apperrors.NewInternal(err)
	}
	return id, nil
}

// validateSchedule repeats the request's binding rules so the service rejects
// the same input when called without the HTTP layer.
func validateSchedule(req *model.CreateScheduleRequest) error {
	switch {
	case req.DoctorID == 0:
		return apperrors.NewValidation("missing required field: doctor_id", nil)
	case req.WorkDate == "":
		return apperrors.NewValidation("missing required field: work_date", nil)
	case req.StartTime == "":
		return apperrors.NewValidation("missing required field: start_time", nil)
	case req.EndTime == "":
		return apperrors.NewValidation("missing required field: end_time", nil)
	}

	if _, err := time.Parse(workDateLayout, req.WorkDate); err != nil {
		return apperrors.NewInvalidFormat("work_date must match format 2006-01-02", err)
	}
	if !validator.IsClockTime(req.StartTime) {
		return apperrors.NewInvalidFormat("start_time must be a time of day (HH:MM or HH:MM:SS)", nil)
	}
	if !validator.IsClockTime(req.EndTime) {
		return apperrors.NewInvalidFormat("end_time must be a time of day (HH:MM or HH:MM:SS)", nil)
	}
	return nil
}
