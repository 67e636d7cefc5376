package patient

import (
	"context"
	"errors"
	"strings"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/repository"
	apperrors "github.com/jwalitptl/hospital-api/pkg/errors"
)

type Service struct {
	repo repository.PatientRepository
}

func NewService(repo repository.PatientRepository) *Service {
	return &Service{repo: repo}
}

// ListPatients returns every patient ordered by name, narrowed to
// case-insensitive substring matches on name or policy number when
// search is non-empty.
func (s *Service) ListPatients(ctx context.Context, search string) ([]*model.Patient, error) {
	patients, err := s.repo.List(ctx, &model.PatientFilters{Search: search})
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return patients, nil
}

func (s *Service) CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (int64, error) {
	if strings.TrimSpace(req.FullName) == "" {
		return 0, apperrors.NewValidation("missing required field: full_name", nil)
	}
	if strings.TrimSpace(req.PolicyNumber) == "" {
		return 0, apperrors.NewValidation("missing required field: policy_number", nil)
	}

	id, err := s.repo.Create(ctx, &model.Patient{
		FullName:     req.FullName,
		PolicyNumber: req.PolicyNumber,
		Email:        req.Email,
	})
	if err != nil {
		return 0, apperrors.NewInternal(err)
	}
	return id, nil
}

func (s *Service) GetPatient(ctx context.Context, id int64) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("Patient", nil)
		}
		return nil, apperrors.NewInternal(err)
	}
	return patient, nil
}
