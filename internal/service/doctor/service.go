package doctor

import (
	"context"
	"strings"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/repository"
	apperrors "github.com/jwalitptl/hospital-api/pkg/errors"
)

type Service struct {
	repo repository.DoctorRepository
}

func NewService(repo repository.DoctorRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListDoctors(ctx context.Context) ([]*model.Doctor, error) {
	doctors, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return doctors, nil
}

func (s *Service) CreateDoctor(ctx context.Context, req *model.CreateDoctorRequest) (int64, error) {
	if err := validateDoctor(req); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, &model.Doctor{
		FullName:       req.FullName,
		Specialization: req.Specialization,
		Phone:          req.Phone,
	})
	if err != nil {
		return 0, apperrors.NewInternal(err)
	}
	return id, nil
}

func validateDoctor(req *model.CreateDoctorRequest) error {
	if strings.TrimSpace(req.FullName) == "" {
		return apperrors.NewValidation("missing required field: full_name", nil)
	}
	if strings.TrimSpace(req.Specialization) == "" {
		return apperrors.NewValidation("missing required field: specialization", nil)
	}
	return nil
}
