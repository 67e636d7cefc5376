package doctor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/repository/mocks"
	apperrors "github.com/jwalitptl/hospital-api/pkg/errors"
)

func TestCreateDoctor(t *testing.T) {
	repo := new(mocks.DoctorRepository)
	svc := NewService(repo)
	phone := "+70000000000"

	repo.On("Create", mock.Anything, &model.Doctor{
		FullName:       "Gregory House",
		Specialization: "Diagnostics",
		Phone:          &phone,
	}).Return(int64(7), nil)

	id, err := svc.CreateDoctor(context.Background(), &model.CreateDoctorRequest{
		FullName:       "Gregory House",
		Specialization: "Diagnostics",
		Phone:          &phone,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	repo.AssertExpectations(t)
}

func TestCreateDoctor_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		req  model.CreateDoctorRequest
		msg  string
	}{
		{"no name", model.CreateDoctorRequest{Specialization: "Surgery"}, "missing required field: full_name"},
		{"blank name", model.CreateDoctorRequest{FullName: "   ", Specialization: "Surgery"}, "missing required field: full_name"},
		{"no specialization", model.CreateDoctorRequest{FullName: "Ivanov"}, "missing required field: specialization"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.DoctorRepository)
			_, err := NewService(repo).CreateDoctor(context.Background(), &tt.req)

			appErr, ok := apperrors.As(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.ErrValidation, appErr.Code)
			assert.Equal(t, tt.msg, appErr.Message)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestListDoctors(t *testing.T) {
	repo := new(mocks.DoctorRepository)
	doctors := []*model.Doctor{{ID: 1, FullName: "A"}, {ID: 2, FullName: "B"}}
	repo.On("List", mock.Anything).Return(doctors, nil)

	got, err := NewService(repo).ListDoctors(context.Background())
	require.NoError(t, err)
	assert.Equal(t, doctors, got)
}

func TestListDoctors_StoreFailure(t *testing.T) {
	repo := new(mocks.DoctorRepository)
	repo.On("List", mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := NewService(repo).ListDoctors(context.Background())
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrInternal, appErr.Code)
}
