package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/staffhub-dev/staffhub/internal/models"
	"github.com/staffhub-dev/staffhub/internal/repositories"
	"github.com/staffhub-dev/staffhub/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestCompanyService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockCompanyReader(ctrl)
	mockWriter := services.NewMockCompanyWriter(ctrl)
	mockRecorder := services.NewMockRecorder(ctrl)

	svc := services.NewCompanyService(mockReader, mockWriter, mockRecorder)
	actorID := int64(7)

	valid := models.CompanyCreate{
		Name:     "Acme",
		Industry: "Manufacturing",
		Location: "Springfield",
		Email:    "contact@acme.example",
	}

	t.Run("success defaults status and records activity", func(t *testing.T) {
		mockWriter.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, got models.CompanyCreate) (*models.CompanyDB, error) {
				assert.Equal(t, models.CompanyStatusActive, got.Status)
				return &models.CompanyDB{ID: 3, Name: got.Name}, nil
			})
		mockRecorder.EXPECT().
			Record(gomock.Any(), actorID, models.ActionCreate, models.EntityCompanies, int64(3), "Created company: Acme")

		company, err := svc.Create(context.Background(), actorID, valid)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), company.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockWriter.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, repositories.ErrUniqueViolation)

		company, err := svc.Create(context.Background(), actorID, valid)
		assert.ErrorIs(t, err, services.ErrEmailAlreadyExists)
		assert.Nil(t, company)
	})

	t.Run("validation failures skip the store", func(t *testing.T) {
		bad := []models.CompanyCreate{
			{Industry: "X", Location: "Y", Email: "a@b.com"},                                    // missing name
			{Name: "A", Location: "Y", Email: "a@b.com"},                                       // missing industry
			{Name: "A", Industry: "X", Email: "a@b.com"},                                       // missing location
			{Name: "A", Industry: "X", Location: "Y", Email: "nope"},                           // bad email
			{Name: "A", Industry: "X", Location: "Y", Email: "a@b.com", Employees: -1},         // negative headcount
			{Name: "A", Industry: "X", Location: "Y", Email: "a@b.com", Status: "liquidated"},  // bad status
		}
		for _, in := range bad {
			company, err := svc.Create(context.Background(), actorID, in)
			assert.ErrorIs(t, err, services.ErrValidation)
			assert.Nil(t, company)
		}
	})
}

func TestCompanyService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockCompanyReader(ctrl)
	mockWriter := services.NewMockCompanyWriter(ctrl)
	mockRecorder := services.NewMockRecorder(ctrl)

	svc := services.NewCompanyService(mockReader, mockWriter, mockRecorder)
	actorID := int64(7)

	t.Run("success", func(t *testing.T) {
		patch := models.CompanyPatch{Location: strPtr("Berlin")}

		mockWriter.EXPECT().
			Update(gomock.Any(), int64(3), gomock.Any()).
			Return(&models.CompanyDB{ID: 3, Name: "Acme"}, nil)
		mockRecorder.EXPECT().
			Record(gomock.Any(), actorID, models.ActionUpdate, models.EntityCompanies, int64(3), "Updated company: Acme")

		company, err := svc.Update(context.Background(), actorID, 3, patch)
		assert.NoError(t, err)
		assert.Equal(t, "Acme", company.Name)
	})

	t.Run("absent row surfaces as not found", func(t *testing.T) {
		mockWriter.EXPECT().
			Update(gomock.Any(), int64(404), gomock.Any()).
			Return(nil, nil)

		company, err := svc.Update(context.Background(), actorID, 404, models.CompanyPatch{Name: strPtr("X")})
		assert.ErrorIs(t, err, services.ErrCompanyNotFound)
		assert.Nil(t, company)
	})
}

func TestCompanyService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockCompanyReader(ctrl)
	mockWriter := services.NewMockCompanyWriter(ctrl)
	mockRecorder := services.NewMockRecorder(ctrl)

	svc := services.NewCompanyService(mockReader, mockWriter, mockRecorder)
	actorID := int64(7)

	t.Run("success", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), int64(3)).
			Return(&models.CompanyDB{ID: 3, Name: "Acme"}, nil)
		mockWriter.EXPECT().Delete(gomock.Any(), int64(3)).Return(true, nil)
		mockRecorder.EXPECT().
			Record(gomock.Any(), actorID, models.ActionDelete, models.EntityCompanies, int64(3), "Deleted company: Acme")

		assert.NoError(t, svc.Delete(context.Background(), actorID, 3))
	})

	t.Run("not found", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), int64(404)).Return(nil, nil)

		err := svc.Delete(context.Background(), actorID, 404)
		assert.ErrorIs(t, err, services.ErrCompanyNotFound)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), int64(1)).
			Return(nil, errors.New("db error"))

		err := svc.Delete(context.Background(), actorID, 1)
		assert.EqualError(t, err, "db error")
	})
}
