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
	"golang.org/x/crypto/bcrypt"
)

func strPtr(s string) *string { return &s }

func TestUserService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockRecorder := services.NewMockRecorder(ctrl)

	svc := services.NewUserService(mockReader, mockWriter, mockRecorder)

	tests := []struct {
		name      string
		id        int64
		user      *models.UserDB
		readerErr error
		wantErr   error
	}{
		{
			name: "found",
			id:   1,
			user: &models.UserDB{ID: 1, Name: "Alice"},
		},
		{
			name:    "not found",
			id:      2,
			user:    nil,
			wantErr: services.ErrUserNotFound,
		},
		{
			name:      "reader error",
			id:        3,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().GetByID(gomock.Any(), tt.id).Return(tt.user, tt.readerErr)

			user, err := svc.Get(context.Background(), tt.id)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.user, user)
			}
		})
	}
}

func TestUserService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockRecorder := services.NewMockRecorder(ctrl)

	svc := services.NewUserService(mockReader, mockWriter, mockRecorder)
	actorID := int64(99)

	t.Run("success hashes password and records activity", func(t *testing.T) {
		in := models.UserCreate{Name: "Alice", Email: "alice@example.com", Password: "pass123", Role: "recruiter"}

		mockWriter.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, got models.UserCreate) (*models.UserDB, error) {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(got.Password), []byte("pass123")))
				assert.Equal(t, models.UserStatusActive, got.Status) // defaulted
				return &models.UserDB{ID: 5, Name: got.Name, Email: got.Email}, nil
			})
		mockRecorder.EXPECT().
			Record(gomock.Any(), actorID, models.ActionCreate, models.EntityUsers, int64(5), "Created user: Alice")

		user, err := svc.Create(context.Background(), actorID, in)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), user.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		in := models.UserCreate{Name: "Bob", Email: "bob@example.com", Password: "x", Role: "admin"}

		mockWriter.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, repositories.ErrUniqueViolation)

		user, err := svc.Create(context.Background(), actorID, in)
		assert.ErrorIs(t, err, services.ErrEmailAlreadyExists)
		assert.Nil(t, user)
	})

	t.Run("validation failures skip the store", func(t *testing.T) {
		bad := []models.UserCreate{
			{Email: "a@b.com", Password: "x", Role: "admin"},                                  // missing name
			{Name: "A", Email: "nope", Password: "x", Role: "admin"},                         // bad email
			{Name: "A", Email: "a@b.com", Role: "admin"},                                     // missing password
			{Name: "A", Email: "a@b.com", Password: "x"},                                     // missing role
			{Name: "A", Email: "a@b.com", Password: "x", Role: "admin", Status: "suspended"}, // bad status
		}
		for _, in := range bad {
			user, err := svc.Create(context.Background(), actorID, in)
			assert.ErrorIs(t, err, services.ErrValidation)
			assert.Nil(t, user)
		}
	})
}

func TestUserService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockRecorder := services.NewMockRecorder(ctrl)

	svc := services.NewUserService(mockReader, mockWriter, mockRecorder)
	actorID := int64(99)

	t.Run("success", func(t *testing.T) {
		patch := models.UserPatch{Name: strPtr("Renamed")}

		mockWriter.EXPECT().
			Update(gomock.Any(), int64(1), gomock.Any()).
			Return(&models.UserDB{ID: 1, Name: "Renamed"}, nil)
		mockRecorder.EXPECT().
			Record(gomock.Any(), actorID, models.ActionUpdate, models.EntityUsers, int64(1), "Updated user: Renamed")

		user, err := svc.Update(context.Background(), actorID, 1, patch)
		assert.NoError(t, err)
		assert.Equal(t, "Renamed", user.Name)
	})

	t.Run("password is rehashed", func(t *testing.T) {
		patch := models.UserPatch{Password: strPtr("newpass")}

		mockWriter.EXPECT().
			Update(gomock.Any(), int64(1), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, got models.UserPatch) (*models.UserDB, error) {
				assert.NotNil(t, got.Password)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*got.Password), []byte("newpass")))
				return &models.UserDB{ID: 1, Name: "Alice"}, nil
			})
		mockRecorder.EXPECT().
			Record(gomock.Any(), actorID, models.ActionUpdate, models.EntityUsers, int64(1), "Updated user: Alice")

		_, err := svc.Update(context.Background(), actorID, 1, patch)
		assert.NoError(t, err)
	})

	t.Run("absent row surfaces as not found", func(t *testing.T) {
		patch := models.UserPatch{Name: strPtr("X")}

		mockWriter.EXPECT().
			Update(gomock.Any(), int64(404), gomock.Any()).
			Return(nil, nil)

		user, err := svc.Update(context.Background(), actorID, 404, patch)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
		assert.Nil(t, user)
	})

	t.Run("invalid patch skips the store", func(t *testing.T) {
		user, err := svc.Update(context.Background(), actorID, 1, models.UserPatch{Email: strPtr("nope")})
		assert.ErrorIs(t, err, services.ErrValidation)
		assert.Nil(t, user)
	})
}

func TestUserService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockRecorder := services.NewMockRecorder(ctrl)

	svc := services.NewUserService(mockReader, mockWriter, mockRecorder)
	actorID := int64(99)

	t.Run("success", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), int64(1)).
			Return(&models.UserDB{ID: 1, Name: "Alice"}, nil)
		mockWriter.EXPECT().Delete(gomock.Any(), int64(1)).Return(true, nil)
		mockRecorder.EXPECT().
			Record(gomock.Any(), actorID, models.ActionDelete, models.EntityUsers, int64(1), "Deleted user: Alice")

		err := svc.Delete(context.Background(), actorID, 1)
		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), int64(404)).Return(nil, nil)

		err := svc.Delete(context.Background(), actorID, 404)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})

	t.Run("row vanished between read and delete", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), int64(2)).
			Return(&models.UserDB{ID: 2, Name: "Bob"}, nil)
		mockWriter.EXPECT().Delete(gomock.Any(), int64(2)).Return(false, nil)

		err := svc.Delete(context.Background(), actorID, 2)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})
}
