package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/staffhub-dev/staffhub/internal/models"
	"github.com/staffhub-dev/staffhub/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	valid := models.UserCreate{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "pass123",
		Role:     "recruiter",
	}

	tests := []struct {
		name         string
		in           models.UserCreate
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantErr      error
		skipReader   bool
	}{
		{
			name:    "successful registration",
			in:      valid,
			wantErr: nil,
		},
		{
			name:         "email already exists",
			in:           valid,
			existingUser: &models.UserDB{ID: 1, Email: valid.Email},
			wantErr:      services.ErrEmailAlreadyExists,
		},
		{
			name:       "invalid email",
			in:         models.UserCreate{Name: "Bob", Email: "not-an-email", Password: "x", Role: "admin"},
			wantErr:    services.ErrValidation,
			skipReader: true,
		},
		{
			name:      "reader error",
			in:        valid,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			in:        valid,
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.skipReader {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), tt.in.Email).
					Return(tt.existingUser, tt.readerErr)
			}

			if tt.existingUser == nil && tt.readerErr == nil && !tt.skipReader {
				mockWriter.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in models.UserCreate) (*models.UserDB, error) {
						if tt.writerErr != nil {
							return nil, tt.writerErr
						}
						// password must arrive hashed, never plaintext
						assert.NotEqual(t, "pass123", in.Password)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(in.Password), []byte("pass123")))
						return &models.UserDB{ID: 1, Name: in.Name, Email: in.Email}, nil
					})
			}

			user, err := svc.Register(context.Background(), tt.in)
			if tt.wantErr != nil {
				assert.Nil(t, user)
				if errors.Is(tt.wantErr, services.ErrValidation) || errors.Is(tt.wantErr, services.ErrEmailAlreadyExists) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.EqualError(t, err, tt.wantErr.Error())
				}
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.in.Email, user.Email)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	tests := []struct {
		name      string
		email     string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		wantErr   error
		expectJWT string
		loginPass string
	}{
		{
			name:      "successful login",
			email:     "alice@example.com",
			user:      &models.UserDB{ID: 1, Email: "alice@example.com", PasswordHash: string(hashed)},
			expectJWT: "token123",
			loginPass: password,
		},
		{
			name:      "user does not exist",
			email:     "bob@example.com",
			user:      nil,
			wantErr:   services.ErrInvalidCredentials,
			loginPass: password,
		},
		{
			name:      "invalid password",
			email:     "carol@example.com",
			user:      &models.UserDB{ID: 2, Email: "carol@example.com", PasswordHash: string(hashed)},
			wantErr:   services.ErrInvalidCredentials,
			loginPass: "wrongpass",
		},
		{
			name:      "reader error",
			email:     "eve@example.com",
			user:      nil,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
			loginPass: password,
		},
		{
			name:      "JWT generation error",
			email:     "dan@example.com",
			user:      &models.UserDB{ID: 3, Email: "dan@example.com", PasswordHash: string(hashed)},
			jwtErr:    errors.New("jwt error"),
			wantErr:   errors.New("jwt error"),
			loginPass: password,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.readerErr == nil && tt.loginPass == password {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.user.ID).
					Return(tt.expectJWT, tt.jwtErr)
			}

			token, user, err := svc.Login(context.Background(), tt.email, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectJWT, token)
				assert.Equal(t, tt.user.ID, user.ID)
			}
		})
	}
}
