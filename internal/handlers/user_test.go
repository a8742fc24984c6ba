package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/staffhub-dev/staffhub/internal/models"
	"github.com/staffhub-dev/staffhub/internal/services"
	"github.com/stretchr/testify/assert"
)

// userTestRouter mounts the user handlers the way main does, so {id} and
// {term} route parameters resolve.
func userTestRouter(svc UserManager) http.Handler {
	r := chi.NewRouter()
	r.Get("/users", NewListUsersHandler(svc))
	r.Get("/users/search/{term}", NewSearchUsersHandler(svc))
	r.Get("/users/{id}", NewGetUserHandler(svc))
	r.Post("/users", NewCreateUserHandler(svc))
	r.Put("/users/{id}", NewUpdateUserHandler(svc))
	r.Delete("/users/{id}", NewDeleteUserHandler(svc))
	return r
}

func TestListUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockUserManager(ctrl)
		mockSvc.EXPECT().List(gomock.Any()).
			Return([]models.UserDB{{ID: 1, Name: "Alice"}, {ID: 2, Name: "Bob"}}, nil)

		rr := httptest.NewRecorder()
		userTestRouter(mockSvc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/users", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		var users []models.UserDB
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &users))
		assert.Len(t, users, 2)
	})

	t.Run("internal server error", func(t *testing.T) {
		mockSvc := NewMockUserManager(ctrl)
		mockSvc.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error"))

		rr := httptest.NewRecorder()
		userTestRouter(mockSvc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/users", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, rr.Body.String())
	})
}

func TestGetUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		url          string
		mockSetup    func(m *MockUserManager)
		expectedCode int
	}{
		{
			name: "found",
			url:  "/users/1",
			mockSetup: func(m *MockUserManager) {
				m.EXPECT().Get(gomock.Any(), int64(1)).
					Return(&models.UserDB{ID: 1, Name: "Alice"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "not found",
			url:  "/users/404",
			mockSetup: func(m *MockUserManager) {
				m.EXPECT().Get(gomock.Any(), int64(404)).
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "non-numeric id",
			url:          "/users/abc",
			expectedCode: http.StatusNotFound,
		},
		{
			name: "internal server error",
			url:  "/users/1",
			mockSetup: func(m *MockUserManager) {
				m.EXPECT().Get(gomock.Any(), int64(1)).
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserManager(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := httptest.NewRecorder()
			userTestRouter(mockSvc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestSearchUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserManager(ctrl)
	mockSvc.EXPECT().Search(gomock.Any(), "alice").
		Return([]models.UserDB{{ID: 1, Name: "Alice"}}, nil)

	rr := httptest.NewRecorder()
	userTestRouter(mockSvc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/users/search/alice", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var users []models.UserDB
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &users))
	assert.Len(t, users, 1)
}

func TestCreateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockUserManager)
		expectedCode int
	}{
		{
			name: "created",
			body: `{"name":"Alice","email":"alice@example.com","password":"secret","role":"recruiter"}`,
			mockSetup: func(m *MockUserManager) {
				m.EXPECT().
					Create(gomock.Any(), int64(0), gomock.Any()).
					Return(&models.UserDB{ID: 1, Name: "Alice"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "duplicate email",
			body: `{"name":"Alice","email":"alice@example.com","password":"secret","role":"recruiter"}`,
			mockSetup: func(m *MockUserManager) {
				m.EXPECT().
					Create(gomock.Any(), int64(0), gomock.Any()).
					Return(nil, services.ErrEmailAlreadyExists)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid json",
			body:         "{invalid",
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "internal server error",
			body: `{"name":"Alice","email":"alice@example.com","password":"secret","role":"recruiter"}`,
			mockSetup: func(m *MockUserManager) {
				m.EXPECT().
					Create(gomock.Any(), int64(0), gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserManager(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			userTestRouter(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestUpdateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		url          string
		body         string
		mockSetup    func(m *MockUserManager)
		expectedCode int
	}{
		{
			name: "updated",
			url:  "/users/1",
			body: `{"name":"Renamed"}`,
			mockSetup: func(m *MockUserManager) {
				m.EXPECT().
					Update(gomock.Any(), int64(0), int64(1), gomock.Any()).
					Return(&models.UserDB{ID: 1, Name: "Renamed"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "empty patch reported as not found",
			url:  "/users/1",
			body: `{}`,
			mockSetup: func(m *MockUserManager) {
				m.EXPECT().
					Update(gomock.Any(), int64(0), int64(1), gomock.Any()).
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "validation error",
			url:  "/users/1",
			body: `{"email":"nope"}`,
			mockSetup: func(m *MockUserManager) {
				m.EXPECT().
					Update(gomock.Any(), int64(0), int64(1), gomock.Any()).
					Return(nil, services.ErrValidation)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid json",
			url:          "/users/1",
			body:         "{invalid",
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserManager(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodPut, tt.url, bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			userTestRouter(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestDeleteUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("deleted", func(t *testing.T) {
		mockSvc := NewMockUserManager(ctrl)
		mockSvc.EXPECT().Delete(gomock.Any(), int64(0), int64(1)).Return(nil)

		rr := httptest.NewRecorder()
		userTestRouter(mockSvc).ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/users/1", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"message":"User deleted successfully"}`, rr.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := NewMockUserManager(ctrl)
		mockSvc.EXPECT().Delete(gomock.Any(), int64(0), int64(404)).Return(services.ErrUserNotFound)

		rr := httptest.NewRecorder()
		userTestRouter(mockSvc).ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/users/404", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"User not found"}`, rr.Body.String())
	})
}
