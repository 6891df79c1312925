package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/lendhub/internal/domain"
	"github.com/GlebRadaev/lendhub/internal/service/authservice"
	"github.com/GlebRadaev/lendhub/pkg/utils"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)
	user := &domain.User{ID: "u-1", Name: "newuser", Role: "Borrower", PasswordHash: "hashedpassword"}

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedToken string
	}{
		{
			name: "Successful registration",
			body: `{"name":"newuser","password":"password123","role":"Borrower"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "newuser", "password123", "Borrower").Return(user, nil)
				service.EXPECT().GenerateToken(user).Return("some-jwt-token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedToken: "Bearer some-jwt-token",
		},
		{
			name: "User already exists",
			body: `{"name":"existinguser","password":"password123","role":"Lender"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "existinguser", "password123", "Lender").Return(nil, authservice.ErrUserExists)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "username already taken",
		},
		{
			name: "Admin role refused",
			body: `{"name":"mallory","password":"password123","role":"Admin"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "mallory", "password123", "Admin").Return(nil, authservice.ErrForbiddenRole)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "role can't be self-assigned",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Validation failed",
			body:          `{"name":"ab","password":"password123"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "name must be at least 3 characters; role is required",
		},
		{
			name: "Repository failure",
			body: `{"name":"newuser","password":"password123","role":"Borrower"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "newuser", "password123", "Borrower").Return(nil, errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error: db down",
		},
		{
			name: "Error generating token",
			body: `{"name":"newuser","password":"password123","role":"Borrower"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "newuser", "password123", "Borrower").Return(user, nil)
				service.EXPECT().
					GenerateToken(user).
					Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedToken, rr.Header().Get("Authorization"))

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)
	user := &domain.User{ID: "u-1", Name: "testuser", Role: "Lender", PasswordHash: "hashedpassword"}

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"name":"testuser","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "testuser", "password123").
					Return(user, nil)

				service.EXPECT().
					GenerateToken(user).
					Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"name":"testuser","password":"wrongpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "testuser", "wrongpassword").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name: "User lookup failure",
			body: `{"name":"testuser","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "testuser", "password123").
					Return(nil, errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error: db down",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Missing password",
			body:          `{"name":"testuser"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "password is required",
		},
		{
			name: "Error generating token",
			body: `{"name":"testuser","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "testuser", "password123").
					Return(user, nil)
				service.EXPECT().
					GenerateToken(user).
					Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			var resp struct {
				Token string       `json:"token"`
				User  *domain.User `json:"user"`
			}
			err := json.NewDecoder(rr.Body).Decode(&resp)
			assert.NoError(t, err)
			assert.Equal(t, "some-jwt-token", resp.Token)
			assert.Equal(t, "testuser", resp.User.Name)
		})
	}
}
