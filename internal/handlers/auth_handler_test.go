package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"signlearn_backend/internal/auth"
	"signlearn_backend/internal/services/dto"
	"signlearn_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubAuthService implements services.AuthService with canned results.
type stubAuthService struct {
	registerResp *dto.RegisterResponse
	registerErr  error
	loginResp    *dto.LoginResponse
	loginErr     error
	confirmErr   error
}

func (s *stubAuthService) Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	return s.registerResp, s.registerErr
}

func (s *stubAuthService) ConfirmEmail(token string) error { return s.confirmErr }

func (s *stubAuthService) ResendConfirmation(email string) (*dto.MessageResponse, error) {
	return &dto.MessageResponse{Message: "ok"}, nil
}

func (s *stubAuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return s.loginResp, s.loginErr
}

func (s *stubAuthService) Refresh(refreshToken string) (*dto.LoginResponse, error) {
	return s.loginResp, s.loginErr
}

func (s *stubAuthService) Logout(refreshToken string) error { return nil }

func (s *stubAuthService) ChangePassword(userID uuid.UUID, req *dto.ChangePasswordRequest) error {
	return nil
}

func (s *stubAuthService) ForgotPassword(email string) (*dto.MessageResponse, error) {
	return &dto.MessageResponse{Message: "ok"}, nil
}

func (s *stubAuthService) ResetPassword(token, newPassword string) error { return nil }

// stubUserService implements services.UserService.
type stubUserService struct {
	info *dto.UserInfo
	err  error
}

func (s *stubUserService) GetByID(id uuid.UUID) (*dto.UserInfo, error) { return s.info, s.err }
func (s *stubUserService) List(limit, offset int) (*dto.UserListResponse, error) {
	return &dto.UserListResponse{}, nil
}
func (s *stubUserService) Update(id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserInfo, error) {
	return s.info, s.err
}
func (s *stubUserService) Delete(id uuid.UUID) error { return s.err }
func (s *stubUserService) UploadProfilePicture(id uuid.UUID, file *multipart.FileHeader) (string, error) {
	return "", nil
}

func newAuthRouter(authSvc *stubAuthService, userSvc *stubUserService, tokens *auth.TokenManager) *gin.Engine {
	router := gin.New()
	h := NewAuthHandler(newTestBase(), authSvc, userSvc, tokens)
	api := router.Group("/api")
	h.RegisterRoutes(api)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint_Created(t *testing.T) {
	t.Parallel()

	authSvc := &stubAuthService{registerResp: &dto.RegisterResponse{Message: "check your email"}}
	router := newAuthRouter(authSvc, &stubUserService{}, testTokens())

	w := postJSON(t, router, "/api/account/register", dto.RegisterRequest{
		Email:     "new@example.com",
		Password:  "password123",
		FirstName: "New",
	}, "")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "check your email")
}

func TestRegisterEndpoint_ValidationFailure(t *testing.T) {
	t.Parallel()

	router := newAuthRouter(&stubAuthService{}, &stubUserService{}, testTokens())

	w := postJSON(t, router, "/api/account/register", map[string]string{
		"email":    "not-an-email",
		"password": "short",
	}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email")
}

func TestRegisterEndpoint_DuplicateEmailConflict(t *testing.T) {
	t.Parallel()

	authSvc := &stubAuthService{registerErr: apperrors.ErrEmailAlreadyExists}
	router := newAuthRouter(authSvc, &stubUserService{}, testTokens())

	w := postJSON(t, router, "/api/account/register", dto.RegisterRequest{
		Email:     "dup@example.com",
		Password:  "password123",
		FirstName: "Dup",
	}, "")

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginEndpoint_UnconfirmedEmailForbidden(t *testing.T) {
	t.Parallel()

	authSvc := &stubAuthService{loginErr: apperrors.ErrEmailNotConfirmed}
	router := newAuthRouter(authSvc, &stubUserService{}, testTokens())

	w := postJSON(t, router, "/api/account/login", dto.LoginRequest{
		Email:    "pending@example.com",
		Password: "password123",
	}, "")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestConfirmEmailEndpoint_MissingToken(t *testing.T) {
	t.Parallel()

	router := newAuthRouter(&stubAuthService{}, &stubUserService{}, testTokens())

	req := httptest.NewRequest(http.MethodGet, "/api/account/confirm-email", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConfirmEmailEndpoint_InvalidToken(t *testing.T) {
	t.Parallel()

	router := newAuthRouter(&stubAuthService{confirmErr: apperrors.ErrInvalidToken}, &stubUserService{}, testTokens())

	req := httptest.NewRequest(http.MethodGet, "/api/account/confirm-email?token=bogus", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
