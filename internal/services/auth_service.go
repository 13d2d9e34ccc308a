package services

import (
	"errors"
	"fmt"
	"time"

	"signlearn_backend/internal/auth"
	"signlearn_backend/internal/config"
	"signlearn_backend/internal/logger"
	"signlearn_backend/internal/models"
	"signlearn_backend/internal/pkg/email"
	"signlearn_backend/internal/repositories"
	"signlearn_backend/internal/services/dto"
	"signlearn_backend/pkg/apperrors"

	"github.com/google/uuid"
)

const (
	refreshTokenTTL  = 30 * 24 * time.Hour
	resetTokenTTL    = time.Hour
	genericResetMsg  = "If the email is registered, a password reset link has been sent"
	genericResendMsg = "If the email is registered and not yet confirmed, a confirmation link has been sent"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	ConfirmEmail(token string) error
	ResendConfirmation(emailAddr string) (*dto.MessageResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(refreshToken string) (*dto.LoginResponse, error)
	Logout(refreshToken string) error
	ChangePassword(userID uuid.UUID, req *dto.ChangePasswordRequest) error
	ForgotPassword(emailAddr string) (*dto.MessageResponse, error)
	ResetPassword(token, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo  repositories.UserRepository
	tokenRepo repositories.RefreshTokenRepository
	tokens    *auth.TokenManager
	sender    email.Sender
	cfg       *config.Config
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokenRepo repositories.RefreshTokenRepository,
	tokens *auth.TokenManager,
	sender email.Sender,
	cfg *config.Config,
) AuthService {
	return &AuthServiceImpl{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		tokens:    tokens,
		sender:    sender,
		cfg:       cfg,
	}
}

// Register creates an unconfirmed account and emails a confirmation
// link. Login stays blocked until the email is confirmed.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	role, err := s.userRepo.FindRoleByName(models.RoleUser)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	confirmationToken, err := auth.GenerateOpaqueToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:             req.Email,
		PasswordHash:      hash,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		ConfirmationToken: confirmationToken,
		RoleID:            role.ID,
		Role:              role,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.ErrDatabase(err)
	}

	// Email failures never fail the registration.
	s.sendConfirmationEmail(user, confirmationToken)

	resp := &dto.RegisterResponse{Message: "Registration successful. Please check your email to confirm your account."}
	if s.cfg.App.ReturnTokens {
		resp.ConfirmationToken = confirmationToken
	}
	return resp, nil
}

func (s *AuthServiceImpl) ConfirmEmail(token string) error {
	user, err := s.userRepo.FindByConfirmationToken(token)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.ErrDatabase(err)
	}

	user.EmailConfirmed = true
	user.ConfirmationToken = ""
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.ErrDatabase(err)
	}
	return nil
}

// ResendConfirmation regenerates the confirmation token. The response
// is identical whether or not the account exists, to avoid account
// enumeration. Already-confirmed accounts are a silent no-op.
func (s *AuthServiceImpl) ResendConfirmation(emailAddr string) (*dto.MessageResponse, error) {
	resp := &dto.MessageResponse{Message: genericResendMsg}

	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return resp, nil
		}
		return nil, apperrors.ErrDatabase(err)
	}
	if user.EmailConfirmed {
		return resp, nil
	}

	token, err := auth.GenerateOpaqueToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	user.ConfirmationToken = token
	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.ErrDatabase(err)
	}

	s.sendConfirmationEmail(user, token)

	if s.cfg.App.ReturnTokens {
		resp.Token = token
	}
	return resp, nil
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.ErrDatabase(err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.EmailConfirmed {
		return nil, apperrors.ErrEmailNotConfirmed
	}

	return s.issueSession(user)
}

// Refresh rotates the refresh token: the presented token is marked
// used and a fresh one is issued with the new access token.
func (s *AuthServiceImpl) Refresh(refreshToken string) (*dto.LoginResponse, error) {
	rt, err := s.tokenRepo.FindByToken(refreshToken)
	if err != nil {
		if errors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.ErrDatabase(err)
	}
	if !rt.Active() || rt.User == nil {
		return nil, apperrors.ErrInvalidToken
	}

	if err := s.tokenRepo.MarkUsed(rt.ID); err != nil {
		return nil, apperrors.ErrDatabase(err)
	}

	return s.issueSession(rt.User)
}

func (s *AuthServiceImpl) Logout(refreshToken string) error {
	rt, err := s.tokenRepo.FindByToken(refreshToken)
	if err != nil {
		if errors.Is(err, repositories.ErrRefreshTokenNotFound) {
			// Already gone, logout is idempotent.
			return nil
		}
		return apperrors.ErrDatabase(err)
	}
	return s.tokenRepo.RevokeByUser(rt.UserID)
}

func (s *AuthServiceImpl) ChangePassword(userID uuid.UUID, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.ErrDatabase(err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.CurrentPassword) {
		return apperrors.ErrInvalidCredentials
	}
	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return err
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}
	user.PasswordHash = hash
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.ErrDatabase(err)
	}

	// Invalidate existing sessions after a password change.
	return s.tokenRepo.RevokeByUser(userID)
}

// ForgotPassword always answers with the same message regardless of
// whether the account exists.
func (s *AuthServiceImpl) ForgotPassword(emailAddr string) (*dto.MessageResponse, error) {
	resp := &dto.MessageResponse{Message: genericResetMsg}

	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return resp, nil
		}
		return nil, apperrors.ErrDatabase(err)
	}

	token, err := auth.GenerateOpaqueToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	expiry := time.Now().Add(resetTokenTTL)
	user.ResetToken = token
	user.ResetTokenExpiry = &expiry
	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.ErrDatabase(err)
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.App.BaseURL, token)
	if body, renderErr := email.RenderPasswordReset(user.FullName(), link); renderErr == nil {
		if sendErr := s.sender.Send(user.Email, "Reset your password", body); sendErr != nil {
			logger.Warn("failed to send password reset email", "error", sendErr, "email", user.Email)
		}
	}

	if s.cfg.App.ReturnTokens {
		resp.Token = token
	}
	return resp, nil
}

func (s *AuthServiceImpl) ResetPassword(token, newPassword string) error {
	user, err := s.userRepo.FindByResetToken(token)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.ErrDatabase(err)
	}
	if user.ResetTokenExpiry == nil || time.Now().After(*user.ResetTokenExpiry) {
		return apperrors.ErrInvalidToken
	}
	if err := auth.ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hash
	user.ResetToken = ""
	user.ResetTokenExpiry = nil
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.ErrDatabase(err)
	}

	return s.tokenRepo.RevokeByUser(user.ID)
}

func (s *AuthServiceImpl) issueSession(user *models.User) (*dto.LoginResponse, error) {
	accessToken, expiresAt, err := s.tokens.Generate(user.ID, user.FullName(), user.Email, user.RoleName())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshValue, err := auth.GenerateOpaqueToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	rt := &models.RefreshToken{
		Token:     refreshValue,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.tokenRepo.Create(rt); err != nil {
		return nil, apperrors.ErrDatabase(err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshValue,
		ExpiresAt:    expiresAt,
		User:         dto.UserInfoFrom(user),
	}, nil
}

func (s *AuthServiceImpl) sendConfirmationEmail(user *models.User, token string) {
	link := fmt.Sprintf("%s/confirm-email?token=%s", s.cfg.App.BaseURL, token)
	body, err := email.RenderConfirmation(user.FullName(), link)
	if err != nil {
		logger.Error("failed to render confirmation email", "error", err)
		return
	}
	if err := s.sender.Send(user.Email, "Confirm your email", body); err != nil {
		logger.Warn("failed to send confirmation email", "error", err, "email", user.Email)
	}
}
