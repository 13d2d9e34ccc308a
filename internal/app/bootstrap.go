package app

import (
	"errors"

	"signlearn_backend/internal/auth"
	"signlearn_backend/internal/config"
	"signlearn_backend/internal/logger"
	"signlearn_backend/internal/models"
	"signlearn_backend/internal/repositories"

	"gorm.io/gorm"
)

var roleSeed = []models.Role{
	{Name: models.RoleAdmin, Description: "Full administrative access"},
	{Name: models.RoleUser, Description: "Regular learner account"},
	{Name: models.RoleInstructor, Description: "Can create and manage lessons"},
	{Name: models.RolePremium, Description: "Paid subscriber"},
	{Name: models.RoleModerator, Description: "Can moderate feedback"},
}

const (
	defaultAdminEmail    = "admin@signlearn.local"
	defaultAdminPassword = "ChangeMe123!"
)

// Bootstrap seeds the fixed role set and the default administrator.
// Idempotent, runs on every startup.
func Bootstrap(db *gorm.DB, cfg *config.Config) error {
	return db.Transaction(func(tx *gorm.DB) error {
		userRepo := repositories.NewUserRepository(tx)

		for _, r := range roleSeed {
			if _, err := userRepo.EnsureRole(r.Name, r.Description); err != nil {
				return err
			}
		}

		return seedAdmin(userRepo, cfg)
	})
}

func seedAdmin(userRepo repositories.UserRepository, cfg *config.Config) error {
	email := cfg.Admin.Email
	if email == "" {
		email = defaultAdminEmail
	}

	_, err := userRepo.FindByEmail(email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return err
	}

	password := cfg.Admin.Password
	if password == "" {
		password = defaultAdminPassword
		logger.Warn("Admin password not configured, using default. Change it immediately.")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	adminRole, err := userRepo.FindRoleByName(models.RoleAdmin)
	if err != nil {
		return err
	}

	firstName := cfg.Admin.FirstName
	if firstName == "" {
		firstName = "Admin"
	}

	admin := &models.User{
		Email:          email,
		PasswordHash:   hash,
		FirstName:      firstName,
		LastName:       cfg.Admin.LastName,
		EmailConfirmed: true,
		RoleID:         adminRole.ID,
	}
	if err := userRepo.Create(admin); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil
		}
		return err
	}

	logger.Info("Default administrator created", "email", email)
	return nil
}
