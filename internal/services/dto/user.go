package dto

import (
	"time"

	"signlearn_backend/internal/models"

	"github.com/google/uuid"
)

type UserInfo struct {
	ID                uuid.UUID  `json:"id"`
	Email             string     `json:"email"`
	FirstName         string     `json:"first_name"`
	LastName          string     `json:"last_name"`
	Phone             string     `json:"phone,omitempty"`
	Birthday          *time.Time `json:"birthday,omitempty"`
	Role              string     `json:"role"`
	EmailConfirmed    bool       `json:"email_confirmed"`
	ProfilePictureURL string     `json:"profile_picture_url,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// UserInfoFrom maps a user record to its API representation.
func UserInfoFrom(u *models.User) *UserInfo {
	return &UserInfo{
		ID:                u.ID,
		Email:             u.Email,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Phone:             u.Phone,
		Birthday:          u.Birthday,
		Role:              u.RoleName(),
		EmailConfirmed:    u.EmailConfirmed,
		ProfilePictureURL: u.ProfilePictureURL,
		CreatedAt:         u.CreatedAt,
	}
}

type UpdateUserRequest struct {
	FirstName string     `json:"first_name" validate:"omitempty,max=100"`
	LastName  string     `json:"last_name" validate:"omitempty,max=100"`
	Phone     string     `json:"phone" validate:"omitempty,max=32"`
	Birthday  *time.Time `json:"birthday"`
	Role      string     `json:"role" validate:"omitempty,oneof=Admin User Instructor Premium Moderator"`
}

type UserListResponse struct {
	Users []UserInfo `json:"users"`
	Total int64      `json:"total"`
}
