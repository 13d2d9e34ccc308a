package models

import (
	"time"

	"github.com/google/uuid"
)

// Role names seeded at startup.
const (
	RoleAdmin      = "Admin"
	RoleUser       = "User"
	RoleInstructor = "Instructor"
	RolePremium    = "Premium"
	RoleModerator  = "Moderator"
)

type Role struct {
	BaseModel
	Name        string `gorm:"type:varchar(64);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:varchar(255)" json:"description"`
}

func (Role) TableName() string { return "roles" }

type User struct {
	BaseModel
	Email             string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash      string     `gorm:"type:varchar(255);not null" json:"-"`
	FirstName         string     `gorm:"type:varchar(100)" json:"first_name"`
	LastName          string     `gorm:"type:varchar(100)" json:"last_name"`
	Phone             string     `gorm:"type:varchar(32)" json:"phone,omitempty"`
	Birthday          *time.Time `json:"birthday,omitempty"`
	ProfilePictureURL string     `gorm:"type:varchar(512)" json:"profile_picture_url,omitempty"`
	EmailConfirmed    bool       `gorm:"default:false" json:"email_confirmed"`
	ConfirmationToken string     `gorm:"type:varchar(128);index" json:"-"`
	ResetToken        string     `gorm:"type:varchar(128);index" json:"-"`
	ResetTokenExpiry  *time.Time `json:"-"`
	StripeCustomerID  string     `gorm:"type:varchar(128)" json:"-"`

	RoleID uuid.UUID `gorm:"type:uuid;not null" json:"role_id"`
	Role   *Role     `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

func (User) TableName() string { return "users" }

// FullName returns the display name for emails and tokens.
func (u *User) FullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Email
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// RoleName resolves the role name, defaulting to User when not loaded.
func (u *User) RoleName() string {
	if u.Role != nil {
		return u.Role.Name
	}
	return RoleUser
}

type RefreshToken struct {
	BaseModel
	Token     string    `gorm:"type:varchar(128);uniqueIndex;not null" json:"-"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	IsUsed    bool      `gorm:"default:false" json:"is_used"`
	IsRevoked bool      `gorm:"default:false" json:"is_revoked"`
}

func (RefreshToken) TableName() string { return "refresh_tokens" }

// Active reports whether the token can still be exchanged.
func (t *RefreshToken) Active() bool {
	return !t.IsUsed && !t.IsRevoked && time.Now().Before(t.ExpiresAt)
}
