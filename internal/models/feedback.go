package models

import (
	"time"

	"github.com/google/uuid"
)

type Feedback struct {
	BaseModel
	Comment  string `gorm:"type:varchar(1000);not null" json:"comment"`
	Rating   int    `gorm:"not null" json:"rating"` // 1..5
	Category string `gorm:"type:varchar(100)" json:"category"`

	// Set when an admin annotates the entry.
	Reviewed      bool       `gorm:"default:false" json:"reviewed"`
	AdminResponse string     `gorm:"type:varchar(1000)" json:"admin_response,omitempty"`
	ResponseDate  *time.Time `json:"response_date,omitempty"`

	UserID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	User     *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	LessonID *uuid.UUID `gorm:"type:uuid;index" json:"lesson_id,omitempty"`
}

func (Feedback) TableName() string { return "feedback" }
