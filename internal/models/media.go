package models

import "github.com/google/uuid"

type Media struct {
	BaseModel
	Name        string `gorm:"type:varchar(255)" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	URL         string `gorm:"type:varchar(512);not null" json:"url"`
	Type        string `gorm:"type:varchar(50)" json:"type"` // video, image, audio, document
	Size        int64  `json:"size"`
	ContentType string `gorm:"type:varchar(100)" json:"content_type"`

	// Both links are nullable: deleting the parent nulls them instead of
	// removing the media row.
	LessonID *uuid.UUID `gorm:"type:uuid;index" json:"lesson_id,omitempty"`
	UserID   *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
}

func (Media) TableName() string { return "media" }
