package models

import "gorm.io/datatypes"

type Lesson struct {
	BaseModel
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Content     string         `gorm:"type:text" json:"content"`
	Category    string         `gorm:"type:varchar(100);index" json:"category"`
	Difficulty  int            `json:"difficulty"` // 1..5
	Duration    int            `json:"duration"`   // minutes, 1..300
	ImageURL    string         `gorm:"type:varchar(512)" json:"image_url,omitempty"`
	VideoURL    string         `gorm:"type:varchar(512)" json:"video_url,omitempty"`
	Tags        datatypes.JSON `gorm:"type:jsonb" json:"tags,omitempty"`
	Media       []Media        `gorm:"foreignKey:LessonID" json:"media,omitempty"`
}

func (Lesson) TableName() string { return "lessons" }
