package repositories

import (
	"errors"
	"time"

	"signlearn_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrLessonNotFound = errors.New("lesson not found")

type LessonFilter struct {
	Category   string
	Difficulty int
	Limit      int
	Offset     int
}

type LessonRepository interface {
	FindByID(id uuid.UUID) (*models.Lesson, error)
	FindAll(filter LessonFilter) ([]models.Lesson, int64, error)
	Create(lesson *models.Lesson) error
	Update(lesson *models.Lesson) error
	Delete(id uuid.UUID) error
}

type LessonRepositoryImpl struct {
	db *gorm.DB
}

func NewLessonRepository(db *gorm.DB) LessonRepository {
	return &LessonRepositoryImpl{db: db}
}

func (r *LessonRepositoryImpl) FindByID(id uuid.UUID) (*models.Lesson, error) {
	var lesson models.Lesson
	err := r.db.Preload("Media").First(&lesson, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLessonNotFound
		}
		return nil, err
	}
	return &lesson, nil
}

func (r *LessonRepositoryImpl) FindAll(filter LessonFilter) ([]models.Lesson, int64, error) {
	query := r.db.Model(&models.Lesson{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Difficulty != 0 {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit <= 0 {
		filter.Limit = 50
	}

	var lessons []models.Lesson
	err := query.Preload("Media").
		Limit(filter.Limit).Offset(filter.Offset).
		Order("created_at DESC").
		Find(&lessons).Error
	return lessons, total, err
}

func (r *LessonRepositoryImpl) Create(lesson *models.Lesson) error {
	return r.db.Create(lesson).Error
}

func (r *LessonRepositoryImpl) Update(lesson *models.Lesson) error {
	result := r.db.Model(lesson).Updates(map[string]interface{}{
		"title":       lesson.Title,
		"description": lesson.Description,
		"content":     lesson.Content,
		"category":    lesson.Category,
		"difficulty":  lesson.Difficulty,
		"duration":    lesson.Duration,
		"image_url":   lesson.ImageURL,
		"video_url":   lesson.VideoURL,
		"tags":        lesson.Tags,
		"updated_at":  time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLessonNotFound
	}
	return nil
}

// Delete removes the lesson and detaches dependents: media and
// feedback rows keep existing with a nulled lesson link.
func (r *LessonRepositoryImpl) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Media{}).
			Where("lesson_id = ?", id).
			Update("lesson_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Feedback{}).
			Where("lesson_id = ?", id).
			Update("lesson_id", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Lesson{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrLessonNotFound
		}
		return nil
	})
}
