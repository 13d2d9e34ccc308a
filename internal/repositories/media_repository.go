package repositories

import (
	"errors"
	"time"

	"signlearn_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrMediaNotFound = errors.New("media not found")

type MediaRepository interface {
	FindByID(id uuid.UUID) (*models.Media, error)
	FindAll(limit, offset int) ([]models.Media, error)
	FindByLesson(lessonID uuid.UUID) ([]models.Media, error)
	Create(media *models.Media) error
	Update(media *models.Media) error
	Delete(id uuid.UUID) error
}

type MediaRepositoryImpl struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &MediaRepositoryImpl{db: db}
}

func (r *MediaRepositoryImpl) FindByID(id uuid.UUID) (*models.Media, error) {
	var media models.Media
	err := r.db.First(&media, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}
	return &media, nil
}

func (r *MediaRepositoryImpl) FindAll(limit, offset int) ([]models.Media, error) {
	if limit <= 0 {
		limit = 50
	}
	var items []models.Media
	err := r.db.Limit(limit).Offset(offset).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *MediaRepositoryImpl) FindByLesson(lessonID uuid.UUID) ([]models.Media, error) {
	var items []models.Media
	err := r.db.Where("lesson_id = ?", lessonID).Order("created_at").Find(&items).Error
	return items, err
}

func (r *MediaRepositoryImpl) Create(media *models.Media) error {
	return r.db.Create(media).Error
}

func (r *MediaRepositoryImpl) Update(media *models.Media) error {
	result := r.db.Model(media).Updates(map[string]interface{}{
		"name":         media.Name,
		"description":  media.Description,
		"url":          media.URL,
		"type":         media.Type,
		"size":         media.Size,
		"content_type": media.ContentType,
		"lesson_id":    media.LessonID,
		"updated_at":   time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMediaNotFound
	}
	return nil
}

func (r *MediaRepositoryImpl) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Media{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMediaNotFound
	}
	return nil
}
