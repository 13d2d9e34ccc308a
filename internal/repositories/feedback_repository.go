package repositories

import (
	"errors"
	"time"

	"signlearn_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrFeedbackNotFound = errors.New("feedback not found")

type FeedbackRepository interface {
	FindByID(id uuid.UUID) (*models.Feedback, error)
	FindAll(limit, offset int) ([]models.Feedback, error)
	FindByUser(userID uuid.UUID) ([]models.Feedback, error)
	FindByLesson(lessonID uuid.UUID) ([]models.Feedback, error)
	Create(feedback *models.Feedback) error
	Update(feedback *models.Feedback) error
	Delete(id uuid.UUID) error
}

type FeedbackRepositoryImpl struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &FeedbackRepositoryImpl{db: db}
}

func (r *FeedbackRepositoryImpl) FindByID(id uuid.UUID) (*models.Feedback, error) {
	var fb models.Feedback
	err := r.db.Preload("User").First(&fb, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}
	return &fb, nil
}

func (r *FeedbackRepositoryImpl) FindAll(limit, offset int) ([]models.Feedback, error) {
	if limit <= 0 {
		limit = 50
	}
	var items []models.Feedback
	err := r.db.Preload("User").Limit(limit).Offset(offset).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *FeedbackRepositoryImpl) FindByUser(userID uuid.UUID) ([]models.Feedback, error) {
	var items []models.Feedback
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *FeedbackRepositoryImpl) FindByLesson(lessonID uuid.UUID) ([]models.Feedback, error) {
	var items []models.Feedback
	err := r.db.Preload("User").Where("lesson_id = ?", lessonID).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *FeedbackRepositoryImpl) Create(feedback *models.Feedback) error {
	return r.db.Create(feedback).Error
}

func (r *FeedbackRepositoryImpl) Update(feedback *models.Feedback) error {
	result := r.db.Model(feedback).Updates(map[string]interface{}{
		"comment":        feedback.Comment,
		"rating":         feedback.Rating,
		"category":       feedback.Category,
		"reviewed":       feedback.Reviewed,
		"admin_response": feedback.AdminResponse,
		"response_date":  feedback.ResponseDate,
		"updated_at":     time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFeedbackNotFound
	}
	return nil
}

func (r *FeedbackRepositoryImpl) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Feedback{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFeedbackNotFound
	}
	return nil
}
