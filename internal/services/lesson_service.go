package services

import (
	"encoding/json"
	"errors"

	"signlearn_backend/internal/models"
	"signlearn_backend/internal/repositories"
	"signlearn_backend/internal/services/dto"
	"signlearn_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type LessonService interface {
	GetByID(id uuid.UUID) (*models.Lesson, error)
	List(filter repositories.LessonFilter) ([]models.Lesson, int64, error)
	Create(req *dto.CreateLessonRequest) (*models.Lesson, error)
	Update(id uuid.UUID, req *dto.UpdateLessonRequest) (*models.Lesson, error)
	Delete(id uuid.UUID) error
}

type LessonServiceImpl struct {
	lessonRepo repositories.LessonRepository
}

func NewLessonService(lessonRepo repositories.LessonRepository) LessonService {
	return &LessonServiceImpl{lessonRepo: lessonRepo}
}

func (s *LessonServiceImpl) GetByID(id uuid.UUID) (*models.Lesson, error) {
	lesson, err := s.lessonRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrLessonNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err)
	}
	return lesson, nil
}

func (s *LessonServiceImpl) List(filter repositories.LessonFilter) ([]models.Lesson, int64, error) {
	lessons, total, err := s.lessonRepo.FindAll(filter)
	if err != nil {
		return nil, 0, apperrors.ErrDatabase(err)
	}
	return lessons, total, nil
}

func (s *LessonServiceImpl) Create(req *dto.CreateLessonRequest) (*models.Lesson, error) {
	tags, err := marshalTags(req.Tags)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	lesson := &models.Lesson{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Category:    req.Category,
		Difficulty:  req.Difficulty,
		Duration:    req.Duration,
		ImageURL:    req.ImageURL,
		VideoURL:    req.VideoURL,
		Tags:        tags,
	}
	if err := s.lessonRepo.Create(lesson); err != nil {
		return nil, apperrors.ErrDatabase(err)
	}
	return lesson, nil
}

// Update rejects an id mismatch between path and body with a 400.
func (s *LessonServiceImpl) Update(id uuid.UUID, req *dto.UpdateLessonRequest) (*models.Lesson, error) {
	if req.ID != id.String() {
		return nil, apperrors.NewBadRequestError("ID in path does not match ID in body")
	}

	lesson, err := s.lessonRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrLessonNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err)
	}

	tags, err := marshalTags(req.Tags)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	lesson.Title = req.Title
	lesson.Description = req.Description
	lesson.Content = req.Content
	lesson.Category = req.Category
	lesson.Difficulty = req.Difficulty
	lesson.Duration = req.Duration
	lesson.ImageURL = req.ImageURL
	lesson.VideoURL = req.VideoURL
	lesson.Tags = tags

	if err := s.lessonRepo.Update(lesson); err != nil {
		// Row vanished between read and write.
		if errors.Is(err, repositories.ErrLessonNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err)
	}
	return lesson, nil
}

func (s *LessonServiceImpl) Delete(id uuid.UUID) error {
	if err := s.lessonRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrLessonNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.ErrDatabase(err)
	}
	return nil
}

func marshalTags(tags []string) (datatypes.JSON, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
