package services

import (
	"errors"

	"signlearn_backend/internal/models"
	"signlearn_backend/internal/repositories"
	"signlearn_backend/internal/services/dto"
	"signlearn_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type MediaService interface {
	GetByID(id uuid.UUID) (*models.Media, error)
	List(limit, offset int) ([]models.Media, error)
	ListByLesson(lessonID uuid.UUID) ([]models.Media, error)
	Create(userID uuid.UUID, req *dto.CreateMediaRequest) (*models.Media, error)
	Update(id uuid.UUID, req *dto.UpdateMediaRequest) (*models.Media, error)
	Delete(id uuid.UUID) error
}

type MediaServiceImpl struct {
	mediaRepo  repositories.MediaRepository
	lessonRepo repositories.LessonRepository
}

func NewMediaService(mediaRepo repositories.MediaRepository, lessonRepo repositories.LessonRepository) MediaService {
	return &MediaServiceImpl{mediaRepo: mediaRepo, lessonRepo: lessonRepo}
}

func (s *MediaServiceImpl) GetByID(id uuid.UUID) (*models.Media, error) {
	media, err := s.mediaRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrMediaNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err)
	}
	return media, nil
}

func (s *MediaServiceImpl) List(limit, offset int) ([]models.Media, error) {
	items, err := s.mediaRepo.FindAll(limit, offset)
	if err != nil {
		return nil, apperrors.ErrDatabase(err)
	}
	return items, nil
}

func (s *MediaServiceImpl) ListByLesson(lessonID uuid.UUID) ([]models.Media, error) {
	if _, err := s.lessonRepo.FindByID(lessonID); err != nil {
		if errors.Is(err, repositories.ErrLessonNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err)
	}

	items, err := s.mediaRepo.FindByLesson(lessonID)
	if err != nil {
		return nil, apperrors.ErrDatabase(err)
	}
	return items, nil
}

func (s *MediaServiceImpl) Create(userID uuid.UUID, req *dto.CreateMediaRequest) (*models.Media, error) {
	media := &models.Media{
		Name:        req.Name,
		Description: req.Description,
		URL:         req.URL,
		Type:        req.Type,
		Size:        req.Size,
		ContentType: req.ContentType,
		UserID:      &userID,
	}

	if req.LessonID != "" {
		lessonID, err := uuid.Parse(req.LessonID)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid lesson id")
		}
		if _, err := s.lessonRepo.FindByID(lessonID); err != nil {
			if errors.Is(err, repositories.ErrLessonNotFound) {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, apperrors.ErrDatabase(err)
		}
		media.LessonID = &lessonID
	}

	if err := s.mediaRepo.Create(media); err != nil {
		return nil, apperrors.ErrDatabase(err)
	}
	return media, nil
}

func (s *MediaServiceImpl) Update(id uuid.UUID, req *dto.UpdateMediaRequest) (*models.Media, error) {
	if req.ID != id.String() {
		return nil, apperrors.NewBadRequestError("ID in path does not match ID in body")
	}

	media, err := s.mediaRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrMediaNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err)
	}

	media.Name = req.Name
	media.Description = req.Description
	media.URL = req.URL
	media.Type = req.Type
	media.Size = req.Size
	media.ContentType = req.ContentType

	if req.LessonID != "" {
		lessonID, parseErr := uuid.Parse(req.LessonID)
		if parseErr != nil {
			return nil, apperrors.NewBadRequestError("Invalid lesson id")
		}
		media.LessonID = &lessonID
	} else {
		media.LessonID = nil
	}

	if err := s.mediaRepo.Update(media); err != nil {
		if errors.Is(err, repositories.ErrMediaNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err)
	}
	return media, nil
}

func (s *MediaServiceImpl) Delete(id uuid.UUID) error {
	if err := s.mediaRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrMediaNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.ErrDatabase(err)
	}
	return nil
}
