package services

import (
	"errors"
	"time"

	"signlearn_backend/internal/models"
	"signlearn_backend/internal/repositories"
	"signlearn_backend/internal/services/dto"
	"signlearn_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type FeedbackService interface {
	GetByID(id uuid.UUID) (*models.Feedback, error)
	List(limit, offset int) ([]models.Feedback, error)
	ListByLesson(lessonID uuid.UUID) ([]models.Feedback, error)
	Create(userID uuid.UUID, req *dto.CreateFeedbackRequest) (*models.Feedback, error)
	Update(id uuid.UUID, callerID uuid.UUID, callerRole string, req *dto.UpdateFeedbackRequest) (*models.Feedback, error)
	Annotate(id uuid.UUID, req *dto.AnnotateFeedbackRequest) (*models.Feedback, error)
	Delete(id uuid.UUID, callerID uuid.UUID, callerRole string) error
}

type FeedbackServiceImpl struct {
	feedbackRepo repositories.FeedbackRepository
	lessonRepo   repositories.LessonRepository
}

func NewFeedbackService(feedbackRepo repositories.FeedbackRepository, lessonRepo repositories.LessonRepository) FeedbackService {
	return &FeedbackServiceImpl{feedbackRepo: feedbackRepo, lessonRepo: lessonRepo}
}

func (s *FeedbackServiceImpl) GetByID(id uuid.UUID) (*models.Feedback, error) {
	fb, err := s.feedbackRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrFeedbackNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err)
	}
	return fb, nil
}

func (s *FeedbackServiceImpl) List(limit, offset int) ([]models.Feedback, error) {
	items, err := s.feedbackRepo.FindAll(limit, offset)
	if err != nil {
		return nil, apperrors.ErrDatabase(err)
	}
	return items, nil
}

func (s *FeedbackServiceImpl) ListByLesson(lessonID uuid.UUID) ([]models.Feedback, error) {
	items, err := s.feedbackRepo.FindByLesson(lessonID)
	if err != nil {
		return nil, apperrors.ErrDatabase(err)
	}
	return items, nil
}

func (s *FeedbackServiceImpl) Create(userID uuid.UUID, req *dto.CreateFeedbackRequest) (*models.Feedback, error) {
	fb := &models.Feedback{
		Comment:  req.Comment,
		Rating:   req.Rating,
		Category: req.Category,
		UserID:   userID,
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
		fb.LessonID = &lessonID
	}

	if err := s.feedbackRepo.Create(fb); err != nil {
		return nil, apperrors.ErrDatabase(err)
	}
	return fb, nil
}

// Update lets the author edit their own entry; admins and moderators
// may edit anyone's.
func (s *FeedbackServiceImpl) Update(id uuid.UUID, callerID uuid.UUID, callerRole string, req *dto.UpdateFeedbackRequest) (*models.Feedback, error) {
	if req.ID != id.String() {
		return nil, apperrors.NewBadRequestError("ID in path does not match ID in body")
	}

	fb, err := s.feedbackRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrFeedbackNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err)
	}

	isModerator := callerRole == models.RoleAdmin || callerRole == models.RoleModerator
	if fb.UserID != callerID && !isModerator {
		return nil, apperrors.NewForbiddenError("Cannot modify another user's feedback")
	}

	fb.Comment = req.Comment
	fb.Rating = req.Rating
	fb.Category = req.Category

	if err := s.feedbackRepo.Update(fb); err != nil {
		if errors.Is(err, repositories.ErrFeedbackNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err)
	}
	return fb, nil
}

// Annotate attaches the admin response and marks the entry reviewed.
func (s *FeedbackServiceImpl) Annotate(id uuid.UUID, req *dto.AnnotateFeedbackRequest) (*models.Feedback, error) {
	fb, err := s.feedbackRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrFeedbackNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err)
	}

	now := time.Now()
	fb.AdminResponse = req.Response
	fb.Reviewed = true
	fb.ResponseDate = &now

	if err := s.feedbackRepo.Update(fb); err != nil {
		if errors.Is(err, repositories.ErrFeedbackNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err)
	}
	return fb, nil
}

func (s *FeedbackServiceImpl) Delete(id uuid.UUID, callerID uuid.UUID, callerRole string) error {
	fb, err := s.feedbackRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrFeedbackNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.ErrDatabase(err)
	}

	isModerator := callerRole == models.RoleAdmin || callerRole == models.RoleModerator
	if fb.UserID != callerID && !isModerator {
		return apperrors.NewForbiddenError("Cannot delete another user's feedback")
	}

	if err := s.feedbackRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrFeedbackNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.ErrDatabase(err)
	}
	return nil
}
