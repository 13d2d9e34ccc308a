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

// Plans is the static catalog exposed by the API. Prices are in USD;
// PriceCents feeds the payment processor.
var Plans = []dto.Plan{
	{
		ID:          models.PlanFree,
		Name:        "Free",
		Price:       0,
		PriceCents:  0,
		Currency:    "usd",
		Frequency:   "monthly",
		Description: "Basic access to beginner lessons",
		Features:    []string{"Beginner lessons", "Community feedback"},
	},
	{
		ID:            models.PlanPremiumMonthly,
		Name:          "Premium Monthly",
		Price:         9.99,
		PriceCents:    999,
		Currency:      "usd",
		Frequency:     "monthly",
		StripePriceID: "price_premium_monthly",
		Description:   "Full lesson library, billed monthly",
		Features:      []string{"All lessons", "Downloadable media", "Priority support"},
	},
	{
		ID:            models.PlanPremiumYearly,
		Name:          "Premium Yearly",
		Price:         99.99,
		PriceCents:    9999,
		Currency:      "usd",
		Frequency:     "yearly",
		StripePriceID: "price_premium_yearly",
		Description:   "Full lesson library, billed yearly",
		Features:      []string{"All lessons", "Downloadable media", "Priority support", "2 months free"},
	},
}

// PlanByID looks the plan up in the catalog.
func PlanByID(id string) (*dto.Plan, bool) {
	for i := range Plans {
		if Plans[i].ID == id {
			return &Plans[i], true
		}
	}
	return nil, false
}

type SubscriptionService interface {
	ListPlans() []dto.Plan
	MySubscription(userID uuid.UUID) (*dto.SubscriptionInfo, error)
	GetByID(id uuid.UUID, callerID uuid.UUID, callerRole string) (*models.Subscription, error)
	List(limit, offset int) ([]models.Subscription, error)
	Create(req *dto.CreateSubscriptionRequest) (*models.Subscription, error)
	Update(id uuid.UUID, req *dto.UpdateSubscriptionRequest) (*models.Subscription, error)
	Delete(id uuid.UUID) error
}

type SubscriptionServiceImpl struct {
	subRepo repositories.SubscriptionRepository
}

func NewSubscriptionService(subRepo repositories.SubscriptionRepository) SubscriptionService {
	return &SubscriptionServiceImpl{subRepo: subRepo}
}

func (s *SubscriptionServiceImpl) ListPlans() []dto.Plan {
	return Plans
}

// MySubscription returns the caller's subscription, lazily creating a
// free-tier row on first lookup. A lost race against a concurrent
// insert falls back to re-reading the existing row.
func (s *SubscriptionServiceImpl) MySubscription(userID uuid.UUID) (*dto.SubscriptionInfo, error) {
	sub, err := s.subRepo.FindByUser(userID)
	if err == nil {
		return subscriptionInfo(sub), nil
	}
	if !errors.Is(err, repositories.ErrSubscriptionNotFound) {
		return nil, apperrors.ErrDatabase(err)
	}

	sub = &models.Subscription{
		UserID:    userID,
		PlanID:    models.PlanFree,
		Price:     0,
		Currency:  "usd",
		Frequency: "monthly",
		IsActive:  true,
		StartDate: time.Now(),
	}
	if createErr := s.subRepo.Create(sub); createErr != nil {
		existing, findErr := s.subRepo.FindByUser(userID)
		if findErr != nil {
			return nil, apperrors.ErrDatabase(createErr)
		}
		sub = existing
	}
	return subscriptionInfo(sub), nil
}

// GetByID returns the row to its owner or to an admin.
func (s *SubscriptionServiceImpl) GetByID(id uuid.UUID, callerID uuid.UUID, callerRole string) (*models.Subscription, error) {
	sub, err := s.subRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrSubscriptionNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err)
	}
	if sub.UserID != callerID && callerRole != models.RoleAdmin {
		return nil, apperrors.NewForbiddenError("Cannot view another user's subscription")
	}
	return sub, nil
}

func (s *SubscriptionServiceImpl) List(limit, offset int) ([]models.Subscription, error) {
	subs, err := s.subRepo.FindAll(limit, offset)
	if err != nil {
		return nil, apperrors.ErrDatabase(err)
	}
	return subs, nil
}

// Create writes a subscription for the given user. The one-per-user
// rule holds here too: an existing row is a conflict.
func (s *SubscriptionServiceImpl) Create(req *dto.CreateSubscriptionRequest) (*models.Subscription, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid user id")
	}

	if _, findErr := s.subRepo.FindByUser(userID); findErr == nil {
		return nil, apperrors.ErrConflict(repositories.ErrSubscriptionExists, "subscriptions", "User already has a subscription")
	} else if !errors.Is(findErr, repositories.ErrSubscriptionNotFound) {
		return nil, apperrors.ErrDatabase(findErr)
	}

	sub := &models.Subscription{
		UserID:        userID,
		PlanID:        req.PlanID,
		Price:         req.Price,
		Currency:      normalizeCurrency(req.Currency),
		Frequency:     req.Frequency,
		PaymentMethod: req.PaymentMethod,
		IsActive:      req.IsActive,
		AutoRenew:     req.AutoRenew,
		StartDate:     time.Now(),
	}
	if err := s.subRepo.Create(sub); err != nil {
		return nil, apperrors.ErrDatabase(err)
	}
	return sub, nil
}

// Update rejects an id mismatch between path and body with a 400.
func (s *SubscriptionServiceImpl) Update(id uuid.UUID, req *dto.UpdateSubscriptionRequest) (*models.Subscription, error) {
	if req.ID != id.String() {
		return nil, apperrors.NewBadRequestError("ID in path does not match ID in body")
	}

	sub, err := s.subRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrSubscriptionNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err)
	}

	sub.PlanID = req.PlanID
	sub.Price = req.Price
	sub.Currency = normalizeCurrency(req.Currency)
	sub.Frequency = req.Frequency
	sub.PaymentMethod = req.PaymentMethod
	sub.IsActive = req.IsActive
	sub.AutoRenew = req.AutoRenew

	if err := s.subRepo.Update(sub); err != nil {
		// Row vanished between read and write.
		if errors.Is(err, repositories.ErrSubscriptionNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err)
	}
	return sub, nil
}

func (s *SubscriptionServiceImpl) Delete(id uuid.UUID) error {
	if err := s.subRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrSubscriptionNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.ErrDatabase(err)
	}
	return nil
}

func subscriptionInfo(sub *models.Subscription) *dto.SubscriptionInfo {
	return &dto.SubscriptionInfo{
		ID:               sub.ID.String(),
		PlanID:           sub.PlanID,
		Price:            sub.Price,
		Currency:         sub.Currency,
		Frequency:        sub.Frequency,
		PaymentMethod:    sub.PaymentMethod,
		IsActive:         sub.IsActive,
		AutoRenew:        sub.AutoRenew,
		StartDate:        sub.StartDate,
		EndDate:          sub.EndDate,
		LastRenewalDate:  sub.LastRenewalDate,
		NextRenewalDate:  sub.NextRenewalDate,
		CancellationDate: sub.CancellationDate,
	}
}
