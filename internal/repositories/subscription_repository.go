package repositories

import (
	"errors"
	"time"

	"signlearn_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrSubscriptionExists   = errors.New("user already has a subscription")
)

type SubscriptionRepository interface {
	FindByID(id uuid.UUID) (*models.Subscription, error)
	FindByUser(userID uuid.UUID) (*models.Subscription, error)
	FindAll(limit, offset int) ([]models.Subscription, error)
	Create(sub *models.Subscription) error
	Update(sub *models.Subscription) error
	Delete(id uuid.UUID) error
	Upsert(sub *models.Subscription) error
}

type SubscriptionRepositoryImpl struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &SubscriptionRepositoryImpl{db: db}
}

func (r *SubscriptionRepositoryImpl) FindByID(id uuid.UUID) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.First(&sub, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepositoryImpl) FindByUser(userID uuid.UUID) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.First(&sub, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepositoryImpl) FindAll(limit, offset int) ([]models.Subscription, error) {
	if limit <= 0 {
		limit = 50
	}
	var subs []models.Subscription
	err := r.db.Limit(limit).Offset(offset).Order("created_at DESC").Find(&subs).Error
	return subs, err
}

func (r *SubscriptionRepositoryImpl) Create(sub *models.Subscription) error {
	return r.db.Create(sub).Error
}

func (r *SubscriptionRepositoryImpl) Update(sub *models.Subscription) error {
	result := r.db.Model(sub).Updates(map[string]interface{}{
		"plan_id":            sub.PlanID,
		"price":              sub.Price,
		"currency":           sub.Currency,
		"frequency":          sub.Frequency,
		"payment_method":     sub.PaymentMethod,
		"stripe_customer_id": sub.StripeCustomerID,
		"transaction_id":     sub.TransactionID,
		"is_active":          sub.IsActive,
		"auto_renew":         sub.AutoRenew,
		"end_date":           sub.EndDate,
		"last_renewal_date":  sub.LastRenewalDate,
		"next_renewal_date":  sub.NextRenewalDate,
		"cancellation_date":  sub.CancellationDate,
		"updated_at":         time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSubscriptionNotFound
	}
	return nil
}

func (r *SubscriptionRepositoryImpl) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Subscription{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSubscriptionNotFound
	}
	return nil
}

// Upsert writes the one-per-user subscription row: updates in place
// when one exists, inserts otherwise. A lost insert race against the
// user_id unique index falls back to update.
func (r *SubscriptionRepositoryImpl) Upsert(sub *models.Subscription) error {
	existing, err := r.FindByUser(sub.UserID)
	if err == nil {
		sub.ID = existing.ID
		sub.CreatedAt = existing.CreatedAt
		return r.Update(sub)
	}
	if !errors.Is(err, ErrSubscriptionNotFound) {
		return err
	}

	if err := r.Create(sub); err != nil {
		if existing, findErr := r.FindByUser(sub.UserID); findErr == nil {
			sub.ID = existing.ID
			sub.CreatedAt = existing.CreatedAt
			return r.Update(sub)
		}
		return err
	}
	return nil
}
