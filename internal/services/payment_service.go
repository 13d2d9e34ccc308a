package services

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"signlearn_backend/internal/logger"
	"signlearn_backend/internal/models"
	"signlearn_backend/internal/payments"
	"signlearn_backend/internal/pkg/email"
	"signlearn_backend/internal/repositories"
	"signlearn_backend/internal/services/dto"
	"signlearn_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type PaymentService interface {
	CreateIntent(userID uuid.UUID, req *dto.CreatePaymentIntentRequest) (*dto.CreatePaymentIntentResponse, error)
	ProcessPayment(userID uuid.UUID, req *dto.ProcessPaymentRequest) (*dto.ProcessPaymentResponse, error)
	HandleWebhook(payload []byte, signature string) error
}

type PaymentServiceImpl struct {
	client   payments.Client
	userRepo repositories.UserRepository
	subRepo  repositories.SubscriptionRepository
	sender   email.Sender
}

func NewPaymentService(
	client payments.Client,
	userRepo repositories.UserRepository,
	subRepo repositories.SubscriptionRepository,
	sender email.Sender,
) PaymentService {
	return &PaymentServiceImpl{
		client:   client,
		userRepo: userRepo,
		subRepo:  subRepo,
		sender:   sender,
	}
}

func (s *PaymentServiceImpl) CreateIntent(userID uuid.UUID, req *dto.CreatePaymentIntentRequest) (*dto.CreatePaymentIntentResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err)
	}

	currency := normalizeCurrency(req.Currency)
	intent, err := s.client.CreatePaymentIntent(toCents(req.Amount), currency, req.Description, map[string]string{
		"user_id": user.ID.String(),
		"email":   user.Email,
		"plan_id": req.PlanID,
	})
	if err != nil {
		return nil, apperrors.ErrExternalService(err, "payments", "Failed to create payment intent")
	}

	return &dto.CreatePaymentIntentResponse{
		ClientSecret:   intent.ClientSecret,
		PublishableKey: s.client.PublishableKey(),
	}, nil
}

// ProcessPayment charges the payment method and, on success, upserts
// the user's subscription row. Failures leave subscription state
// untouched.
func (s *PaymentServiceImpl) ProcessPayment(userID uuid.UUID, req *dto.ProcessPaymentRequest) (*dto.ProcessPaymentResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err)
	}

	customerID, err := s.resolveCustomerID(user)
	if err != nil {
		return nil, err
	}

	currency := normalizeCurrency(req.Currency)
	result, err := s.client.ConfirmPayment(req.PaymentMethodID, customerID, toCents(req.Amount), currency, map[string]string{
		"user_id":   user.ID.String(),
		"plan_id":   req.PlanID,
		"frequency": req.Frequency,
	})
	if err != nil {
		logger.Warn("payment charge failed", "error", err, "user_id", user.ID)
		return nil, apperrors.ErrPaymentFailed
	}
	if !result.Succeeded {
		return &dto.ProcessPaymentResponse{
			Success:       false,
			TransactionID: result.TransactionID,
			Status:        result.Status,
			Message:       "Payment was not completed",
		}, nil
	}

	now := time.Now()
	renewal := now.AddDate(0, renewalMonths(req.Frequency), 0)
	sub := &models.Subscription{
		UserID:           user.ID,
		PlanID:           req.PlanID,
		Price:            req.Amount,
		Currency:         currency,
		Frequency:        req.Frequency,
		PaymentMethod:    req.PaymentMethodID,
		StripeCustomerID: customerID,
		TransactionID:    result.TransactionID,
		IsActive:         true,
		AutoRenew:        true,
		StartDate:        now,
		LastRenewalDate:  &now,
		NextRenewalDate:  &renewal,
	}
	if err := s.subRepo.Upsert(sub); err != nil {
		return nil, apperrors.ErrDatabase(err)
	}

	s.sendReceipt(user, req.PlanID, req.Amount, currency)

	return &dto.ProcessPaymentResponse{
		Success:       true,
		TransactionID: result.TransactionID,
		Status:        result.Status,
		Subscription:  subscriptionInfo(sub),
	}, nil
}

// HandleWebhook verifies the signature and logs the event. No state
// mutation is wired for webhook events yet.
// TODO: mark subscriptions inactive on repeated invoice.payment_failed.
func (s *PaymentServiceImpl) HandleWebhook(payload []byte, signature string) error {
	event, err := s.client.ConstructWebhookEvent(payload, signature)
	if err != nil {
		return apperrors.NewUnauthorizedError("Invalid webhook signature")
	}

	switch event.Type {
	case "payment_intent.succeeded":
		logger.Info("stripe payment succeeded", "event_id", event.ID)
	case "payment_intent.payment_failed":
		logger.Warn("stripe payment failed", "event_id", event.ID)
	default:
		logger.Debug("unhandled stripe event", "type", event.Type, "event_id", event.ID)
	}
	return nil
}

// resolveCustomerID reuses the stored processor customer id or creates
// one and persists it.
func (s *PaymentServiceImpl) resolveCustomerID(user *models.User) (string, error) {
	if user.StripeCustomerID != "" {
		return user.StripeCustomerID, nil
	}

	customerID, err := s.client.CreateCustomer(user.Email, user.FullName(), map[string]string{
		"user_id": user.ID.String(),
	})
	if err != nil {
		return "", apperrors.ErrExternalService(err, "payments", "Failed to create customer")
	}

	user.StripeCustomerID = customerID
	if err := s.userRepo.Update(user); err != nil {
		return "", apperrors.ErrDatabase(err)
	}
	return customerID, nil
}

func (s *PaymentServiceImpl) sendReceipt(user *models.User, planID string, amount float64, currency string) {
	planName := planID
	if plan, ok := PlanByID(planID); ok {
		planName = plan.Name
	}
	body, err := email.RenderPaymentReceipt(user.FullName(), planName, fmt.Sprintf("%.2f %s", amount, strings.ToUpper(currency)))
	if err != nil {
		return
	}
	if err := s.sender.Send(user.Email, "Payment confirmation", body); err != nil {
		logger.Warn("failed to send payment receipt", "error", err, "email", user.Email)
	}
}

// renewalMonths maps the billing frequency to the renewal interval.
// Any frequency other than yearly bills monthly.
func renewalMonths(frequency string) int {
	if strings.EqualFold(frequency, "yearly") {
		return 12
	}
	return 1
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func normalizeCurrency(currency string) string {
	if currency == "" {
		return "usd"
	}
	return strings.ToLower(currency)
}
