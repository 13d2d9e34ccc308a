package dto

import "time"

type CreatePaymentIntentRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Currency    string  `json:"currency" validate:"omitempty,len=3"`
	Description string  `json:"description" validate:"max=255"`
	PlanID      string  `json:"plan_id" validate:"required"`
}

type CreatePaymentIntentResponse struct {
	ClientSecret   string `json:"client_secret"`
	PublishableKey string `json:"publishable_key"`
}

type ProcessPaymentRequest struct {
	PaymentMethodID string  `json:"payment_method_id" validate:"required"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	Currency        string  `json:"currency" validate:"omitempty,len=3"`
	PlanID          string  `json:"plan_id" validate:"required"`
	Frequency       string  `json:"frequency" validate:"required"`
}

type ProcessPaymentResponse struct {
	Success       bool              `json:"success"`
	TransactionID string            `json:"transaction_id,omitempty"`
	Status        string            `json:"status"`
	Message       string            `json:"message,omitempty"`
	Subscription  *SubscriptionInfo `json:"subscription,omitempty"`
}

type Plan struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	PriceCents    int64    `json:"price_cents"`
	Currency      string   `json:"currency"`
	Frequency     string   `json:"frequency"`
	StripePriceID string   `json:"stripe_price_id,omitempty"`
	Description   string   `json:"description"`
	Features      []string `json:"features"`
}

type SubscriptionInfo struct {
	ID               string     `json:"id"`
	PlanID           string     `json:"plan_id"`
	Price            float64    `json:"price"`
	Currency         string     `json:"currency"`
	Frequency        string     `json:"frequency"`
	PaymentMethod    string     `json:"payment_method,omitempty"`
	IsActive         bool       `json:"is_active"`
	AutoRenew        bool       `json:"auto_renew"`
	StartDate        time.Time  `json:"start_date"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	LastRenewalDate  *time.Time `json:"last_renewal_date,omitempty"`
	NextRenewalDate  *time.Time `json:"next_renewal_date,omitempty"`
	CancellationDate *time.Time `json:"cancellation_date,omitempty"`
}

type CreateSubscriptionRequest struct {
	UserID        string  `json:"user_id" validate:"required,uuid"`
	PlanID        string  `json:"plan_id" validate:"required"`
	Price         float64 `json:"price" validate:"gte=0"`
	Currency      string  `json:"currency" validate:"omitempty,len=3"`
	Frequency     string  `json:"frequency" validate:"omitempty,oneof=monthly yearly"`
	PaymentMethod string  `json:"payment_method" validate:"max=128"`
	IsActive      bool    `json:"is_active"`
	AutoRenew     bool    `json:"auto_renew"`
}

type UpdateSubscriptionRequest struct {
	ID            string  `json:"id" validate:"required,uuid"`
	PlanID        string  `json:"plan_id" validate:"required"`
	Price         float64 `json:"price" validate:"gte=0"`
	Currency      string  `json:"currency" validate:"omitempty,len=3"`
	Frequency     string  `json:"frequency" validate:"omitempty,oneof=monthly yearly"`
	PaymentMethod string  `json:"payment_method" validate:"max=128"`
	IsActive      bool    `json:"is_active"`
	AutoRenew     bool    `json:"auto_renew"`
}
