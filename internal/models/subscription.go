package models

import (
	"time"

	"github.com/google/uuid"
)

// Plan identifiers from the static catalog.
const (
	PlanFree           = "free"
	PlanPremiumMonthly = "premium_monthly"
	PlanPremiumYearly  = "premium_yearly"
)

type Subscription struct {
	BaseModel
	// One subscription per user; the unique index backs the lazy-create
	// path so a concurrent duplicate insert fails instead of duplicating.
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	User   *User     `gorm:"foreignKey:UserID" json:"-"`

	PlanID           string     `gorm:"type:varchar(64);not null" json:"plan_id"`
	Price            float64    `json:"price"`
	Currency         string     `gorm:"type:varchar(10);default:'usd'" json:"currency"`
	Frequency        string     `gorm:"type:varchar(20)" json:"frequency"` // monthly, yearly
	PaymentMethod    string     `gorm:"type:varchar(128)" json:"payment_method,omitempty"`
	StripeCustomerID string     `gorm:"type:varchar(128)" json:"-"`
	TransactionID    string     `gorm:"type:varchar(128)" json:"transaction_id,omitempty"`
	IsActive         bool       `gorm:"default:true" json:"is_active"`
	AutoRenew        bool       `gorm:"default:false" json:"auto_renew"`
	StartDate        time.Time  `json:"start_date"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	LastRenewalDate  *time.Time `json:"last_renewal_date,omitempty"`
	NextRenewalDate  *time.Time `json:"next_renewal_date,omitempty"`
	CancellationDate *time.Time `json:"cancellation_date,omitempty"`
}

func (Subscription) TableName() string { return "subscriptions" }
