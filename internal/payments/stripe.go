package payments

import (
	"fmt"

	"signlearn_backend/internal/config"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/customer"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/webhook"
)

// Client wraps the payment processor calls used by the payment service.
type Client interface {
	CreatePaymentIntent(amountCents int64, currency, description string, metadata map[string]string) (*IntentResult, error)
	CreateCustomer(email, name string, metadata map[string]string) (string, error)
	ConfirmPayment(paymentMethodID, customerID string, amountCents int64, currency string, metadata map[string]string) (*PaymentResult, error)
	ConstructWebhookEvent(payload []byte, signature string) (stripe.Event, error)
	PublishableKey() string
}

// IntentResult carries what the browser needs to confirm a payment.
type IntentResult struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// PaymentResult is the outcome of a synchronous charge.
type PaymentResult struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	Succeeded     bool   `json:"succeeded"`
}

type StripeClient struct {
	cfg *config.Config
}

func NewStripeClient(cfg *config.Config) *StripeClient {
	stripe.Key = cfg.Stripe.SecretKey
	return &StripeClient{cfg: cfg}
}

func (c *StripeClient) CreatePaymentIntent(amountCents int64, currency, description string, metadata map[string]string) (*IntentResult, error) {
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(amountCents),
		Currency:    stripe.String(currency),
		Description: stripe.String(description),
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe payment intent creation failed: %w", err)
	}
	return &IntentResult{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

func (c *StripeClient) CreateCustomer(email, name string, metadata map[string]string) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	cust, err := customer.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe customer creation failed: %w", err)
	}
	return cust.ID, nil
}

// ConfirmPayment charges the payment method synchronously.
func (c *StripeClient) ConfirmPayment(paymentMethodID, customerID string, amountCents int64, currency string, metadata map[string]string) (*PaymentResult, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(amountCents),
		Currency:      stripe.String(currency),
		PaymentMethod: stripe.String(paymentMethodID),
		Customer:      stripe.String(customerID),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe charge failed: %w", err)
	}
	return &PaymentResult{
		TransactionID: pi.ID,
		Status:        string(pi.Status),
		Succeeded:     pi.Status == stripe.PaymentIntentStatusSucceeded,
	}, nil
}

func (c *StripeClient) ConstructWebhookEvent(payload []byte, signature string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, signature, c.cfg.Stripe.WebhookSecret)
}

func (c *StripeClient) PublishableKey() string {
	return c.cfg.Stripe.PublishableKey
}
