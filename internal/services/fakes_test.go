package services

import (
	"errors"
	"sync"
	"time"

	"signlearn_backend/internal/models"
	"signlearn_backend/internal/payments"
	"signlearn_backend/internal/repositories"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
)

// In-memory repository fakes for service tests.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
	roles map[string]*models.Role
}

func newFakeUserRepo() *fakeUserRepo {
	r := &fakeUserRepo{
		users: make(map[uuid.UUID]*models.User),
		roles: make(map[string]*models.Role),
	}
	for _, name := range []string{models.RoleAdmin, models.RoleUser, models.RoleInstructor, models.RolePremium, models.RoleModerator} {
		role := &models.Role{Name: name}
		role.ID = uuid.New()
		r.roles[name] = role
	}
	return r
}

func (r *fakeUserRepo) FindByID(id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByConfirmationToken(token string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if token != "" && u.ConfirmationToken == token {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByResetToken(token string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if token != "" && u.ResetToken == token {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	if user.Role == nil {
		for _, role := range r.roles {
			if role.ID == user.RoleID {
				user.Role = role
				break
			}
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) FindAll(limit, offset int) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) CountAll() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) FindRoleByName(name string) (*models.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if role, ok := r.roles[name]; ok {
		return role, nil
	}
	return nil, repositories.ErrRoleNotFound
}

func (r *fakeUserRepo) EnsureRole(name, description string) (*models.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if role, ok := r.roles[name]; ok {
		return role, nil
	}
	role := &models.Role{Name: name, Description: description}
	role.ID = uuid.New()
	r.roles[name] = role
	return role, nil
}

type fakeTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*models.RefreshToken
	users  *fakeUserRepo
}

func newFakeTokenRepo(users *fakeUserRepo) *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*models.RefreshToken), users: users}
}

func (r *fakeTokenRepo) Create(token *models.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	cp := *token
	r.tokens[token.Token] = &cp
	return nil
}

func (r *fakeTokenRepo) FindByToken(token string) (*models.RefreshToken, error) {
	r.mu.Lock()
	rt, ok := r.tokens[token]
	r.mu.Unlock()
	if !ok {
		return nil, repositories.ErrRefreshTokenNotFound
	}
	cp := *rt
	if user, err := r.users.FindByID(rt.UserID); err == nil {
		cp.User = user
	}
	return &cp, nil
}

func (r *fakeTokenRepo) MarkUsed(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rt := range r.tokens {
		if rt.ID == id {
			rt.IsUsed = true
			return nil
		}
	}
	return repositories.ErrRefreshTokenNotFound
}

func (r *fakeTokenRepo) RevokeByUser(userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rt := range r.tokens {
		if rt.UserID == userID {
			rt.IsRevoked = true
		}
	}
	return nil
}

func (r *fakeTokenRepo) DeleteExpired() error { return nil }

type fakeSubscriptionRepo struct {
	mu   sync.Mutex
	subs map[uuid.UUID]*models.Subscription // keyed by user id
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{subs: make(map[uuid.UUID]*models.Subscription)}
}

func (r *fakeSubscriptionRepo) FindByID(id uuid.UUID) (*models.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.subs {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, repositories.ErrSubscriptionNotFound
}

func (r *fakeSubscriptionRepo) FindByUser(userID uuid.UUID) (*models.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.subs[userID]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, repositories.ErrSubscriptionNotFound
}

func (r *fakeSubscriptionRepo) FindAll(limit, offset int) ([]models.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Subscription
	for _, s := range r.subs {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeSubscriptionRepo) Create(sub *models.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.subs[sub.UserID]; ok {
		// Mirrors the unique index on user_id.
		return errors.New("duplicate key value violates unique constraint")
	}
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	sub.CreatedAt = time.Now()
	cp := *sub
	r.subs[sub.UserID] = &cp
	return nil
}

func (r *fakeSubscriptionRepo) Update(sub *models.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.subs[sub.UserID]; !ok {
		return repositories.ErrSubscriptionNotFound
	}
	cp := *sub
	r.subs[sub.UserID] = &cp
	return nil
}

func (r *fakeSubscriptionRepo) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for userID, s := range r.subs {
		if s.ID == id {
			delete(r.subs, userID)
			return nil
		}
	}
	return repositories.ErrSubscriptionNotFound
}

func (r *fakeSubscriptionRepo) Upsert(sub *models.Subscription) error {
	existing, err := r.FindByUser(sub.UserID)
	if err == nil {
		sub.ID = existing.ID
		sub.CreatedAt = existing.CreatedAt
		return r.Update(sub)
	}
	if !errors.Is(err, repositories.ErrSubscriptionNotFound) {
		return err
	}
	return r.Create(sub)
}

// fakeSender records sent emails.
type fakeSender struct {
	mu   sync.Mutex
	sent []sentMail
	fail bool
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

func (s *fakeSender) Send(to, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("smtp connection refused")
	}
	s.sent = append(s.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (s *fakeSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

// fakePaymentClient simulates the payment processor.
type fakePaymentClient struct {
	mu              sync.Mutex
	failCharge      bool
	chargeStatus    stripe.PaymentIntentStatus
	customers       int
	charges         []fakeCharge
	webhookErr      error
	constructedType stripe.EventType
}

type fakeCharge struct {
	PaymentMethodID string
	CustomerID      string
	AmountCents     int64
	Currency        string
}

func (c *fakePaymentClient) CreatePaymentIntent(amountCents int64, currency, description string, metadata map[string]string) (*payments.IntentResult, error) {
	return &payments.IntentResult{ID: "pi_test", ClientSecret: "pi_test_secret"}, nil
}

func (c *fakePaymentClient) CreateCustomer(email, name string, metadata map[string]string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.customers++
	return "cus_test", nil
}

func (c *fakePaymentClient) ConfirmPayment(paymentMethodID, customerID string, amountCents int64, currency string, metadata map[string]string) (*payments.PaymentResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failCharge {
		return nil, errors.New("card declined")
	}
	c.charges = append(c.charges, fakeCharge{paymentMethodID, customerID, amountCents, currency})
	status := c.chargeStatus
	if status == "" {
		status = stripe.PaymentIntentStatusSucceeded
	}
	return &payments.PaymentResult{
		TransactionID: "pi_charge_test",
		Status:        string(status),
		Succeeded:     status == stripe.PaymentIntentStatusSucceeded,
	}, nil
}

func (c *fakePaymentClient) ConstructWebhookEvent(payload []byte, signature string) (stripe.Event, error) {
	if c.webhookErr != nil {
		return stripe.Event{}, c.webhookErr
	}
	return stripe.Event{ID: "evt_test", Type: c.constructedType}, nil
}

func (c *fakePaymentClient) PublishableKey() string { return "pk_test" }
