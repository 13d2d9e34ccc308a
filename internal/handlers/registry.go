package handlers

import (
	"signlearn_backend/internal/auth"
	"signlearn_backend/internal/services"
	"signlearn_backend/internal/validator"
)

// AppHandlers holds all HTTP handlers.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	LessonHandler       *LessonHandler
	MediaHandler        *MediaHandler
	FeedbackHandler     *FeedbackHandler
	SubscriptionHandler *SubscriptionHandler
	PaymentHandler      *PaymentHandler
}

func NewAppHandlers(svc *services.ServiceContainer, tokens *auth.TokenManager) *AppHandlers {
	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		AuthHandler:         NewAuthHandler(base, svc.AuthService, svc.UserService, tokens),
		UserHandler:         NewUserHandler(base, svc.UserService, tokens),
		LessonHandler:       NewLessonHandler(base, svc.LessonService, svc.MediaService, tokens),
		MediaHandler:        NewMediaHandler(base, svc.MediaService, tokens),
		FeedbackHandler:     NewFeedbackHandler(base, svc.FeedbackService, tokens),
		SubscriptionHandler: NewSubscriptionHandler(base, svc.SubscriptionService, tokens),
		PaymentHandler:      NewPaymentHandler(base, svc.PaymentService, tokens),
	}
}
