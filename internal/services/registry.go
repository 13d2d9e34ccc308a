package services

import (
	"signlearn_backend/internal/auth"
	"signlearn_backend/internal/config"
	"signlearn_backend/internal/payments"
	"signlearn_backend/internal/pkg/email"
	"signlearn_backend/internal/repositories"

	"gorm.io/gorm"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	LessonService       LessonService
	MediaService        MediaService
	FeedbackService     FeedbackService
	SubscriptionService SubscriptionService
	PaymentService      PaymentService
}

// NewServiceContainer wires repositories and services with explicit
// constructor injection.
func NewServiceContainer(db *gorm.DB, cfg *config.Config, tokens *auth.TokenManager, sender email.Sender, paymentClient payments.Client) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	tokenRepo := repositories.NewRefreshTokenRepository(db)
	lessonRepo := repositories.NewLessonRepository(db)
	mediaRepo := repositories.NewMediaRepository(db)
	feedbackRepo := repositories.NewFeedbackRepository(db)
	subRepo := repositories.NewSubscriptionRepository(db)

	return &ServiceContainer{
		AuthService:         NewAuthService(userRepo, tokenRepo, tokens, sender, cfg),
		UserService:         NewUserService(userRepo, cfg),
		LessonService:       NewLessonService(lessonRepo),
		MediaService:        NewMediaService(mediaRepo, lessonRepo),
		FeedbackService:     NewFeedbackService(feedbackRepo, lessonRepo),
		SubscriptionService: NewSubscriptionService(subRepo),
		PaymentService:      NewPaymentService(paymentClient, userRepo, subRepo, sender),
	}
}
