package handlers

import (
	"io"
	"net/http"

	"signlearn_backend/internal/auth"
	"signlearn_backend/internal/middleware"
	"signlearn_backend/internal/services"
	"signlearn_backend/internal/services/dto"
	"signlearn_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	*BaseHandler
	paymentService services.PaymentService
	tokens         *auth.TokenManager
}

func NewPaymentHandler(base *BaseHandler, paymentService services.PaymentService, tokens *auth.TokenManager) *PaymentHandler {
	return &PaymentHandler{BaseHandler: base, paymentService: paymentService, tokens: tokens}
}

func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/payments")
	payments.Use(middleware.AuthMiddleware(h.tokens))
	{
		payments.POST("/create-intent", h.CreateIntent)
		payments.POST("/process", h.ProcessPayment)
	}

	// The webhook is authenticated by its signature, not a bearer token.
	rg.POST("/payments/webhook", h.Webhook)
}

func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePaymentIntentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.paymentService.CreateIntent(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.ProcessPaymentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.paymentService.ProcessPayment(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	status := http.StatusOK
	if !resp.Success {
		status = http.StatusBadRequest
	}
	c.JSON(status, resp)
}

func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Cannot read request body"))
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if err := h.paymentService.HandleWebhook(payload, signature); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}
