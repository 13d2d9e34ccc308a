package handlers

import (
	"net/http"
	"strconv"

	"signlearn_backend/internal/auth"
	"signlearn_backend/internal/middleware"
	"signlearn_backend/internal/services"
	"signlearn_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	*BaseHandler
	feedbackService services.FeedbackService
	tokens          *auth.TokenManager
}

func NewFeedbackHandler(base *BaseHandler, feedbackService services.FeedbackService, tokens *auth.TokenManager) *FeedbackHandler {
	return &FeedbackHandler{BaseHandler: base, feedbackService: feedbackService, tokens: tokens}
}

// RegisterRoutes lets authenticated users submit and edit their own
// feedback; reading and annotating the full set is admin work.
func (h *FeedbackHandler) RegisterRoutes(rg *gin.RouterGroup) {
	feedback := rg.Group("/feedback")
	feedback.Use(middleware.AuthMiddleware(h.tokens))
	{
		feedback.POST("", h.Create)
		feedback.PUT("/:id", h.Update)
		feedback.DELETE("/:id", h.Delete)
	}

	admin := rg.Group("/feedback")
	admin.Use(middleware.AuthMiddleware(h.tokens))
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("", h.List)
		admin.GET("/:id", h.Get)
		admin.POST("/:id/annotate", h.Annotate)
	}
}

func (h *FeedbackHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, err := h.feedbackService.List(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedback": items})
}

func (h *FeedbackHandler) Get(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	item, err := h.feedbackService.GetByID(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *FeedbackHandler) Create(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateFeedbackRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	item, err := h.feedbackService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *FeedbackHandler) Update(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateFeedbackRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	item, err := h.feedbackService.Update(id, userID, middleware.GetRole(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *FeedbackHandler) Annotate(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AnnotateFeedbackRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	item, err := h.feedbackService.Annotate(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *FeedbackHandler) Delete(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	if err := h.feedbackService.Delete(id, userID, middleware.GetRole(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Feedback deleted"})
}
