package handlers

import (
	"net/http"
	"strconv"

	"signlearn_backend/internal/auth"
	"signlearn_backend/internal/middleware"
	"signlearn_backend/internal/models"
	"signlearn_backend/internal/services"
	"signlearn_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	*BaseHandler
	mediaService services.MediaService
	tokens       *auth.TokenManager
}

func NewMediaHandler(base *BaseHandler, mediaService services.MediaService, tokens *auth.TokenManager) *MediaHandler {
	return &MediaHandler{BaseHandler: base, mediaService: mediaService, tokens: tokens}
}

func (h *MediaHandler) RegisterRoutes(rg *gin.RouterGroup) {
	media := rg.Group("/media")
	media.Use(middleware.AuthMiddleware(h.tokens))
	{
		media.GET("", h.List)
		media.GET("/:id", h.Get)
		media.POST("", h.Create)
	}

	editors := rg.Group("/media")
	editors.Use(middleware.AuthMiddleware(h.tokens))
	editors.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleInstructor))
	{
		editors.PUT("/:id", h.Update)
		editors.DELETE("/:id", h.Delete)
	}
}

func (h *MediaHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, err := h.mediaService.List(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"media": items})
}

func (h *MediaHandler) Get(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	item, err := h.mediaService.GetByID(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *MediaHandler) Create(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateMediaRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	item, err := h.mediaService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *MediaHandler) Update(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateMediaRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	item, err := h.mediaService.Update(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *MediaHandler) Delete(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.mediaService.Delete(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Media deleted"})
}
