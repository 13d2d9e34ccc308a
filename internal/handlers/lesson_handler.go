package handlers

import (
	"net/http"
	"strconv"

	"signlearn_backend/internal/auth"
	"signlearn_backend/internal/middleware"
	"signlearn_backend/internal/models"
	"signlearn_backend/internal/repositories"
	"signlearn_backend/internal/services"
	"signlearn_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type LessonHandler struct {
	*BaseHandler
	lessonService services.LessonService
	mediaService  services.MediaService
	tokens        *auth.TokenManager
}

func NewLessonHandler(base *BaseHandler, lessonService services.LessonService, mediaService services.MediaService, tokens *auth.TokenManager) *LessonHandler {
	return &LessonHandler{
		BaseHandler:   base,
		lessonService: lessonService,
		mediaService:  mediaService,
		tokens:        tokens,
	}
}

// RegisterRoutes exposes reads publicly; writes are restricted to
// admins and instructors.
func (h *LessonHandler) RegisterRoutes(rg *gin.RouterGroup) {
	lessons := rg.Group("/lessons")
	{
		lessons.GET("", h.List)
		lessons.GET("/:id", h.Get)
		lessons.GET("/:id/media", h.ListMedia)
	}

	editors := rg.Group("/lessons")
	editors.Use(middleware.AuthMiddleware(h.tokens))
	editors.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleInstructor))
	{
		editors.POST("", h.Create)
		editors.PUT("/:id", h.Update)
		editors.DELETE("/:id", h.Delete)
	}
}

func (h *LessonHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	difficulty, _ := strconv.Atoi(c.Query("difficulty"))

	filter := repositories.LessonFilter{
		Category:   c.Query("category"),
		Difficulty: difficulty,
		Limit:      limit,
		Offset:     offset,
	}

	lessons, total, err := h.lessonService.List(filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lessons": lessons, "total": total})
}

func (h *LessonHandler) Get(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	lesson, err := h.lessonService.GetByID(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, lesson)
}

func (h *LessonHandler) ListMedia(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	items, err := h.mediaService.ListByLesson(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"media": items})
}

func (h *LessonHandler) Create(c *gin.Context) {
	var req dto.CreateLessonRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	lesson, err := h.lessonService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lesson)
}

func (h *LessonHandler) Update(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateLessonRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	lesson, err := h.lessonService.Update(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, lesson)
}

func (h *LessonHandler) Delete(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.lessonService.Delete(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Lesson deleted"})
}
