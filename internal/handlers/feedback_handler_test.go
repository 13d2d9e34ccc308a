package handlers

import (
	"net/http"
	"testing"

	"signlearn_backend/internal/auth"
	"signlearn_backend/internal/models"
	"signlearn_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeedbackService struct {
	item *models.Feedback
	err  error
}

func (s *stubFeedbackService) GetByID(id uuid.UUID) (*models.Feedback, error) { return s.item, s.err }
func (s *stubFeedbackService) List(limit, offset int) ([]models.Feedback, error) {
	if s.item == nil {
		return nil, s.err
	}
	return []models.Feedback{*s.item}, s.err
}
func (s *stubFeedbackService) ListByLesson(lessonID uuid.UUID) ([]models.Feedback, error) {
	return nil, s.err
}
func (s *stubFeedbackService) Create(userID uuid.UUID, req *dto.CreateFeedbackRequest) (*models.Feedback, error) {
	return s.item, s.err
}
func (s *stubFeedbackService) Update(id uuid.UUID, callerID uuid.UUID, callerRole string, req *dto.UpdateFeedbackRequest) (*models.Feedback, error) {
	return s.item, s.err
}
func (s *stubFeedbackService) Annotate(id uuid.UUID, req *dto.AnnotateFeedbackRequest) (*models.Feedback, error) {
	return s.item, s.err
}
func (s *stubFeedbackService) Delete(id uuid.UUID, callerID uuid.UUID, callerRole string) error {
	return s.err
}

func newFeedbackRouter(svc *stubFeedbackService, tokens *auth.TokenManager) *gin.Engine {
	router := gin.New()
	h := NewFeedbackHandler(newTestBase(), svc, tokens)
	api := router.Group("/api")
	h.RegisterRoutes(api)
	return router
}

func TestFeedbackList_AdminOnly(t *testing.T) {
	t.Parallel()

	tokens := testTokens()
	item := &models.Feedback{Comment: "too fast", Rating: 2, UserID: uuid.New()}
	item.ID = uuid.New()
	router := newFeedbackRouter(&stubFeedbackService{item: item}, tokens)

	w := getWithToken(t, router, "/api/feedback", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	userToken, _, err := tokens.Generate(uuid.New(), "U", "u@example.com", "User")
	require.NoError(t, err)
	w = getWithToken(t, router, "/api/feedback", userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken, _, err := tokens.Generate(uuid.New(), "A", "a@example.com", "Admin")
	require.NoError(t, err)
	w = getWithToken(t, router, "/api/feedback", adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "too fast")
}

func TestFeedbackGet_AdminOnly(t *testing.T) {
	t.Parallel()

	tokens := testTokens()
	item := &models.Feedback{Comment: "x", Rating: 3, UserID: uuid.New()}
	item.ID = uuid.New()
	router := newFeedbackRouter(&stubFeedbackService{item: item}, tokens)

	userToken, _, err := tokens.Generate(uuid.New(), "U", "u@example.com", "User")
	require.NoError(t, err)
	w := getWithToken(t, router, "/api/feedback/"+item.ID.String(), userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestFeedbackCreate_AnyAuthenticatedUser(t *testing.T) {
	t.Parallel()

	tokens := testTokens()
	item := &models.Feedback{Comment: "nice", Rating: 5, UserID: uuid.New()}
	item.ID = uuid.New()
	router := newFeedbackRouter(&stubFeedbackService{item: item}, tokens)

	userToken, _, err := tokens.Generate(item.UserID, "U", "u@example.com", "User")
	require.NoError(t, err)
	w := postJSON(t, router, "/api/feedback", dto.CreateFeedbackRequest{
		Comment: "nice",
		Rating:  5,
	}, userToken)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestFeedbackAnnotate_AdminOnly(t *testing.T) {
	t.Parallel()

	tokens := testTokens()
	item := &models.Feedback{Comment: "x", Rating: 3, UserID: uuid.New(), Reviewed: true}
	item.ID = uuid.New()
	router := newFeedbackRouter(&stubFeedbackService{item: item}, tokens)

	body := dto.AnnotateFeedbackRequest{Response: "thanks"}

	userToken, _, err := tokens.Generate(uuid.New(), "U", "u@example.com", "User")
	require.NoError(t, err)
	w := postJSON(t, router, "/api/feedback/"+item.ID.String()+"/annotate", body, userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken, _, err := tokens.Generate(uuid.New(), "A", "a@example.com", "Admin")
	require.NoError(t, err)
	w = postJSON(t, router, "/api/feedback/"+item.ID.String()+"/annotate", body, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
}
