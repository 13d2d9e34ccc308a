package services

import (
	"testing"

	"signlearn_backend/internal/models"
	"signlearn_backend/internal/repositories"
	"signlearn_backend/internal/services/dto"
	"signlearn_backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lessonFixture struct {
	svc      LessonService
	mediaSvc MediaService
	lessons  *fakeLessonRepo
	media    *fakeMediaRepo
	fb       *fakeFeedbackRepo
}

func newLessonFixture(t *testing.T) *lessonFixture {
	t.Helper()
	media := newFakeMediaRepo()
	fb := newFakeFeedbackRepo()
	lessons := newFakeLessonRepo(media, fb)
	return &lessonFixture{
		svc:      NewLessonService(lessons),
		mediaSvc: NewMediaService(media, lessons),
		lessons:  lessons,
		media:    media,
		fb:       fb,
	}
}

func TestLesson_CreateAndGet(t *testing.T) {
	t.Parallel()

	f := newLessonFixture(t)
	lesson, err := f.svc.Create(&dto.CreateLessonRequest{
		Title:      "Fingerspelling basics",
		Content:    "The manual alphabet.",
		Category:   "alphabet",
		Difficulty: 1,
		Duration:   15,
		Tags:       []string{"alphabet", "basics"},
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, lesson.ID)

	got, err := f.svc.GetByID(lesson.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fingerspelling basics", got.Title)
	assert.JSONEq(t, `["alphabet","basics"]`, string(got.Tags))
}

func TestLesson_GetNotFound(t *testing.T) {
	t.Parallel()

	f := newLessonFixture(t)
	_, err := f.svc.GetByID(uuid.New())

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestLesson_UpdateIDMismatch(t *testing.T) {
	t.Parallel()

	f := newLessonFixture(t)
	lesson, err := f.svc.Create(&dto.CreateLessonRequest{Title: "A"})
	require.NoError(t, err)

	_, err = f.svc.Update(lesson.ID, &dto.UpdateLessonRequest{
		ID:    uuid.NewString(),
		Title: "B",
	})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestLesson_Update(t *testing.T) {
	t.Parallel()

	f := newLessonFixture(t)
	lesson, err := f.svc.Create(&dto.CreateLessonRequest{Title: "Old", Category: "numbers"})
	require.NoError(t, err)

	updated, err := f.svc.Update(lesson.ID, &dto.UpdateLessonRequest{
		ID:         lesson.ID.String(),
		Title:      "New title",
		Category:   "numbers",
		Difficulty: 3,
		Duration:   30,
		VideoURL:   "https://cdn.example.com/numbers.mp4",
	})
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, 3, updated.Difficulty)
	assert.Equal(t, "https://cdn.example.com/numbers.mp4", updated.VideoURL)
}

func TestLesson_ListFiltersByCategory(t *testing.T) {
	t.Parallel()

	f := newLessonFixture(t)
	_, err := f.svc.Create(&dto.CreateLessonRequest{Title: "A", Category: "alphabet"})
	require.NoError(t, err)
	_, err = f.svc.Create(&dto.CreateLessonRequest{Title: "B", Category: "numbers"})
	require.NoError(t, err)

	lessons, total, err := f.svc.List(repositories.LessonFilter{Category: "alphabet"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, lessons, 1)
	assert.Equal(t, "A", lessons[0].Title)
}

func TestLesson_DeleteDetachesMediaAndFeedback(t *testing.T) {
	t.Parallel()

	f := newLessonFixture(t)
	lesson, err := f.svc.Create(&dto.CreateLessonRequest{Title: "With media"})
	require.NoError(t, err)

	userID := uuid.New()
	media, err := f.mediaSvc.Create(userID, &dto.CreateMediaRequest{
		URL:      "https://cdn.example.com/v1.mp4",
		Type:     "video",
		LessonID: lesson.ID.String(),
	})
	require.NoError(t, err)

	lessonID := lesson.ID
	require.NoError(t, f.fb.Create(&models.Feedback{
		Comment:  "Great lesson",
		Rating:   5,
		UserID:   userID,
		LessonID: &lessonID,
	}))

	require.NoError(t, f.svc.Delete(lesson.ID))

	// Media and feedback survive with the lesson link nulled.
	gotMedia, err := f.mediaSvc.GetByID(media.ID)
	require.NoError(t, err)
	assert.Nil(t, gotMedia.LessonID)

	all, err := f.fb.FindAll(10, 0)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Nil(t, all[0].LessonID)
}

func TestLesson_DeleteNotFound(t *testing.T) {
	t.Parallel()

	f := newLessonFixture(t)
	err := f.svc.Delete(uuid.New())

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestMedia_CreateRejectsUnknownLesson(t *testing.T) {
	t.Parallel()

	f := newLessonFixture(t)
	_, err := f.mediaSvc.Create(uuid.New(), &dto.CreateMediaRequest{
		URL:      "https://cdn.example.com/v1.mp4",
		LessonID: uuid.NewString(),
	})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
