package services

import (
	"sync"
	"time"

	"signlearn_backend/internal/models"
	"signlearn_backend/internal/repositories"

	"github.com/google/uuid"
)

type fakeLessonRepo struct {
	mu      sync.Mutex
	lessons map[uuid.UUID]*models.Lesson
	media   *fakeMediaRepo
	fb      *fakeFeedbackRepo
}

func newFakeLessonRepo(media *fakeMediaRepo, fb *fakeFeedbackRepo) *fakeLessonRepo {
	return &fakeLessonRepo{
		lessons: make(map[uuid.UUID]*models.Lesson),
		media:   media,
		fb:      fb,
	}
}

func (r *fakeLessonRepo) FindByID(id uuid.UUID) (*models.Lesson, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.lessons[id]; ok {
		cp := *l
		return &cp, nil
	}
	return nil, repositories.ErrLessonNotFound
}

func (r *fakeLessonRepo) FindAll(filter repositories.LessonFilter) ([]models.Lesson, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Lesson
	for _, l := range r.lessons {
		if filter.Category != "" && l.Category != filter.Category {
			continue
		}
		if filter.Difficulty != 0 && l.Difficulty != filter.Difficulty {
			continue
		}
		out = append(out, *l)
	}
	return out, int64(len(out)), nil
}

func (r *fakeLessonRepo) Create(lesson *models.Lesson) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if lesson.ID == uuid.Nil {
		lesson.ID = uuid.New()
	}
	lesson.CreatedAt = time.Now()
	cp := *lesson
	r.lessons[lesson.ID] = &cp
	return nil
}

func (r *fakeLessonRepo) Update(lesson *models.Lesson) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.lessons[lesson.ID]; !ok {
		return repositories.ErrLessonNotFound
	}
	cp := *lesson
	r.lessons[lesson.ID] = &cp
	return nil
}

func (r *fakeLessonRepo) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.lessons[id]; !ok {
		return repositories.ErrLessonNotFound
	}
	delete(r.lessons, id)
	if r.media != nil {
		r.media.detachLesson(id)
	}
	if r.fb != nil {
		r.fb.detachLesson(id)
	}
	return nil
}

type fakeMediaRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*models.Media
}

func newFakeMediaRepo() *fakeMediaRepo {
	return &fakeMediaRepo{items: make(map[uuid.UUID]*models.Media)}
}

func (r *fakeMediaRepo) detachLesson(lessonID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.items {
		if m.LessonID != nil && *m.LessonID == lessonID {
			m.LessonID = nil
		}
	}
}

func (r *fakeMediaRepo) FindByID(id uuid.UUID) (*models.Media, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.items[id]; ok {
		cp := *m
		return &cp, nil
	}
	return nil, repositories.ErrMediaNotFound
}

func (r *fakeMediaRepo) FindAll(limit, offset int) ([]models.Media, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Media
	for _, m := range r.items {
		out = append(out, *m)
	}
	return out, nil
}

func (r *fakeMediaRepo) FindByLesson(lessonID uuid.UUID) ([]models.Media, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Media
	for _, m := range r.items {
		if m.LessonID != nil && *m.LessonID == lessonID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMediaRepo) Create(media *models.Media) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if media.ID == uuid.Nil {
		media.ID = uuid.New()
	}
	cp := *media
	r.items[media.ID] = &cp
	return nil
}

func (r *fakeMediaRepo) Update(media *models.Media) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[media.ID]; !ok {
		return repositories.ErrMediaNotFound
	}
	cp := *media
	r.items[media.ID] = &cp
	return nil
}

func (r *fakeMediaRepo) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return repositories.ErrMediaNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeFeedbackRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*models.Feedback
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{items: make(map[uuid.UUID]*models.Feedback)}
}

func (r *fakeFeedbackRepo) detachLesson(lessonID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.items {
		if f.LessonID != nil && *f.LessonID == lessonID {
			f.LessonID = nil
		}
	}
}

func (r *fakeFeedbackRepo) FindByID(id uuid.UUID) (*models.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.items[id]; ok {
		cp := *f
		return &cp, nil
	}
	return nil, repositories.ErrFeedbackNotFound
}

func (r *fakeFeedbackRepo) FindAll(limit, offset int) ([]models.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Feedback
	for _, f := range r.items {
		out = append(out, *f)
	}
	return out, nil
}

func (r *fakeFeedbackRepo) FindByUser(userID uuid.UUID) ([]models.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Feedback
	for _, f := range r.items {
		if f.UserID == userID {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (r *fakeFeedbackRepo) FindByLesson(lessonID uuid.UUID) ([]models.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Feedback
	for _, f := range r.items {
		if f.LessonID != nil && *f.LessonID == lessonID {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (r *fakeFeedbackRepo) Create(feedback *models.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if feedback.ID == uuid.Nil {
		feedback.ID = uuid.New()
	}
	cp := *feedback
	r.items[feedback.ID] = &cp
	return nil
}

func (r *fakeFeedbackRepo) Update(feedback *models.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[feedback.ID]; !ok {
		return repositories.ErrFeedbackNotFound
	}
	cp := *feedback
	r.items[feedback.ID] = &cp
	return nil
}

func (r *fakeFeedbackRepo) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return repositories.ErrFeedbackNotFound
	}
	delete(r.items, id)
	return nil
}
