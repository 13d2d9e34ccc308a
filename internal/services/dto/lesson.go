package dto

type CreateLessonRequest struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Category    string   `json:"category" validate:"max=100"`
	Difficulty  int      `json:"difficulty" validate:"omitempty,gte=1,lte=5"`
	Duration    int      `json:"duration" validate:"omitempty,gte=1,lte=300"`
	ImageURL    string   `json:"image_url" validate:"omitempty,url"`
	VideoURL    string   `json:"video_url" validate:"omitempty,url"`
	Tags        []string `json:"tags"`
}

type UpdateLessonRequest struct {
	ID          string   `json:"id" validate:"required,uuid"`
	Title       string   `json:"title" validate:"required,max=255"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Category    string   `json:"category" validate:"max=100"`
	Difficulty  int      `json:"difficulty" validate:"omitempty,gte=1,lte=5"`
	Duration    int      `json:"duration" validate:"omitempty,gte=1,lte=300"`
	ImageURL    string   `json:"image_url" validate:"omitempty,url"`
	VideoURL    string   `json:"video_url" validate:"omitempty,url"`
	Tags        []string `json:"tags"`
}

type CreateMediaRequest struct {
	Name        string `json:"name" validate:"max=255"`
	Description string `json:"description"`
	URL         string `json:"url" validate:"required,url"`
	Type        string `json:"type" validate:"omitempty,oneof=video image audio document"`
	Size        int64  `json:"size" validate:"gte=0"`
	ContentType string `json:"content_type" validate:"max=100"`
	LessonID    string `json:"lesson_id" validate:"omitempty,uuid"`
}

type UpdateMediaRequest struct {
	ID          string `json:"id" validate:"required,uuid"`
	Name        string `json:"name" validate:"max=255"`
	Description string `json:"description"`
	URL         string `json:"url" validate:"required,url"`
	Type        string `json:"type" validate:"omitempty,oneof=video image audio document"`
	Size        int64  `json:"size" validate:"gte=0"`
	ContentType string `json:"content_type" validate:"max=100"`
	LessonID    string `json:"lesson_id" validate:"omitempty,uuid"`
}

type CreateFeedbackRequest struct {
	Comment  string `json:"comment" validate:"required,max=1000"`
	Rating   int    `json:"rating" validate:"required,gte=1,lte=5"`
	Category string `json:"category" validate:"max=100"`
	LessonID string `json:"lesson_id" validate:"omitempty,uuid"`
}

type UpdateFeedbackRequest struct {
	ID       string `json:"id" validate:"required,uuid"`
	Comment  string `json:"comment" validate:"required,max=1000"`
	Rating   int    `json:"rating" validate:"required,gte=1,lte=5"`
	Category string `json:"category" validate:"max=100"`
}

type AnnotateFeedbackRequest struct {
	Response string `json:"response" validate:"required,max=1000"`
}
