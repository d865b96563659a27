package resources

import "time"

type Type string

const (
	TypeAudio    Type = "audio"
	TypeDocument Type = "document"
	TypeVideo    Type = "video"
)

// Resource is a shared file (backing track, chart, video) linked by URL.
type Resource struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Type        Type      `json:"type"`
	URL         string    `json:"url"`
	CreatedBy   int64     `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateInput struct {
	Title       string  `json:"title" validate:"required,min=1"`
	Description *string `json:"description"`
	Type        Type    `json:"type" validate:"required,oneof=audio document video"`
	URL         string  `json:"url" validate:"required,url"`
}

// UpdateInput holds a partial update: nil fields are left untouched.
type UpdateInput struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Type        *Type   `json:"type" validate:"omitempty,oneof=audio document video"`
	URL         *string `json:"url" validate:"omitempty,url"`
}
