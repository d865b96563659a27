package news

import "time"

// News is an announcement on the dashboard. IsUrgent is stored as a 0/1
// column; the translation happens at the persistence boundary.
type News struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	IsUrgent  bool      `json:"isUrgent"`
	CreatedBy int64     `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateInput struct {
	Title    string `json:"title" validate:"required,min=1"`
	Content  string `json:"content" validate:"required,min=1"`
	IsUrgent bool   `json:"isUrgent"`
}

// UpdateInput holds a partial update: nil fields are left untouched,
// including IsUrgent, which is only rewritten when explicitly supplied.
type UpdateInput struct {
	Title    *string `json:"title" validate:"omitempty,min=1"`
	Content  *string `json:"content" validate:"omitempty,min=1"`
	IsUrgent *bool   `json:"isUrgent"`
}
