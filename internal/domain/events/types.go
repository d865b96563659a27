package events

import "time"

// Event is a booked show or rehearsal. ShowTime and SoundCheckTime are
// free-form clock strings ("20:00") as entered by the admin; Date carries
// the calendar ordering.
type Event struct {
	ID                 int64     `json:"id"`
	Title              string    `json:"title"`
	Date               time.Time `json:"date"`
	ShowTime           string    `json:"showTime"`
	SoundCheckTime     *string   `json:"soundCheckTime"`
	Location           string    `json:"location"`
	LocationMapURL     *string   `json:"locationMapUrl"`
	UniformDescription *string   `json:"uniformDescription"`
	UniformImageURL    *string   `json:"uniformImageUrl"`
	Notes              *string   `json:"notes"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type CreateInput struct {
	Title              string    `json:"title" validate:"required,min=1"`
	Date               time.Time `json:"date" validate:"required"`
	ShowTime           string    `json:"showTime" validate:"required"`
	SoundCheckTime     *string   `json:"soundCheckTime"`
	Location           string    `json:"location" validate:"required,min=1"`
	LocationMapURL     *string   `json:"locationMapUrl"`
	UniformDescription *string   `json:"uniformDescription"`
	UniformImageURL    *string   `json:"uniformImageUrl"`
	Notes              *string   `json:"notes"`
}

// UpdateInput holds a partial update: nil fields are left untouched.
type UpdateInput struct {
	Title              *string    `json:"title" validate:"omitempty,min=1"`
	Date               *time.Time `json:"date"`
	ShowTime           *string    `json:"showTime"`
	SoundCheckTime     *string    `json:"soundCheckTime"`
	Location           *string    `json:"location" validate:"omitempty,min=1"`
	LocationMapURL     *string    `json:"locationMapUrl"`
	UniformDescription *string    `json:"uniformDescription"`
	UniformImageURL    *string    `json:"uniformImageUrl"`
	Notes              *string    `json:"notes"`
}
