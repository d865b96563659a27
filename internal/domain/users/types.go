package users

import "time"

// User is a band member account. OpenID is the external identity token
// issued by the OAuth provider (or generated locally for admin-created
// accounts) and is stable across logins.
type User struct {
	ID           int64     `json:"id"`
	OpenID       string    `json:"openId"`
	Name         *string   `json:"name"`
	Email        *string   `json:"email"`
	LoginMethod  *string   `json:"loginMethod"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	LastSignedIn time.Time `json:"lastSignedIn"`
}

// UpsertParams carries the insert-or-update payload keyed by OpenID.
// Nil fields are left untouched on conflict.
type UpsertParams struct {
	OpenID       string
	Name         *string
	Email        *string
	LoginMethod  *string
	Role         *string
	LastSignedIn *time.Time
}

type LoginInput struct {
	OpenID      string  `json:"openId" validate:"required"`
	Name        *string `json:"name"`
	Email       *string `json:"email" validate:"omitempty,email"`
	LoginMethod *string `json:"loginMethod"`
	Role        *string `json:"role" validate:"omitempty,oneof=admin user"`
}

type CreateInput struct {
	Name     string  `json:"name" validate:"required,min=1"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Role     string  `json:"role" validate:"required,oneof=admin user"`
}

// CreateResult relays the generated identity token and the supplied
// password back to the admin. The password is never persisted here;
// credential storage belongs to the external auth provider.
type CreateResult struct {
	OpenID   string `json:"openId"`
	Password string `json:"password"`
}

type UpdateInput struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Email *string `json:"email" validate:"omitempty,email"`
	Role  *string `json:"role" validate:"omitempty,oneof=admin user"`
}
