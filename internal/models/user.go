package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an authorship identity for blog posts. The storefront has no
// login surface; the record exists so posts can carry a display name.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"display_name"`
	CreatedAt    time.Time `json:"created_at"`
}
