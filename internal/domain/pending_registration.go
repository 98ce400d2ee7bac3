package domain

import (
	"time"
)

// PendingRegistration is a signup waiting for its emailed code to be confirmed.
type PendingRegistration struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	BirthDate    time.Time `json:"birth_date"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"password_hash"`
	Code         string    `json:"code"`
	CreatedAt    time.Time `json:"created_at"`
}
