package domain

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID               uuid.UUID      `db:"id" json:"id"`
	Name             string         `db:"name" json:"nome"`
	Email            string         `db:"email" json:"email"`
	BirthDate        time.Time      `db:"birth_date" json:"dataNascimento"`
	Phone            string         `db:"phone" json:"telefone"`
	PasswordHash     string         `db:"password_hash" json:"-"`
	IsVerified       bool           `db:"is_verified" json:"isVerified"`
	VerificationCode sql.NullString `db:"verification_code" json:"-"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
