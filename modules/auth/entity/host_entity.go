package entity

import (
	coreEntity "guestdesk/core/entity"

	"github.com/google/uuid"
)

// Host is an account that owns events. The password hash never leaves
// the repository layer in responses.
type Host struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	Name         string    `db:"name" json:"name"`
	PasswordHash string    `db:"password_hash" json:"-"`
	coreEntity.BaseEntity
}
