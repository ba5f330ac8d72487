package repository

import (
	"context"

	"guestdesk/core/database"
	"guestdesk/modules/auth/entity"

	"github.com/google/uuid"
)

const hostColumns = `id, email, name, password_hash, created_at, updated_at`

type HostRepository struct {
	db database.Database
}

func NewHostRepository(db database.Database) *HostRepository {
	return &HostRepository{db: db}
}

func (r *HostRepository) Create(ctx context.Context, h *entity.Host) error {
	query := `
		INSERT INTO hosts (email, name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING ` + hostColumns

	return r.db.GetContext(ctx, h, query, h.Email, h.Name, h.PasswordHash)
}

func (r *HostRepository) GetByEmail(ctx context.Context, email string) (*entity.Host, error) {
	query := `SELECT ` + hostColumns + ` FROM hosts WHERE email = $1`

	var h entity.Host
	if err := r.db.GetContext(ctx, &h, query, email); err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *HostRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Host, error) {
	query := `SELECT ` + hostColumns + ` FROM hosts WHERE id = $1`

	var h entity.Host
	if err := r.db.GetContext(ctx, &h, query, id); err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *HostRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM hosts WHERE email = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		return false, err
	}
	return exists, nil
}
