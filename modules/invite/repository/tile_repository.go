package repository

import (
	"context"

	"guestdesk/core/database"
	"guestdesk/modules/invite/entity"

	"github.com/google/uuid"
)

const tileColumns = `id, event_id, type, enabled, order_index, settings, overlay_target_id, created_at, updated_at`

type TileRepository struct {
	db database.Database
}

func NewTileRepository(db database.Database) *TileRepository {
	return &TileRepository{db: db}
}

func (r *TileRepository) Create(ctx context.Context, t *entity.Tile) error {
	query := `
		INSERT INTO invite_tiles (event_id, type, enabled, order_index, settings, overlay_target_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + tileColumns

	return r.db.GetContext(ctx, t, query,
		t.EventID, t.Type, t.Enabled, t.OrderIndex, t.Settings, t.OverlayTargetID)
}

func (r *TileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Tile, error) {
	query := `SELECT ` + tileColumns + ` FROM invite_tiles WHERE id = $1`

	var t entity.Tile
	if err := r.db.GetContext(ctx, &t, query, id); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TileRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]entity.Tile, error) {
	query := `
		SELECT ` + tileColumns + `
		FROM invite_tiles
		WHERE event_id = $1
		ORDER BY order_index ASC, created_at ASC`

	var tiles []entity.Tile
	if err := r.db.SelectContext(ctx, &tiles, query, eventID); err != nil {
		return nil, err
	}
	return tiles, nil
}

func (r *TileRepository) Update(ctx context.Context, t *entity.Tile) error {
	query := `
		UPDATE invite_tiles
		SET enabled = $2, order_index = $3, settings = $4, overlay_target_id = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + tileColumns

	return r.db.GetContext(ctx, t, query,
		t.ID, t.Enabled, t.OrderIndex, t.Settings, t.OverlayTargetID)
}

// UpdateOrder persists new order indexes for a whole page in one round
// trip per tile. Callers pass the full reordered set.
func (r *TileRepository) UpdateOrder(ctx context.Context, tiles []entity.Tile) error {
	query := `UPDATE invite_tiles SET order_index = $2, updated_at = NOW() WHERE id = $1`
	for _, t := range tiles {
		if err := r.db.ExecContext(ctx, query, t.ID, t.OrderIndex); err != nil {
			return err
		}
	}
	return nil
}

func (r *TileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM invite_tiles WHERE id = $1`
	return r.db.ExecContext(ctx, query, id)
}
