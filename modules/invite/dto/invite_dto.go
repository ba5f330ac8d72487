package dto

import (
	coreEntity "guestdesk/core/entity"
	"guestdesk/modules/invite/entity"
	"guestdesk/modules/invite/service"

	"github.com/google/uuid"
)

type CreateTileRequest struct {
	Type            string           `json:"type"`
	Settings        coreEntity.JSONB `json:"settings"`
	OverlayTargetID *uuid.UUID       `json:"overlay_target_id"`
}

type UpdateTileRequest struct {
	Settings        coreEntity.JSONB `json:"settings"`
	OverlayTargetID *uuid.UUID       `json:"overlay_target_id"`
	ClearOverlay    bool             `json:"clear_overlay"`
}

type ToggleTileRequest struct {
	Enabled bool `json:"enabled"`
}

type ReorderRequest struct {
	TileIDs []uuid.UUID `json:"tile_ids"`
}

type TileListResponse struct {
	Tiles []entity.Tile `json:"tiles"`
	Total int           `json:"total"`
}

// LayoutResponse is the public invite page payload.
type LayoutResponse struct {
	EventTitle string               `json:"event_title"`
	Layout     []service.LayoutTile `json:"layout"`
}

type UploadImageResponse struct {
	URL string `json:"url"`
}
