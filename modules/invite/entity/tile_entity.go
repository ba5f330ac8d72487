package entity

import (
	coreEntity "guestdesk/core/entity"

	"github.com/google/uuid"
)

// TileType is the closed set of invitation page blocks.
type TileType string

const (
	TileTitle          TileType = "title"
	TileImage          TileType = "image"
	TileTimer          TileType = "timer"
	TileEventDetails   TileType = "event-details"
	TileDescription    TileType = "description"
	TileFeatureButtons TileType = "feature-buttons"
	TileFooter         TileType = "footer"
	TileEventCarousel  TileType = "event-carousel"
)

func (t TileType) Valid() bool {
	switch t {
	case TileTitle, TileImage, TileTimer, TileEventDetails,
		TileDescription, TileFeatureButtons, TileFooter, TileEventCarousel:
		return true
	}
	return false
}

// Tile is one configurable block on an event's invitation page. Settings
// is free-form per type (an image tile carries src, a timer carries the
// target time, an overlaid title carries x/y percentage anchors).
// OverlayTargetID nests a title tile on top of an image tile; no other
// pairing is allowed.
type Tile struct {
	ID              uuid.UUID        `db:"id" json:"id"`
	EventID         uuid.UUID        `db:"event_id" json:"event_id"`
	Type            TileType         `db:"type" json:"type"`
	Enabled         bool             `db:"enabled" json:"enabled"`
	OrderIndex      int              `db:"order_index" json:"order_index"`
	Settings        coreEntity.JSONB `db:"settings" json:"settings"`
	OverlayTargetID *uuid.UUID       `db:"overlay_target_id" json:"overlay_target_id"`
	coreEntity.BaseEntity
}

// ImageSrc extracts the image source from the settings, empty when unset.
func (t *Tile) ImageSrc() string {
	if t.Settings == nil {
		return ""
	}
	src, _ := t.Settings["src"].(string)
	return src
}
