package service

import (
	"sort"

	appErrors "guestdesk/core/errors"
	"guestdesk/modules/invite/entity"

	"github.com/google/uuid"
)

// IsMandatory reports whether a tile type may be disabled given the rest
// of the page. Event details are always mandatory. The title is mandatory
// only while no enabled image tile with a non-empty source can stand in
// for it.
func IsMandatory(tileType entity.TileType, tiles []entity.Tile) bool {
	switch tileType {
	case entity.TileEventDetails:
		return true
	case entity.TileTitle:
		for _, t := range tiles {
			if t.Type == entity.TileImage && t.Enabled && t.ImageSrc() != "" {
				return false
			}
		}
		return true
	}
	return false
}

// LayoutTile is one rendered block with its overlays nested inside it.
type LayoutTile struct {
	Tile     entity.Tile   `json:"tile"`
	Overlays []entity.Tile `json:"overlays,omitempty"`
}

// RenderLayout produces the public page order: enabled tiles sorted by
// order index, with overlaid tiles removed from the top level and nested
// under their target. An overlay whose target is disabled or missing is
// dropped rather than orphaned at the top level.
func RenderLayout(tiles []entity.Tile) []LayoutTile {
	enabled := make([]entity.Tile, 0, len(tiles))
	for _, t := range tiles {
		if t.Enabled {
			enabled = append(enabled, t)
		}
	}
	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].OrderIndex < enabled[j].OrderIndex
	})

	overlays := make(map[uuid.UUID][]entity.Tile)
	var top []entity.Tile
	for _, t := range enabled {
		if t.OverlayTargetID != nil {
			overlays[*t.OverlayTargetID] = append(overlays[*t.OverlayTargetID], t)
			continue
		}
		top = append(top, t)
	}

	layout := make([]LayoutTile, 0, len(top))
	for _, t := range top {
		layout = append(layout, LayoutTile{Tile: t, Overlays: overlays[t.ID]})
	}
	return layout
}

// Reorder applies a new ordering. The footer never takes part: it is not
// accepted in the requested order and always lands last. The requested
// order must name every non-footer tile exactly once.
func Reorder(tiles []entity.Tile, orderedIDs []uuid.UUID) ([]entity.Tile, error) {
	byID := make(map[uuid.UUID]entity.Tile, len(tiles))
	var footers []entity.Tile
	movable := 0
	for _, t := range tiles {
		byID[t.ID] = t
		if t.Type == entity.TileFooter {
			footers = append(footers, t)
			continue
		}
		movable++
	}

	if len(orderedIDs) != movable {
		return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "order must name every tile once", nil)
	}

	seen := make(map[uuid.UUID]bool, len(orderedIDs))
	result := make([]entity.Tile, 0, len(tiles))
	for i, id := range orderedIDs {
		t, ok := byID[id]
		if !ok {
			return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "unknown tile in order", nil)
		}
		if t.Type == entity.TileFooter {
			return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "footer position is fixed", nil)
		}
		if seen[id] {
			return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "duplicate tile in order", nil)
		}
		seen[id] = true
		t.OrderIndex = i
		result = append(result, t)
	}

	for i, t := range footers {
		t.OrderIndex = len(orderedIDs) + i
		result = append(result, t)
	}
	return result, nil
}
