package service

import (
	"reflect"
	"testing"

	coreEntity "guestdesk/core/entity"
	"guestdesk/modules/invite/entity"

	"github.com/google/uuid"
)

func tile(typ entity.TileType, order int, enabled bool) entity.Tile {
	return entity.Tile{ID: uuid.New(), Type: typ, OrderIndex: order, Enabled: enabled}
}

func layoutTypes(layout []LayoutTile) []entity.TileType {
	var out []entity.TileType
	for _, lt := range layout {
		out = append(out, lt.Tile.Type)
	}
	return out
}

func TestIsMandatory(t *testing.T) {
	imageWithSrc := tile(entity.TileImage, 0, true)
	imageWithSrc.Settings = coreEntity.JSONB{"src": "https://cdn/x.jpg"}
	imageNoSrc := tile(entity.TileImage, 0, true)
	imageDisabled := tile(entity.TileImage, 0, false)
	imageDisabled.Settings = coreEntity.JSONB{"src": "https://cdn/x.jpg"}

	tests := []struct {
		name     string
		tileType entity.TileType
		tiles    []entity.Tile
		want     bool
	}{
		{"event details always mandatory", entity.TileEventDetails, nil, true},
		{"title mandatory with no image", entity.TileTitle, nil, true},
		{"title optional with enabled image carrying src", entity.TileTitle, []entity.Tile{imageWithSrc}, false},
		{"title stays mandatory when image has no src", entity.TileTitle, []entity.Tile{imageNoSrc}, true},
		{"title stays mandatory when image is disabled", entity.TileTitle, []entity.Tile{imageDisabled}, true},
		{"timer never mandatory", entity.TileTimer, nil, false},
		{"footer never mandatory", entity.TileFooter, nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsMandatory(tc.tileType, tc.tiles); got != tc.want {
				t.Errorf("IsMandatory(%s) = %v, want %v", tc.tileType, got, tc.want)
			}
		})
	}
}

func TestRenderLayoutOrdersAndFiltersDisabled(t *testing.T) {
	details := tile(entity.TileEventDetails, 2, true)
	title := tile(entity.TileTitle, 0, true)
	timer := tile(entity.TileTimer, 1, false)

	layout := RenderLayout([]entity.Tile{details, title, timer})

	want := []entity.TileType{entity.TileTitle, entity.TileEventDetails}
	if got := layoutTypes(layout); !reflect.DeepEqual(got, want) {
		t.Errorf("layout = %v, want %v", got, want)
	}
}

func TestRenderLayoutNestsOverlays(t *testing.T) {
	image := tile(entity.TileImage, 0, true)
	title := tile(entity.TileTitle, 1, true)
	title.OverlayTargetID = &image.ID
	details := tile(entity.TileEventDetails, 2, true)

	layout := RenderLayout([]entity.Tile{image, title, details})

	if got := layoutTypes(layout); !reflect.DeepEqual(got, []entity.TileType{entity.TileImage, entity.TileEventDetails}) {
		t.Fatalf("top level = %v", got)
	}
	if len(layout[0].Overlays) != 1 || layout[0].Overlays[0].ID != title.ID {
		t.Errorf("overlays on image = %v, want the title tile", layout[0].Overlays)
	}
}

func TestRenderLayoutDropsOrphanedOverlay(t *testing.T) {
	image := tile(entity.TileImage, 0, false)
	title := tile(entity.TileTitle, 1, true)
	title.OverlayTargetID = &image.ID

	layout := RenderLayout([]entity.Tile{image, title})

	if len(layout) != 0 {
		t.Errorf("overlay with disabled target should disappear, got %v", layoutTypes(layout))
	}
}

func TestReorderPinsFooterLast(t *testing.T) {
	title := tile(entity.TileTitle, 0, true)
	details := tile(entity.TileEventDetails, 1, true)
	footer := tile(entity.TileFooter, 2, true)
	tiles := []entity.Tile{title, details, footer}

	result, err := Reorder(tiles, []uuid.UUID{details.ID, title.ID})
	if err != nil {
		t.Fatalf("Reorder: %v", err)
	}

	wantIDs := []uuid.UUID{details.ID, title.ID, footer.ID}
	for i, tl := range result {
		if tl.ID != wantIDs[i] {
			t.Fatalf("position %d = %v, want %v", i, tl.ID, wantIDs[i])
		}
		if tl.OrderIndex != i {
			t.Errorf("position %d order index = %d", i, tl.OrderIndex)
		}
	}
}

func TestReorderRejections(t *testing.T) {
	title := tile(entity.TileTitle, 0, true)
	details := tile(entity.TileEventDetails, 1, true)
	footer := tile(entity.TileFooter, 2, true)
	tiles := []entity.Tile{title, details, footer}

	tests := []struct {
		name  string
		order []uuid.UUID
	}{
		{"footer named in order", []uuid.UUID{title.ID, footer.ID}},
		{"duplicate tile", []uuid.UUID{title.ID, title.ID}},
		{"unknown tile", []uuid.UUID{title.ID, uuid.New()}},
		{"incomplete order", []uuid.UUID{title.ID}},
		{"too many entries", []uuid.UUID{title.ID, details.ID, uuid.New()}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Reorder(tiles, tc.order); err == nil {
				t.Error("expected rejection, got nil error")
			}
		})
	}
}
