package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	appErrors "guestdesk/core/errors"
	"guestdesk/core/storage"
	"guestdesk/core/utils"
	eventService "guestdesk/modules/event/service"
	guestRepo "guestdesk/modules/guest/repository"
	"guestdesk/modules/invite/entity"
	"guestdesk/modules/invite/repository"

	"github.com/google/uuid"
)

type InviteService struct {
	repo     *repository.TileRepository
	guests   *guestRepo.GuestRepository
	events   *eventService.EventService
	uploader *storage.Uploader
}

func NewInviteService(repo *repository.TileRepository, guests *guestRepo.GuestRepository, events *eventService.EventService, uploader *storage.Uploader) *InviteService {
	return &InviteService{
		repo:     repo,
		guests:   guests,
		events:   events,
		uploader: uploader,
	}
}

// List returns the full tile set for the editor, disabled tiles included.
func (s *InviteService) List(ctx context.Context, hostID, eventID uuid.UUID) ([]entity.Tile, error) {
	if _, err := s.events.GetByID(ctx, hostID, eventID); err != nil {
		return nil, err
	}
	tiles, err := s.repo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to list tiles", err)
	}
	return tiles, nil
}

func (s *InviteService) Create(ctx context.Context, hostID, eventID uuid.UUID, tileType entity.TileType, settings map[string]interface{}, overlayTargetID *uuid.UUID) (*entity.Tile, error) {
	if _, err := s.events.GetByID(ctx, hostID, eventID); err != nil {
		return nil, err
	}
	if !tileType.Valid() {
		return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "unknown tile type", nil)
	}

	tiles, err := s.repo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to list tiles", err)
	}

	if overlayTargetID != nil {
		if err := s.validateOverlay(tileType, *overlayTargetID, eventID, tiles); err != nil {
			return nil, err
		}
	}

	// New tiles slot in ahead of the footer, which stays last.
	orderIndex := 0
	var footers []entity.Tile
	for _, t := range tiles {
		if t.Type == entity.TileFooter {
			footers = append(footers, t)
			continue
		}
		if t.OrderIndex >= orderIndex {
			orderIndex = t.OrderIndex + 1
		}
	}

	tile := &entity.Tile{
		EventID:         eventID,
		Type:            tileType,
		Enabled:         true,
		OrderIndex:      orderIndex,
		Settings:        settings,
		OverlayTargetID: overlayTargetID,
	}
	if err := s.repo.Create(ctx, tile); err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrCreateFailed, "failed to create tile", err)
	}

	for i := range footers {
		footers[i].OrderIndex = orderIndex + 1 + i
	}
	if len(footers) > 0 {
		if err := s.repo.UpdateOrder(ctx, footers); err != nil {
			return nil, appErrors.NewAppError(appErrors.ErrUpdateFailed, "failed to pin footer", err)
		}
	}
	return tile, nil
}

func (s *InviteService) validateOverlay(tileType entity.TileType, targetID, eventID uuid.UUID, tiles []entity.Tile) error {
	if tileType != entity.TileTitle {
		return appErrors.NewAppError(appErrors.ErrInvalidInput, "only title tiles can overlay", nil)
	}
	for _, t := range tiles {
		if t.ID != targetID {
			continue
		}
		if t.EventID != eventID || t.Type != entity.TileImage {
			break
		}
		return nil
	}
	return appErrors.NewAppError(appErrors.ErrInvalidInput, "overlay target must be an image tile of the same event", nil)
}

func (s *InviteService) get(ctx context.Context, hostID, eventID, id uuid.UUID) (*entity.Tile, error) {
	if _, err := s.events.GetByID(ctx, hostID, eventID); err != nil {
		return nil, err
	}
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewAppError(appErrors.ErrNotFound, "tile not found", err)
		}
		return nil, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to get tile", err)
	}
	if t.EventID != eventID {
		return nil, appErrors.NewAppError(appErrors.ErrNotFound, "tile not found", nil)
	}
	return t, nil
}

func (s *InviteService) UpdateSettings(ctx context.Context, hostID, eventID, id uuid.UUID, settings map[string]interface{}, overlayTargetID *uuid.UUID, clearOverlay bool) (*entity.Tile, error) {
	tile, err := s.get(ctx, hostID, eventID, id)
	if err != nil {
		return nil, err
	}

	if settings != nil {
		tile.Settings = settings
	}
	if clearOverlay {
		tile.OverlayTargetID = nil
	} else if overlayTargetID != nil {
		tiles, err := s.repo.ListByEvent(ctx, eventID)
		if err != nil {
			return nil, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to list tiles", err)
		}
		if err := s.validateOverlay(tile.Type, *overlayTargetID, eventID, tiles); err != nil {
			return nil, err
		}
		tile.OverlayTargetID = overlayTargetID
	}

	if err := s.repo.Update(ctx, tile); err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrUpdateFailed, "failed to update tile", err)
	}
	return tile, nil
}

// Toggle flips a tile's enabled flag. Disabling a mandatory tile is
// rejected rather than silently ignored.
func (s *InviteService) Toggle(ctx context.Context, hostID, eventID, id uuid.UUID, enabled bool) (*entity.Tile, error) {
	tile, err := s.get(ctx, hostID, eventID, id)
	if err != nil {
		return nil, err
	}
	if tile.Enabled == enabled {
		return tile, nil
	}

	if !enabled {
		tiles, err := s.repo.ListByEvent(ctx, eventID)
		if err != nil {
			return nil, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to list tiles", err)
		}
		if IsMandatory(tile.Type, tiles) {
			return nil, appErrors.NewAppError(appErrors.ErrInvalidInput,
				fmt.Sprintf("%s tile cannot be disabled", tile.Type), nil)
		}
	}

	tile.Enabled = enabled
	if err := s.repo.Update(ctx, tile); err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrUpdateFailed, "failed to update tile", err)
	}
	return tile, nil
}

// Reorder persists a new tile order with the footer pinned last.
func (s *InviteService) Reorder(ctx context.Context, hostID, eventID uuid.UUID, tileIDs []uuid.UUID) ([]entity.Tile, error) {
	if _, err := s.events.GetByID(ctx, hostID, eventID); err != nil {
		return nil, err
	}
	tiles, err := s.repo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to list tiles", err)
	}

	reordered, err := Reorder(tiles, tileIDs)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateOrder(ctx, reordered); err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrUpdateFailed, "failed to reorder tiles", err)
	}
	return reordered, nil
}

// Layout renders the public invite page for a guest's public code.
func (s *InviteService) Layout(ctx context.Context, publicCode string) (string, []LayoutTile, error) {
	guest, err := s.guests.GetByPublicCode(ctx, publicCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, appErrors.NewAppError(appErrors.ErrNotFound, "invite not found", err)
		}
		return "", nil, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to load invite", err)
	}
	if guest.Deleted {
		return "", nil, appErrors.NewAppError(appErrors.ErrNotFound, "invite not found", nil)
	}
	event, err := s.events.GetPublic(ctx, guest.EventID)
	if err != nil {
		return "", nil, err
	}
	tiles, err := s.repo.ListByEvent(ctx, guest.EventID)
	if err != nil {
		return "", nil, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to list tiles", err)
	}
	return event.Title, RenderLayout(tiles), nil
}

// UploadImage stores a tile image and returns its public URL.
func (s *InviteService) UploadImage(ctx context.Context, hostID, eventID uuid.UUID, filename, contentType string, body io.Reader) (string, error) {
	if _, err := s.events.GetByID(ctx, hostID, eventID); err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
	default:
		return "", appErrors.NewAppError(appErrors.ErrInvalidInput, "unsupported image type", nil)
	}

	key := fmt.Sprintf("%s%s", utils.GenerateID(), ext)
	url, err := s.uploader.Upload(ctx, "tiles/"+eventID.String(), key, contentType, body)
	if err != nil {
		return "", appErrors.NewAppError(appErrors.ErrCreateFailed, "failed to upload image", err)
	}
	return url, nil
}
