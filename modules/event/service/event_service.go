package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	appErrors "guestdesk/core/errors"
	"guestdesk/core/logger"
	"guestdesk/core/utils"
	"guestdesk/modules/event/dto"
	"guestdesk/modules/event/entity"
	"guestdesk/modules/event/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type EventService struct {
	repo *repository.EventRepository
}

func NewEventService(repo *repository.EventRepository) *EventService {
	return &EventService{repo: repo}
}

func (s *EventService) Create(ctx context.Context, hostID uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "title is required", nil)
	}

	structureMode := entity.StructureMode(req.StructureMode)
	if structureMode == "" {
		structureMode = entity.StructureSimple
	}
	if structureMode != entity.StructureSimple && structureMode != entity.StructureEnvelope {
		return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "invalid structure mode", nil)
	}

	rsvpMode := entity.RSVPMode(req.RSVPMode)
	if rsvpMode == "" {
		rsvpMode = entity.RSVPOneTapAll
	}
	if rsvpMode != entity.RSVPPerSubEvent && rsvpMode != entity.RSVPOneTapAll {
		return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "invalid rsvp mode", nil)
	}

	event := &entity.Event{
		HostID:        hostID,
		Title:         title,
		Slug:          "",
		Location:      strings.TrimSpace(req.Location),
		Description:   req.Description,
		StructureMode: structureMode,
		RSVPMode:      rsvpMode,
		CustomFields:  entity.CustomFieldsMeta{},
	}

	if req.StartsAt != "" {
		t, err := time.Parse(time.RFC3339, req.StartsAt)
		if err != nil {
			return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "invalid starts_at, expected RFC3339", err)
		}
		event.StartsAt = &t
	}

	eventSlug, err := s.uniqueSlug(ctx, title)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrCreateFailed, "failed to generate slug", err)
	}
	event.Slug = eventSlug

	if err := s.repo.Create(ctx, event); err != nil {
		logger.Error("EventService:Create:RepoError", "error", err)
		return nil, appErrors.NewAppError(appErrors.ErrCreateFailed, "failed to create event", err)
	}

	resp := dto.ToEventResponse(event)
	return &resp, nil
}

// uniqueSlug slugifies the title and appends a short suffix on collision.
func (s *EventService) uniqueSlug(ctx context.Context, title string) (string, error) {
	base := slug.Make(title)
	if base == "" {
		base = "event"
	}
	exists, err := s.repo.SlugExists(ctx, base)
	if err != nil {
		return "", err
	}
	if !exists {
		return base, nil
	}
	return fmt.Sprintf("%s-%s", base, strings.ToLower(utils.GenerateID())), nil
}

func (s *EventService) GetByID(ctx context.Context, hostID, id uuid.UUID) (*entity.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewAppError(appErrors.ErrNotFound, "event not found", err)
		}
		return nil, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to get event", err)
	}
	if event.HostID != hostID {
		// Not-found rather than forbidden: do not leak event existence.
		return nil, appErrors.NewAppError(appErrors.ErrNotFound, "event not found", nil)
	}
	return event, nil
}

// GetPublic loads an event without an ownership check. Used by the public
// invite and RSVP surfaces, which are scoped by a guest's public code.
func (s *EventService) GetPublic(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewAppError(appErrors.ErrNotFound, "event not found", err)
		}
		return nil, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to get event", err)
	}
	return event, nil
}

func (s *EventService) GetBySlug(ctx context.Context, eventSlug string) (*entity.Event, error) {
	event, err := s.repo.GetBySlug(ctx, eventSlug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewAppError(appErrors.ErrNotFound, "event not found", err)
		}
		return nil, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to get event", err)
	}
	return event, nil
}

func (s *EventService) List(ctx context.Context, hostID uuid.UUID) (*dto.EventListResponse, error) {
	events, err := s.repo.ListByHost(ctx, hostID)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to list events", err)
	}
	resp := &dto.EventListResponse{Events: make([]dto.EventResponse, 0, len(events)), Total: len(events)}
	for i := range events {
		resp.Events = append(resp.Events, dto.ToEventResponse(&events[i]))
	}
	return resp, nil
}

func (s *EventService) Update(ctx context.Context, hostID, id uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, error) {
	event, err := s.GetByID(ctx, hostID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "title cannot be empty", nil)
		}
		event.Title = title
	}
	if req.StartsAt != nil {
		if *req.StartsAt == "" {
			event.StartsAt = nil
		} else {
			t, err := time.Parse(time.RFC3339, *req.StartsAt)
			if err != nil {
				return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "invalid starts_at, expected RFC3339", err)
			}
			event.StartsAt = &t
		}
	}
	if req.Location != nil {
		event.Location = strings.TrimSpace(*req.Location)
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.CoverImageURL != nil {
		event.CoverImageURL = *req.CoverImageURL
	}
	if req.StructureMode != nil {
		mode := entity.StructureMode(*req.StructureMode)
		if mode != entity.StructureSimple && mode != entity.StructureEnvelope {
			return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "invalid structure mode", nil)
		}
		event.StructureMode = mode
	}
	if req.RSVPMode != nil {
		mode := entity.RSVPMode(*req.RSVPMode)
		if mode != entity.RSVPPerSubEvent && mode != entity.RSVPOneTapAll {
			return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "invalid rsvp mode", nil)
		}
		event.RSVPMode = mode
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrUpdateFailed, "failed to update event", err)
	}
	resp := dto.ToEventResponse(event)
	return &resp, nil
}

func (s *EventService) Delete(ctx context.Context, hostID, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, hostID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.NewAppError(appErrors.ErrDeleteFailed, "failed to delete event", err)
	}
	return nil
}

// UpsertCustomField adds or updates a custom-field definition. Keys are
// normalized to a slug-like lowercase form so cf:<key> filter sources stay
// stable.
func (s *EventService) UpsertCustomField(ctx context.Context, hostID, id uuid.UUID, req *dto.UpsertCustomFieldRequest) (*entity.Event, error) {
	event, err := s.GetByID(ctx, hostID, id)
	if err != nil {
		return nil, err
	}

	key := normalizeFieldKey(req.Key)
	if key == "" {
		return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "field key is required", nil)
	}
	label := strings.TrimSpace(req.Label)
	if label == "" {
		label = req.Key
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	} else if existing, ok := event.CustomFields[key]; ok {
		active = existing.Active
	}

	if event.CustomFields == nil {
		event.CustomFields = entity.CustomFieldsMeta{}
	}
	event.CustomFields[key] = entity.CustomFieldMeta{Label: label, Active: active}

	if err := s.repo.UpdateCustomFields(ctx, id, event.CustomFields); err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrUpdateFailed, "failed to update custom fields", err)
	}
	return event, nil
}

// RenameCustomField changes a field's display label. The key is immutable;
// guest values keep referencing it.
func (s *EventService) RenameCustomField(ctx context.Context, hostID, id uuid.UUID, req *dto.RenameCustomFieldRequest) (*entity.Event, error) {
	event, err := s.GetByID(ctx, hostID, id)
	if err != nil {
		return nil, err
	}

	key := normalizeFieldKey(req.Key)
	meta, ok := event.CustomFields[key]
	if !ok {
		return nil, appErrors.NewAppError(appErrors.ErrNotFound, "custom field not found", nil)
	}
	label := strings.TrimSpace(req.Label)
	if label == "" {
		return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "label is required", nil)
	}
	meta.Label = label
	event.CustomFields[key] = meta

	if err := s.repo.UpdateCustomFields(ctx, id, event.CustomFields); err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrUpdateFailed, "failed to rename custom field", err)
	}
	return event, nil
}

func normalizeFieldKey(key string) string {
	key = strings.TrimSpace(strings.ToLower(key))
	return strings.ReplaceAll(key, " ", "_")
}
