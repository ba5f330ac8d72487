package service

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"
	"time"

	appErrors "guestdesk/core/errors"
	"guestdesk/core/logger"
	eventEntity "guestdesk/modules/event/entity"
	eventService "guestdesk/modules/event/service"
	guestRepo "guestdesk/modules/guest/repository"
	"guestdesk/modules/subevent/dto"
	"guestdesk/modules/subevent/entity"
	"guestdesk/modules/subevent/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type SubEventService struct {
	repo   *repository.SubEventRepository
	guests *guestRepo.GuestRepository
	events *eventService.EventService
}

func NewSubEventService(repo *repository.SubEventRepository, guests *guestRepo.GuestRepository, events *eventService.EventService) *SubEventService {
	return &SubEventService{
		repo:   repo,
		guests: guests,
		events: events,
	}
}

func (s *SubEventService) Create(ctx context.Context, hostID, eventID uuid.UUID, req *dto.CreateSubEventRequest) (*entity.SubEvent, error) {
	event, err := s.events.GetByID(ctx, hostID, eventID)
	if err != nil {
		return nil, err
	}
	if event.StructureMode != eventEntity.StructureEnvelope {
		return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "sub-events require an envelope event", nil)
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "title is required", nil)
	}

	subEvent := &entity.SubEvent{
		EventID:     eventID,
		Title:       title,
		Location:    strings.TrimSpace(req.Location),
		Description: req.Description,
		ImageURL:    req.ImageURL,
		RSVPEnabled: true,
		Public:      true,
	}
	if req.RSVPEnabled != nil {
		subEvent.RSVPEnabled = *req.RSVPEnabled
	}
	if req.Public != nil {
		subEvent.Public = *req.Public
	}
	if subEvent.StartsAt, err = parseOptionalTime(req.StartsAt); err != nil {
		return nil, err
	}
	if subEvent.EndsAt, err = parseOptionalTime(req.EndsAt); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, subEvent); err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrCreateFailed, "failed to create sub-event", err)
	}
	return subEvent, nil
}

func parseOptionalTime(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "invalid timestamp, expected RFC3339", err)
	}
	return &t, nil
}

func (s *SubEventService) List(ctx context.Context, hostID, eventID uuid.UUID) (*dto.SubEventListResponse, error) {
	if _, err := s.events.GetByID(ctx, hostID, eventID); err != nil {
		return nil, err
	}
	subEvents, err := s.repo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to list sub-events", err)
	}
	return &dto.SubEventListResponse{SubEvents: subEvents, Total: len(subEvents)}, nil
}

// ListPublic returns an event's publicly visible sub-events for invite
// rendering.
func (s *SubEventService) ListPublic(ctx context.Context, eventID uuid.UUID) ([]entity.SubEvent, error) {
	subEvents, err := s.repo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to list sub-events", err)
	}
	public := make([]entity.SubEvent, 0, len(subEvents))
	for _, se := range subEvents {
		if se.Public {
			public = append(public, se)
		}
	}
	return public, nil
}

func (s *SubEventService) get(ctx context.Context, hostID, eventID uuid.UUID, id int64) (*entity.SubEvent, error) {
	if _, err := s.events.GetByID(ctx, hostID, eventID); err != nil {
		return nil, err
	}
	subEvent, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewAppError(appErrors.ErrNotFound, "sub-event not found", err)
		}
		return nil, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to get sub-event", err)
	}
	if subEvent.EventID != eventID {
		return nil, appErrors.NewAppError(appErrors.ErrNotFound, "sub-event not found", nil)
	}
	return subEvent, nil
}

func (s *SubEventService) Update(ctx context.Context, hostID, eventID uuid.UUID, id int64, req *dto.UpdateSubEventRequest) (*entity.SubEvent, error) {
	subEvent, err := s.get(ctx, hostID, eventID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "title cannot be empty", nil)
		}
		subEvent.Title = title
	}
	if req.StartsAt != nil {
		if subEvent.StartsAt, err = parseOptionalTime(*req.StartsAt); err != nil {
			return nil, err
		}
	}
	if req.EndsAt != nil {
		if subEvent.EndsAt, err = parseOptionalTime(*req.EndsAt); err != nil {
			return nil, err
		}
	}
	if req.Location != nil {
		subEvent.Location = strings.TrimSpace(*req.Location)
	}
	if req.Description != nil {
		subEvent.Description = *req.Description
	}
	if req.ImageURL != nil {
		subEvent.ImageURL = *req.ImageURL
	}
	if req.RSVPEnabled != nil {
		subEvent.RSVPEnabled = *req.RSVPEnabled
	}
	if req.Public != nil {
		subEvent.Public = *req.Public
	}

	if err := s.repo.Update(ctx, subEvent); err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrUpdateFailed, "failed to update sub-event", err)
	}
	return subEvent, nil
}

func (s *SubEventService) Delete(ctx context.Context, hostID, eventID uuid.UUID, id int64) error {
	if _, err := s.get(ctx, hostID, eventID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.NewAppError(appErrors.ErrDeleteFailed, "failed to delete sub-event", err)
	}
	return nil
}

// BulkAssign adds the given sub-events to each selected guest's assignment
// set. Guests no longer in the event's live list are skipped and reported;
// per-guest save failures do not abort the rest.
func (s *SubEventService) BulkAssign(ctx context.Context, hostID, eventID uuid.UUID, req *dto.BulkAssignRequest) (*dto.BulkAssignResponse, error) {
	return s.bulkMutate(ctx, hostID, eventID, req, true)
}

// BulkDeassign removes the given sub-events from each selected guest.
func (s *SubEventService) BulkDeassign(ctx context.Context, hostID, eventID uuid.UUID, req *dto.BulkAssignRequest) (*dto.BulkAssignResponse, error) {
	return s.bulkMutate(ctx, hostID, eventID, req, false)
}

func (s *SubEventService) bulkMutate(ctx context.Context, hostID, eventID uuid.UUID, req *dto.BulkAssignRequest, assign bool) (*dto.BulkAssignResponse, error) {
	if _, err := s.events.GetByID(ctx, hostID, eventID); err != nil {
		return nil, err
	}
	if len(req.GuestIDs) == 0 || len(req.SubEventIDs) == 0 {
		return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "guest and sub-event selections are required", nil)
	}

	validSubEvents, err := s.repo.IDsByEvent(ctx, eventID)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to validate sub-events", err)
	}
	for _, id := range req.SubEventIDs {
		if !validSubEvents[id] {
			return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "unknown sub-event in selection", nil)
		}
	}

	existing, err := s.guests.ExistingIDs(ctx, eventID, req.GuestIDs)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to validate guests", err)
	}

	resp := &dto.BulkAssignResponse{}
	for _, guestID := range req.GuestIDs {
		if !existing[guestID] {
			resp.Skipped = append(resp.Skipped, guestID)
			continue
		}
		guest, err := s.guests.GetByID(ctx, guestID)
		if err != nil {
			resp.Failed = append(resp.Failed, guestID)
			continue
		}

		set := map[int64]bool{}
		for _, id := range guest.SubEventInvites {
			set[id] = true
		}
		for _, id := range req.SubEventIDs {
			if assign {
				set[id] = true
			} else {
				delete(set, id)
			}
		}
		updated := make(pq.Int64Array, 0, len(set))
		for id := range set {
			updated = append(updated, id)
		}
		sort.Slice(updated, func(i, j int) bool { return updated[i] < updated[j] })

		if err := s.guests.SetSubEventInvites(ctx, guestID, updated); err != nil {
			logger.Error("SubEventService:BulkMutate:SaveFailed", "guest_id", guestID, "error", err)
			resp.Failed = append(resp.Failed, guestID)
			continue
		}
		resp.Assigned++
	}
	return resp, nil
}
