package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"guestdesk/core/cache"
	coreEntity "guestdesk/core/entity"
	appErrors "guestdesk/core/errors"
	"guestdesk/core/logger"
	"guestdesk/core/tasks"
	"guestdesk/core/utils"
	eventEntity "guestdesk/modules/event/entity"
	eventService "guestdesk/modules/event/service"
	"guestdesk/modules/guest/dto"
	"guestdesk/modules/guest/entity"
	"guestdesk/modules/guest/repository"
	notifEntity "guestdesk/modules/notification/entity"
	rsvpRepo "guestdesk/modules/rsvp/repository"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"guestdesk/core/constants"
)

// Notifier pushes a console notification to a host. Implemented by the
// notification service; nil disables notifications.
type Notifier interface {
	Notify(ctx context.Context, hostID uuid.UUID, title, message, kind string, data map[string]interface{})
}

type GuestService struct {
	repo     *repository.GuestRepository
	rsvpRepo *rsvpRepo.RSVPRepository
	events   *eventService.EventService
	cache    *cache.Cache
	notifier Notifier
}

func NewGuestService(repo *repository.GuestRepository, rsvpRepo *rsvpRepo.RSVPRepository, events *eventService.EventService, c *cache.Cache, notifier Notifier) *GuestService {
	return &GuestService{
		repo:     repo,
		rsvpRepo: rsvpRepo,
		events:   events,
		cache:    c,
		notifier: notifier,
	}
}

func (s *GuestService) notify(ctx context.Context, hostID uuid.UUID, title, message, kind string, data map[string]interface{}) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(ctx, hostID, title, message, kind, data)
}

// List hydrates the view state from the request's query parameters and the
// host's persisted columns, projects the guest collection through it, and
// echoes the canonical query string back so the page URL can be kept in
// sync.
func (s *GuestService) List(ctx context.Context, hostID, eventID uuid.UUID, query url.Values) (*dto.GuestListResponse, error) {
	event, err := s.events.GetByID(ctx, hostID, eventID)
	if err != nil {
		return nil, err
	}

	guests, err := s.repo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to list guests", err)
	}

	attending, err := s.rsvpRepo.AttendingCountsByEvent(ctx, eventID)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to load rsvp counts", err)
	}

	state := DecodeViewState(query)
	if columns := s.cache.GetGuestColumns(ctx, eventID.String(), hostID.String()); columns != nil {
		if err := state.SetColumns(columns); err != nil {
			// Oversized persisted sets are ignored, not truncated.
			logger.Warn("GuestService:List:PersistedColumnsRejected", "event_id", eventID)
		}
	}

	// A category value referencing an inactive custom field is hidden from
	// filtering entirely.
	if key := state.CustomFieldKey(); key != "" && !isActiveField(event, key) {
		state.CategorySource = CategoryRelSource
		state.CategoryValue = FilterAll
	}

	projection := Project(guests, &state, attending)
	hideInactiveCustomFields(projection.Visible, event)
	hideInactiveCustomFields(projection.Removed, event)

	return &dto.GuestListResponse{
		Guests:         projection.Visible,
		Removed:        projection.Removed,
		Total:          len(guests),
		VisibleTotal:   len(projection.Visible),
		Columns:        state.Columns,
		CategoryValues: DistinctCategoryValues(projection.Live, state.CategorySource),
		Query:          EncodeViewState(&state).Encode(),
	}, nil
}

func isActiveField(event *eventEntity.Event, key string) bool {
	meta, ok := event.CustomFields[key]
	return ok && meta.Active
}

// hideInactiveCustomFields strips values whose keys are absent or inactive
// in the event metadata from the response. Stored values are untouched.
func hideInactiveCustomFields(guests []entity.Guest, event *eventEntity.Event) {
	for i := range guests {
		if len(guests[i].CustomFields) == 0 {
			continue
		}
		visible := map[string]string{}
		for k, v := range guests[i].CustomFields {
			if isActiveField(event, k) {
				visible[k] = v
			}
		}
		guests[i].CustomFields = visible
	}
}

// Create adds a guest by manual entry.
func (s *GuestService) Create(ctx context.Context, hostID, eventID uuid.UUID, req *dto.CreateGuestRequest) (*entity.Guest, error) {
	if _, err := s.events.GetByID(ctx, hostID, eventID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "name is required", nil)
	}

	guest := &entity.Guest{
		EventID:          eventID,
		PublicCode:       utils.GenerateID(),
		Name:             name,
		PhoneCountryCode: strings.TrimSpace(req.PhoneCountryCode),
		PhoneNumber:      strings.TrimSpace(req.PhoneNumber),
		PhoneCountry:     strings.ToUpper(strings.TrimSpace(req.PhoneCountry)),
		Email:            strings.TrimSpace(req.Email),
		Relationship:     strings.TrimSpace(req.Relationship),
		Notes:            req.Notes,
		CustomFields:     coreEntity.StringMap(req.CustomFields),
	}
	for _, id := range req.SubEventIDs {
		guest.SubEventInvites = append(guest.SubEventInvites, id)
	}

	if err := s.repo.Create(ctx, guest); err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrCreateFailed, "failed to create guest", err)
	}
	return guest, nil
}

// Get returns one guest of the host's event.
func (s *GuestService) Get(ctx context.Context, hostID, eventID, guestID uuid.UUID) (*entity.Guest, error) {
	if _, err := s.events.GetByID(ctx, hostID, eventID); err != nil {
		return nil, err
	}
	guest, err := s.repo.GetByID(ctx, guestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewAppError(appErrors.ErrNotFound, "guest not found", err)
		}
		return nil, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to get guest", err)
	}
	if guest.EventID != eventID {
		return nil, appErrors.NewAppError(appErrors.ErrNotFound, "guest not found", nil)
	}
	return guest, nil
}

// Update edits host-editable guest fields and echoes the stored state.
func (s *GuestService) Update(ctx context.Context, hostID, eventID, guestID uuid.UUID, req *dto.UpdateGuestRequest) (*entity.Guest, error) {
	guest, err := s.Get(ctx, hostID, eventID, guestID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "name cannot be empty", nil)
		}
		guest.Name = name
	}
	if req.PhoneCountryCode != nil {
		guest.PhoneCountryCode = strings.TrimSpace(*req.PhoneCountryCode)
	}
	if req.PhoneNumber != nil {
		guest.PhoneNumber = strings.TrimSpace(*req.PhoneNumber)
	}
	if req.PhoneCountry != nil {
		guest.PhoneCountry = strings.ToUpper(strings.TrimSpace(*req.PhoneCountry))
	}
	if req.Email != nil {
		guest.Email = strings.TrimSpace(*req.Email)
	}
	if req.Relationship != nil {
		guest.Relationship = strings.TrimSpace(*req.Relationship)
	}
	if req.Notes != nil {
		guest.Notes = *req.Notes
	}
	if req.CustomFields != nil {
		guest.CustomFields = coreEntity.StringMap(*req.CustomFields)
	}
	if req.RSVPGuestsCount != nil {
		guest.RSVPGuestsCount = req.RSVPGuestsCount
	}

	if err := s.repo.Update(ctx, guest); err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrUpdateFailed, "failed to update guest", err)
	}
	return guest, nil
}

// Remove soft-deletes a guest; the record stays and can be reinstated.
func (s *GuestService) Remove(ctx context.Context, hostID, eventID, guestID uuid.UUID) error {
	if _, err := s.Get(ctx, hostID, eventID, guestID); err != nil {
		return err
	}
	if err := s.repo.SetDeleted(ctx, guestID, true); err != nil {
		return appErrors.NewAppError(appErrors.ErrDeleteFailed, "failed to remove guest", err)
	}
	return nil
}

// Reinstate clears a guest's soft-delete flag.
func (s *GuestService) Reinstate(ctx context.Context, hostID, eventID, guestID uuid.UUID) error {
	if _, err := s.Get(ctx, hostID, eventID, guestID); err != nil {
		return err
	}
	if err := s.repo.SetDeleted(ctx, guestID, false); err != nil {
		return appErrors.NewAppError(appErrors.ErrUpdateFailed, "failed to reinstate guest", err)
	}
	return nil
}

// SetInvitationSent toggles the invitation-sent flag manually.
func (s *GuestService) SetInvitationSent(ctx context.Context, hostID, eventID, guestID uuid.UUID, sent bool) (*entity.Guest, error) {
	if _, err := s.Get(ctx, hostID, eventID, guestID); err != nil {
		return nil, err
	}
	if err := s.repo.SetInvitationSent(ctx, guestID, sent); err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrUpdateFailed, "failed to update invitation flag", err)
	}
	return s.Get(ctx, hostID, eventID, guestID)
}

// SetColumns persists the host's visible middle columns for this event.
func (s *GuestService) SetColumns(ctx context.Context, hostID, eventID uuid.UUID, columns []string) error {
	if _, err := s.events.GetByID(ctx, hostID, eventID); err != nil {
		return err
	}
	if len(columns) > constants.MaxVisibleColumns {
		return appErrors.NewAppError(appErrors.ErrInvalidInput, "column limit reached", nil)
	}
	if err := s.cache.SetGuestColumns(ctx, eventID.String(), hostID.String(), columns); err != nil {
		return appErrors.NewAppError(appErrors.ErrUpdateFailed, "failed to persist columns", err)
	}
	return nil
}

// BulkDispatch queues an invite message per valid guest. Stale selections
// (IDs no longer in the event's live list) are reported as skipped.
func (s *GuestService) BulkDispatch(ctx context.Context, hostID, eventID uuid.UUID, req *dto.BulkDispatchRequest) (*dto.BulkDispatchResponse, error) {
	if _, err := s.events.GetByID(ctx, hostID, eventID); err != nil {
		return nil, err
	}
	if len(req.GuestIDs) == 0 {
		return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "no guests selected", nil)
	}

	existing, err := s.repo.ExistingIDs(ctx, eventID, req.GuestIDs)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to validate selection", err)
	}

	resp := &dto.BulkDispatchResponse{}
	for _, guestID := range req.GuestIDs {
		if !existing[guestID] {
			resp.Skipped = append(resp.Skipped, guestID)
			continue
		}
		task, err := tasks.NewInviteDispatchTask(tasks.InviteDispatchPayload{
			GuestID:    guestID,
			TemplateID: req.TemplateID,
		})
		if err != nil {
			logger.Error("GuestService:BulkDispatch:TaskError", "guest_id", guestID, "error", err)
			continue
		}
		tasks.Enqueue(task, asynq.Queue(constants.QueueMessages))
		resp.Queued++
	}

	if resp.Queued > 0 {
		s.notify(ctx, hostID, "Invitations queued",
			fmt.Sprintf("%d invitation(s) queued for sending", resp.Queued),
			notifEntity.TypeDispatchCompleted,
			map[string]interface{}{"event_id": eventID.String(), "queued": resp.Queued, "skipped": len(resp.Skipped)})
	}
	return resp, nil
}
