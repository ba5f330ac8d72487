package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	appErrors "guestdesk/core/errors"
	"guestdesk/core/logger"
	eventEntity "guestdesk/modules/event/entity"
	eventService "guestdesk/modules/event/service"
	guestEntity "guestdesk/modules/guest/entity"
	guestRepo "guestdesk/modules/guest/repository"
	"guestdesk/modules/rsvp/dto"
	"guestdesk/modules/rsvp/entity"
	"guestdesk/modules/rsvp/repository"

	"github.com/google/uuid"
)

type RSVPService struct {
	repo   *repository.RSVPRepository
	guests *guestRepo.GuestRepository
	events *eventService.EventService
}

func NewRSVPService(repo *repository.RSVPRepository, guests *guestRepo.GuestRepository, events *eventService.EventService) *RSVPService {
	return &RSVPService{
		repo:   repo,
		guests: guests,
		events: events,
	}
}

// Submit records a core guest's RSVP, looked up by public code, and echoes
// the stored state back. ONE_TAP_ALL events fan the single answer out to
// every assigned sub-event; PER_SUBEVENT events record the per-sub-event
// answers and derive the guest's overall status from them.
func (s *RSVPService) Submit(ctx context.Context, publicCode string, req *dto.SubmitRSVPRequest) (*dto.SubmitRSVPResponse, error) {
	guest, err := s.guests.GetByPublicCode(ctx, publicCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewAppError(appErrors.ErrNotFound, "invite not found", err)
		}
		return nil, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to load invite", err)
	}
	if guest.Deleted {
		return nil, appErrors.NewAppError(appErrors.ErrNotFound, "invite not found", nil)
	}

	event, err := s.events.GetPublic(ctx, guest.EventID)
	if err != nil {
		return nil, err
	}

	if event.StructureMode == eventEntity.StructureEnvelope && event.RSVPMode == eventEntity.RSVPPerSubEvent {
		return s.submitPerSubEvent(ctx, guest, req)
	}
	return s.submitOneTap(ctx, guest, req)
}

func (s *RSVPService) submitOneTap(ctx context.Context, guest *guestEntity.Guest, req *dto.SubmitRSVPRequest) (*dto.SubmitRSVPResponse, error) {
	answer := guestEntity.RSVPAnswer(req.Answer)
	if !answer.Valid() {
		return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "invalid answer", nil)
	}
	if req.GuestsCount != nil && *req.GuestsCount < 0 {
		return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "invalid guests count", nil)
	}

	if err := s.guests.UpdateRSVP(ctx, guest.ID, answer, req.GuestsCount); err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrUpdateFailed, "failed to record rsvp", err)
	}

	// One answer covers every assigned sub-event.
	for _, subEventID := range guest.SubEventInvites {
		rsvp := &entity.SubEventRSVP{
			GuestID:     guest.ID,
			SubEventID:  subEventID,
			Answer:      answer,
			GuestsCount: req.GuestsCount,
		}
		if err := s.repo.UpsertSubEventRSVP(ctx, rsvp); err != nil {
			logger.Error("RSVPService:SubmitOneTap:SubEventUpsertFailed",
				"guest_id", guest.ID, "sub_event_id", subEventID, "error", err)
		}
	}

	return s.respond(ctx, guest.ID)
}

func (s *RSVPService) submitPerSubEvent(ctx context.Context, guest *guestEntity.Guest, req *dto.SubmitRSVPRequest) (*dto.SubmitRSVPResponse, error) {
	if len(req.SubEventAnswers) == 0 {
		return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "no sub-event answers", nil)
	}

	anyYes := false
	allNo := true
	for _, sa := range req.SubEventAnswers {
		answer := guestEntity.RSVPAnswer(sa.Answer)
		if !answer.Valid() {
			return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "invalid answer", nil)
		}
		if !guest.InvitedTo(sa.SubEventID) {
			return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "not invited to sub-event", nil)
		}
		if answer == guestEntity.RSVPYes {
			anyYes = true
		}
		if answer != guestEntity.RSVPNo {
			allNo = false
		}
	}

	for _, sa := range req.SubEventAnswers {
		rsvp := &entity.SubEventRSVP{
			GuestID:     guest.ID,
			SubEventID:  sa.SubEventID,
			Answer:      guestEntity.RSVPAnswer(sa.Answer),
			GuestsCount: req.GuestsCount,
		}
		if err := s.repo.UpsertSubEventRSVP(ctx, rsvp); err != nil {
			return nil, appErrors.NewAppError(appErrors.ErrUpdateFailed, "failed to record rsvp", err)
		}
	}

	// Overall status: yes if attending anything, no only if declining
	// everything, maybe otherwise.
	overall := guestEntity.RSVPMaybe
	if anyYes {
		overall = guestEntity.RSVPYes
	} else if allNo {
		overall = guestEntity.RSVPNo
	}
	if err := s.guests.UpdateRSVP(ctx, guest.ID, overall, req.GuestsCount); err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrUpdateFailed, "failed to record rsvp", err)
	}

	return s.respond(ctx, guest.ID)
}

// respond re-reads the guest so the response echoes authoritative state
// rather than the caller's view of it.
func (s *RSVPService) respond(ctx context.Context, guestID uuid.UUID) (*dto.SubmitRSVPResponse, error) {
	guest, err := s.guests.GetByID(ctx, guestID)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to reload guest", err)
	}
	answers, err := s.repo.AnswersByGuest(ctx, guestID)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to load answers", err)
	}
	return &dto.SubmitRSVPResponse{Guest: guest, Answers: answers}, nil
}

// SubmitOther records an RSVP from someone not on the guest list.
func (s *RSVPService) SubmitOther(ctx context.Context, eventSlug string, req *dto.SubmitOtherRSVPRequest) (*guestEntity.OtherGuest, error) {
	event, err := s.events.GetBySlug(ctx, eventSlug)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "name is required", nil)
	}
	answer := guestEntity.RSVPAnswer(req.Answer)
	if !answer.Valid() {
		return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "invalid answer", nil)
	}

	source := guestEntity.SourceChannel(strings.ToUpper(req.Source))
	switch source {
	case guestEntity.SourceQR, guestEntity.SourceLink, guestEntity.SourceManual:
	default:
		source = guestEntity.SourceLink
	}

	og := &guestEntity.OtherGuest{
		EventID:     event.ID,
		Name:        name,
		Phone:       strings.TrimSpace(req.Phone),
		Source:      source,
		WillAttend:  &answer,
		GuestsCount: req.GuestsCount,
	}
	if err := s.repo.CreateOtherGuest(ctx, og); err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrCreateFailed, "failed to record rsvp", err)
	}
	return og, nil
}

// ListOther splits an event's self-registered guests into live and removed.
func (s *RSVPService) ListOther(ctx context.Context, hostID, eventID uuid.UUID) (*dto.OtherGuestListResponse, error) {
	if _, err := s.events.GetByID(ctx, hostID, eventID); err != nil {
		return nil, err
	}
	all, err := s.repo.ListOtherGuests(ctx, eventID)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to list guests", err)
	}
	resp := &dto.OtherGuestListResponse{Total: len(all)}
	for _, og := range all {
		if og.Deleted {
			resp.Removed = append(resp.Removed, og)
		} else {
			resp.Guests = append(resp.Guests, og)
		}
	}
	return resp, nil
}

// RemoveOther soft-deletes a self-registered guest.
func (s *RSVPService) RemoveOther(ctx context.Context, hostID, eventID, id uuid.UUID) error {
	return s.setOtherDeleted(ctx, hostID, eventID, id, true)
}

// ReinstateOther clears the soft-delete flag.
func (s *RSVPService) ReinstateOther(ctx context.Context, hostID, eventID, id uuid.UUID) error {
	return s.setOtherDeleted(ctx, hostID, eventID, id, false)
}

func (s *RSVPService) setOtherDeleted(ctx context.Context, hostID, eventID, id uuid.UUID, deleted bool) error {
	if _, err := s.events.GetByID(ctx, hostID, eventID); err != nil {
		return err
	}
	og, err := s.repo.GetOtherGuest(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NewAppError(appErrors.ErrNotFound, "guest not found", err)
		}
		return appErrors.NewAppError(appErrors.ErrGetFailed, "failed to get guest", err)
	}
	if og.EventID != eventID {
		return appErrors.NewAppError(appErrors.ErrNotFound, "guest not found", nil)
	}
	if err := s.repo.SetOtherGuestDeleted(ctx, id, deleted); err != nil {
		return appErrors.NewAppError(appErrors.ErrUpdateFailed, "failed to update guest", err)
	}
	return nil
}

// AnswersForGuest returns a guest's per-sub-event answers for the host UI.
func (s *RSVPService) AnswersForGuest(ctx context.Context, hostID, eventID, guestID uuid.UUID) ([]entity.GuestSubEventAnswer, error) {
	if _, err := s.events.GetByID(ctx, hostID, eventID); err != nil {
		return nil, err
	}
	answers, err := s.repo.AnswersByGuest(ctx, guestID)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to load answers", err)
	}
	return answers, nil
}
