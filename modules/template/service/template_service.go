package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"guestdesk/core/config"
	appErrors "guestdesk/core/errors"
	"guestdesk/core/logger"
	"guestdesk/core/tasks"
	eventService "guestdesk/modules/event/service"
	guestEntity "guestdesk/modules/guest/entity"
	guestRepo "guestdesk/modules/guest/repository"
	"guestdesk/modules/template/dto"
	"guestdesk/modules/template/entity"
	"guestdesk/modules/template/repository"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

type TemplateService struct {
	repo      *repository.TemplateRepository
	guests    *guestRepo.GuestRepository
	events    *eventService.EventService
	messenger Messenger
}

func NewTemplateService(repo *repository.TemplateRepository, guests *guestRepo.GuestRepository, events *eventService.EventService, messenger Messenger) *TemplateService {
	if messenger == nil {
		messenger = LogMessenger{}
	}
	return &TemplateService{
		repo:      repo,
		guests:    guests,
		events:    events,
		messenger: messenger,
	}
}

func (s *TemplateService) Create(ctx context.Context, hostID, eventID uuid.UUID, req *dto.CreateTemplateRequest) (*entity.Template, error) {
	if _, err := s.events.GetByID(ctx, hostID, eventID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "name is required", nil)
	}
	if strings.TrimSpace(req.Body) == "" {
		return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "body is required", nil)
	}

	if req.IsDefault {
		if err := s.repo.ClearDefault(ctx, eventID); err != nil {
			return nil, appErrors.NewAppError(appErrors.ErrUpdateFailed, "failed to update default", err)
		}
	}

	t := &entity.Template{
		EventID:   eventID,
		Name:      name,
		Body:      req.Body,
		IsDefault: req.IsDefault,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrCreateFailed, "failed to create template", err)
	}
	return t, nil
}

func (s *TemplateService) List(ctx context.Context, hostID, eventID uuid.UUID) (*dto.TemplateListResponse, error) {
	if _, err := s.events.GetByID(ctx, hostID, eventID); err != nil {
		return nil, err
	}
	templates, err := s.repo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to list templates", err)
	}
	return &dto.TemplateListResponse{Templates: templates, Total: len(templates)}, nil
}

func (s *TemplateService) get(ctx context.Context, hostID, eventID, id uuid.UUID) (*entity.Template, error) {
	if _, err := s.events.GetByID(ctx, hostID, eventID); err != nil {
		return nil, err
	}
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewAppError(appErrors.ErrNotFound, "template not found", err)
		}
		return nil, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to get template", err)
	}
	if t.EventID != eventID {
		return nil, appErrors.NewAppError(appErrors.ErrNotFound, "template not found", nil)
	}
	return t, nil
}

func (s *TemplateService) Get(ctx context.Context, hostID, eventID, id uuid.UUID) (*entity.Template, error) {
	return s.get(ctx, hostID, eventID, id)
}

func (s *TemplateService) Update(ctx context.Context, hostID, eventID, id uuid.UUID, req *dto.UpdateTemplateRequest) (*entity.Template, error) {
	t, err := s.get(ctx, hostID, eventID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "name is required", nil)
		}
		t.Name = name
	}
	if req.Body != nil {
		if strings.TrimSpace(*req.Body) == "" {
			return nil, appErrors.NewAppError(appErrors.ErrInvalidInput, "body is required", nil)
		}
		t.Body = *req.Body
	}
	if req.IsDefault != nil {
		if *req.IsDefault && !t.IsDefault {
			if err := s.repo.ClearDefault(ctx, eventID); err != nil {
				return nil, appErrors.NewAppError(appErrors.ErrUpdateFailed, "failed to update default", err)
			}
		}
		t.IsDefault = *req.IsDefault
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrUpdateFailed, "failed to update template", err)
	}
	return t, nil
}

func (s *TemplateService) Delete(ctx context.Context, hostID, eventID, id uuid.UUID) error {
	if _, err := s.get(ctx, hostID, eventID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.NewAppError(appErrors.ErrDeleteFailed, "failed to delete template", err)
	}
	return nil
}

// Preview renders a template against a real guest and reports usage
// asynchronously so the counter never blocks the preview.
func (s *TemplateService) Preview(ctx context.Context, hostID, eventID, id uuid.UUID, req *dto.PreviewRequest) (*dto.PreviewResponse, error) {
	t, err := s.get(ctx, hostID, eventID, id)
	if err != nil {
		return nil, err
	}
	guest, err := s.guests.GetByID(ctx, req.GuestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewAppError(appErrors.ErrNotFound, "guest not found", err)
		}
		return nil, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to get guest", err)
	}
	if guest.EventID != eventID {
		return nil, appErrors.NewAppError(appErrors.ErrNotFound, "guest not found", nil)
	}
	event, err := s.events.GetByID(ctx, hostID, eventID)
	if err != nil {
		return nil, err
	}

	body := s.render(t, guest, event.Title)

	if task, err := tasks.NewTemplateUsageTask(tasks.TemplateUsagePayload{TemplateID: t.ID}); err == nil {
		tasks.Enqueue(task)
	}

	return &dto.PreviewResponse{
		Body:        body,
		WhatsAppURL: WhatsAppLink(guest.PhoneCountryCode, guest.PhoneNumber, body),
	}, nil
}

func (s *TemplateService) render(t *entity.Template, guest *guestEntity.Guest, eventTitle string) string {
	base := strings.TrimRight(config.Get().BaseURL, "/")
	inviteLink := base + "/p/invite/" + guest.PublicCode
	rsvpLink := base + "/p/rsvp/" + guest.PublicCode
	return Render(t.Body, guest, eventTitle, inviteLink, rsvpLink)
}

// HandleInviteDispatch is the asynq worker for queued invitations. It
// renders the chosen template (falling back to the event default), hands
// the message to the messenger, and marks the invitation sent.
func (s *TemplateService) HandleInviteDispatch(ctx context.Context, task *asynq.Task) error {
	var p tasks.InviteDispatchPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return err
	}

	guest, err := s.guests.GetByID(ctx, p.GuestID)
	if err != nil {
		return err
	}
	if guest.Deleted {
		logger.Warn("TemplateService:HandleInviteDispatch:GuestRemoved", "guest_id", p.GuestID)
		return nil
	}
	event, err := s.events.GetPublic(ctx, guest.EventID)
	if err != nil {
		return err
	}

	var t *entity.Template
	if p.TemplateID != nil {
		t, err = s.repo.GetByID(ctx, *p.TemplateID)
	} else {
		t, err = s.repo.GetDefault(ctx, guest.EventID)
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// No template configured yet. Leave the guest unsent so the
			// host can retry after creating one.
			logger.Warn("TemplateService:HandleInviteDispatch:NoTemplate", "guest_id", p.GuestID)
			return nil
		}
		return err
	}

	body := s.render(t, guest, event.Title)
	if err := s.messenger.Send(ctx, NormalizePhone(guest.PhoneCountryCode, guest.PhoneNumber), body); err != nil {
		return err
	}

	if err := s.guests.SetInvitationSent(ctx, guest.ID, true); err != nil {
		return err
	}
	if err := s.repo.IncrementUsage(ctx, t.ID); err != nil {
		logger.Warn("TemplateService:HandleInviteDispatch:UsageFailed", "template_id", t.ID, "error", err)
	}
	return nil
}

// HandleTemplateUsage bumps the usage counter, best effort.
func (s *TemplateService) HandleTemplateUsage(ctx context.Context, task *asynq.Task) error {
	var p tasks.TemplateUsagePayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return err
	}
	return s.repo.IncrementUsage(ctx, p.TemplateID)
}
