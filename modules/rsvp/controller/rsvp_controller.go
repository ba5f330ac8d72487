package controller

import (
	"guestdesk/core/controller"
	"guestdesk/core/errors"
	"guestdesk/core/logger"
	"guestdesk/modules/rsvp/dto"
	"guestdesk/modules/rsvp/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type RSVPController struct {
	controller.BaseController
	service *service.RSVPService
}

func NewRSVPController(service *service.RSVPService) *RSVPController {
	return &RSVPController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

// Submit handles the public RSVP form for a listed guest.
func (c *RSVPController) Submit(ctx echo.Context) error {
	code := ctx.Param("code")
	if code == "" {
		return c.BadRequest(errors.ErrInvalidRequestData, "Missing invite code", nil)
	}

	var req dto.SubmitRSVPRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	resp, err := c.service.Submit(ctx.Request().Context(), code, &req)
	if err != nil {
		logger.Warn("RSVPController:Submit:ServiceError", "code", code, "error", err)
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, resp, "RSVP recorded")
}

// SubmitOther handles an RSVP from someone without an invite code.
func (c *RSVPController) SubmitOther(ctx echo.Context) error {
	eventSlug := ctx.Param("slug")
	if eventSlug == "" {
		return c.BadRequest(errors.ErrInvalidRequestData, "Missing event slug", nil)
	}

	var req dto.SubmitOtherRSVPRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	og, err := c.service.SubmitOther(ctx.Request().Context(), eventSlug, &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.CreatedResponse(ctx, og, "RSVP recorded")
}

func (c *RSVPController) parseIDs(ctx echo.Context) (hostID, eventID uuid.UUID, err error) {
	hostID, err = controller.HostIDFromContext(ctx)
	if err != nil {
		return
	}
	eventID, err = uuid.Parse(ctx.Param("eventID"))
	if err != nil {
		err = errors.NewAppError(errors.ErrInvalidRequestData, "invalid event ID", err)
	}
	return
}

// ListOther returns the self-registered guests for an event.
func (c *RSVPController) ListOther(ctx echo.Context) error {
	hostID, eventID, err := c.parseIDs(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	resp, err := c.service.ListOther(ctx.Request().Context(), hostID, eventID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, resp, "Guests retrieved")
}

// RemoveOther soft-deletes a self-registered guest.
func (c *RSVPController) RemoveOther(ctx echo.Context) error {
	hostID, eventID, err := c.parseIDs(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	id, err := uuid.Parse(ctx.Param("guestID"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid guest ID", nil)
	}

	if err := c.service.RemoveOther(ctx.Request().Context(), hostID, eventID, id); err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, nil, "Guest removed")
}

// ReinstateOther restores a removed self-registered guest.
func (c *RSVPController) ReinstateOther(ctx echo.Context) error {
	hostID, eventID, err := c.parseIDs(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	id, err := uuid.Parse(ctx.Param("guestID"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid guest ID", nil)
	}

	if err := c.service.ReinstateOther(ctx.Request().Context(), hostID, eventID, id); err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, nil, "Guest reinstated")
}

// GuestAnswers returns a guest's per-sub-event answers for the host view.
func (c *RSVPController) GuestAnswers(ctx echo.Context) error {
	hostID, eventID, err := c.parseIDs(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	guestID, err := uuid.Parse(ctx.Param("guestID"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid guest ID", nil)
	}

	answers, err := c.service.AnswersForGuest(ctx.Request().Context(), hostID, eventID, guestID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, answers, "Answers retrieved")
}
