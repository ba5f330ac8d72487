package controller

import (
	"guestdesk/core/controller"
	"guestdesk/core/errors"
	"guestdesk/core/logger"
	"guestdesk/modules/event/dto"
	"guestdesk/modules/event/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type EventController struct {
	controller.BaseController
	service *service.EventService
}

func NewEventController(service *service.EventService) *EventController {
	return &EventController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

// Create creates a new event for the authenticated host
func (c *EventController) Create(ctx echo.Context) error {
	hostID, err := controller.HostIDFromContext(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	var req dto.CreateEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	resp, err := c.service.Create(ctx.Request().Context(), hostID, &req)
	if err != nil {
		logger.Error("EventController:Create:ServiceError", "error", err)
		return c.ErrorResponse(ctx, err)
	}
	return c.CreatedResponse(ctx, resp, "Event created")
}

// List lists the host's events
func (c *EventController) List(ctx echo.Context) error {
	hostID, err := controller.HostIDFromContext(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	resp, err := c.service.List(ctx.Request().Context(), hostID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, resp, "Events retrieved")
}

// Get returns one event
func (c *EventController) Get(ctx echo.Context) error {
	hostID, err := controller.HostIDFromContext(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	id, err := uuid.Parse(ctx.Param("eventID"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid event ID", nil)
	}

	event, err := c.service.GetByID(ctx.Request().Context(), hostID, id)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	resp := dto.ToEventResponse(event)
	return c.SuccessResponse(ctx, resp, "Event retrieved")
}

// Update updates event fields
func (c *EventController) Update(ctx echo.Context) error {
	hostID, err := controller.HostIDFromContext(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	id, err := uuid.Parse(ctx.Param("eventID"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid event ID", nil)
	}

	var req dto.UpdateEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	resp, err := c.service.Update(ctx.Request().Context(), hostID, id, &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, resp, "Event updated")
}

// Delete deletes an event
func (c *EventController) Delete(ctx echo.Context) error {
	hostID, err := controller.HostIDFromContext(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	id, err := uuid.Parse(ctx.Param("eventID"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid event ID", nil)
	}

	if err := c.service.Delete(ctx.Request().Context(), hostID, id); err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, nil, "Event deleted")
}

// UpsertCustomField adds or updates a custom-field definition
func (c *EventController) UpsertCustomField(ctx echo.Context) error {
	hostID, err := controller.HostIDFromContext(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	id, err := uuid.Parse(ctx.Param("eventID"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid event ID", nil)
	}

	var req dto.UpsertCustomFieldRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	event, err := c.service.UpsertCustomField(ctx.Request().Context(), hostID, id, &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, event.CustomFields, "Custom field saved")
}

// RenameCustomField changes a custom field's display label
func (c *EventController) RenameCustomField(ctx echo.Context) error {
	hostID, err := controller.HostIDFromContext(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	id, err := uuid.Parse(ctx.Param("eventID"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid event ID", nil)
	}

	var req dto.RenameCustomFieldRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	event, err := c.service.RenameCustomField(ctx.Request().Context(), hostID, id, &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, event.CustomFields, "Custom field renamed")
}
