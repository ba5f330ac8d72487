package controller

import (
	"strconv"

	"guestdesk/core/controller"
	"guestdesk/core/errors"
	"guestdesk/modules/subevent/dto"
	"guestdesk/modules/subevent/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type SubEventController struct {
	controller.BaseController
	service *service.SubEventService
}

func NewSubEventController(service *service.SubEventService) *SubEventController {
	return &SubEventController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

func (c *SubEventController) parseIDs(ctx echo.Context) (hostID, eventID uuid.UUID, err error) {
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

// Create creates a sub-event
func (c *SubEventController) Create(ctx echo.Context) error {
	hostID, eventID, err := c.parseIDs(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	var req dto.CreateSubEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	subEvent, err := c.service.Create(ctx.Request().Context(), hostID, eventID, &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.CreatedResponse(ctx, subEvent, "Sub-event created")
}

// List lists an event's sub-events
func (c *SubEventController) List(ctx echo.Context) error {
	hostID, eventID, err := c.parseIDs(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	resp, err := c.service.List(ctx.Request().Context(), hostID, eventID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, resp, "Sub-events retrieved")
}

// Update edits a sub-event
func (c *SubEventController) Update(ctx echo.Context) error {
	hostID, eventID, err := c.parseIDs(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	id, err := strconv.ParseInt(ctx.Param("subEventID"), 10, 64)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid sub-event ID", nil)
	}

	var req dto.UpdateSubEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	subEvent, err := c.service.Update(ctx.Request().Context(), hostID, eventID, id, &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, subEvent, "Sub-event updated")
}

// Delete deletes a sub-event
func (c *SubEventController) Delete(ctx echo.Context) error {
	hostID, eventID, err := c.parseIDs(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	id, err := strconv.ParseInt(ctx.Param("subEventID"), 10, 64)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid sub-event ID", nil)
	}

	if err := c.service.Delete(ctx.Request().Context(), hostID, eventID, id); err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, nil, "Sub-event deleted")
}

// BulkAssign adds sub-events to the selected guests
func (c *SubEventController) BulkAssign(ctx echo.Context) error {
	hostID, eventID, err := c.parseIDs(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	var req dto.BulkAssignRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	resp, err := c.service.BulkAssign(ctx.Request().Context(), hostID, eventID, &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, resp, "Assignment finished")
}

// BulkDeassign removes sub-events from the selected guests
func (c *SubEventController) BulkDeassign(ctx echo.Context) error {
	hostID, eventID, err := c.parseIDs(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	var req dto.BulkAssignRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	resp, err := c.service.BulkDeassign(ctx.Request().Context(), hostID, eventID, &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, resp, "De-assignment finished")
}
