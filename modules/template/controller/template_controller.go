package controller

import (
	"guestdesk/core/controller"
	"guestdesk/core/errors"
	"guestdesk/modules/template/dto"
	"guestdesk/modules/template/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type TemplateController struct {
	controller.BaseController
	service *service.TemplateService
}

func NewTemplateController(service *service.TemplateService) *TemplateController {
	return &TemplateController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

func (c *TemplateController) parseIDs(ctx echo.Context) (hostID, eventID uuid.UUID, err error) {
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

func (c *TemplateController) parseTemplateID(ctx echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Param("templateID"))
	if err != nil {
		return uuid.Nil, errors.NewAppError(errors.ErrInvalidRequestData, "invalid template ID", err)
	}
	return id, nil
}

func (c *TemplateController) List(ctx echo.Context) error {
	hostID, eventID, err := c.parseIDs(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	resp, err := c.service.List(ctx.Request().Context(), hostID, eventID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, resp, "Templates retrieved")
}

func (c *TemplateController) Create(ctx echo.Context) error {
	hostID, eventID, err := c.parseIDs(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	var req dto.CreateTemplateRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	t, err := c.service.Create(ctx.Request().Context(), hostID, eventID, &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.CreatedResponse(ctx, t, "Template created")
}

func (c *TemplateController) Get(ctx echo.Context) error {
	hostID, eventID, err := c.parseIDs(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	id, err := c.parseTemplateID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	t, err := c.service.Get(ctx.Request().Context(), hostID, eventID, id)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, t, "Template retrieved")
}

func (c *TemplateController) Update(ctx echo.Context) error {
	hostID, eventID, err := c.parseIDs(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	id, err := c.parseTemplateID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	var req dto.UpdateTemplateRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	t, err := c.service.Update(ctx.Request().Context(), hostID, eventID, id, &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, t, "Template updated")
}

func (c *TemplateController) Delete(ctx echo.Context) error {
	hostID, eventID, err := c.parseIDs(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	id, err := c.parseTemplateID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	if err := c.service.Delete(ctx.Request().Context(), hostID, eventID, id); err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, nil, "Template deleted")
}

func (c *TemplateController) Preview(ctx echo.Context) error {
	hostID, eventID, err := c.parseIDs(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	id, err := c.parseTemplateID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	var req dto.PreviewRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	resp, err := c.service.Preview(ctx.Request().Context(), hostID, eventID, id, &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, resp, "Preview rendered")
}
