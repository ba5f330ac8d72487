package controller

import (
	"guestdesk/core/controller"
	"guestdesk/core/errors"
	"guestdesk/modules/invite/dto"
	"guestdesk/modules/invite/entity"
	"guestdesk/modules/invite/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type InviteController struct {
	controller.BaseController
	service *service.InviteService
}

func NewInviteController(service *service.InviteService) *InviteController {
	return &InviteController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

func (c *InviteController) parseIDs(ctx echo.Context) (hostID, eventID uuid.UUID, err error) {
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

func (c *InviteController) parseTileID(ctx echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Param("tileID"))
	if err != nil {
		return uuid.Nil, errors.NewAppError(errors.ErrInvalidRequestData, "invalid tile ID", err)
	}
	return id, nil
}

func (c *InviteController) List(ctx echo.Context) error {
	hostID, eventID, err := c.parseIDs(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	tiles, err := c.service.List(ctx.Request().Context(), hostID, eventID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, dto.TileListResponse{Tiles: tiles, Total: len(tiles)}, "Tiles retrieved")
}

func (c *InviteController) Create(ctx echo.Context) error {
	hostID, eventID, err := c.parseIDs(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	var req dto.CreateTileRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	tile, err := c.service.Create(ctx.Request().Context(), hostID, eventID, entity.TileType(req.Type), req.Settings, req.OverlayTargetID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.CreatedResponse(ctx, tile, "Tile created")
}

func (c *InviteController) Update(ctx echo.Context) error {
	hostID, eventID, err := c.parseIDs(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	id, err := c.parseTileID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	var req dto.UpdateTileRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	tile, err := c.service.UpdateSettings(ctx.Request().Context(), hostID, eventID, id, req.Settings, req.OverlayTargetID, req.ClearOverlay)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, tile, "Tile updated")
}

func (c *InviteController) Toggle(ctx echo.Context) error {
	hostID, eventID, err := c.parseIDs(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	id, err := c.parseTileID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	var req dto.ToggleTileRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	tile, err := c.service.Toggle(ctx.Request().Context(), hostID, eventID, id, req.Enabled)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, tile, "Tile updated")
}

func (c *InviteController) Reorder(ctx echo.Context) error {
	hostID, eventID, err := c.parseIDs(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	var req dto.ReorderRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}
	tiles, err := c.service.Reorder(ctx.Request().Context(), hostID, eventID, req.TileIDs)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, dto.TileListResponse{Tiles: tiles, Total: len(tiles)}, "Tiles reordered")
}

// UploadImage accepts a multipart image for use in an image tile.
func (c *InviteController) UploadImage(ctx echo.Context) error {
	hostID, eventID, err := c.parseIDs(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Missing image file", nil)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Unreadable image file", nil)
	}
	defer file.Close()

	url, err := c.service.UploadImage(ctx.Request().Context(), hostID, eventID,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.CreatedResponse(ctx, dto.UploadImageResponse{URL: url}, "Image uploaded")
}

// Layout is the public invite page payload for a guest code.
func (c *InviteController) Layout(ctx echo.Context) error {
	code := ctx.Param("code")
	if code == "" {
		return c.BadRequest(errors.ErrInvalidRequestData, "Missing invite code", nil)
	}
	title, layout, err := c.service.Layout(ctx.Request().Context(), code)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, dto.LayoutResponse{EventTitle: title, Layout: layout}, "Layout retrieved")
}
