package controller

import (
	"fmt"
	"net/http"

	"guestdesk/core/controller"
	"guestdesk/core/errors"
	"guestdesk/core/logger"
	"guestdesk/modules/guest/dto"
	"guestdesk/modules/guest/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type GuestController struct {
	controller.BaseController
	service *service.GuestService
}

func NewGuestController(service *service.GuestService) *GuestController {
	return &GuestController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

func (c *GuestController) parseIDs(ctx echo.Context) (hostID, eventID uuid.UUID, err error) {
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

// List returns the projected guest list for the current view state
func (c *GuestController) List(ctx echo.Context) error {
	hostID, eventID, err := c.parseIDs(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	resp, err := c.service.List(ctx.Request().Context(), hostID, eventID, ctx.QueryParams())
	if err != nil {
		logger.Error("GuestController:List:ServiceError", "error", err)
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, resp, "Guests retrieved")
}

// Create adds one guest
func (c *GuestController) Create(ctx echo.Context) error {
	hostID, eventID, err := c.parseIDs(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	var req dto.CreateGuestRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	guest, err := c.service.Create(ctx.Request().Context(), hostID, eventID, &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.CreatedResponse(ctx, guest, "Guest created")
}

// Get returns one guest
func (c *GuestController) Get(ctx echo.Context) error {
	hostID, eventID, err := c.parseIDs(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	guestID, err := uuid.Parse(ctx.Param("guestID"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid guest ID", nil)
	}

	guest, err := c.service.Get(ctx.Request().Context(), hostID, eventID, guestID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, guest, "Guest retrieved")
}

// Update edits a guest
func (c *GuestController) Update(ctx echo.Context) error {
	hostID, eventID, err := c.parseIDs(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	guestID, err := uuid.Parse(ctx.Param("guestID"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid guest ID", nil)
	}

	var req dto.UpdateGuestRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	guest, err := c.service.Update(ctx.Request().Context(), hostID, eventID, guestID, &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, guest, "Guest updated")
}

// Remove soft-deletes a guest
func (c *GuestController) Remove(ctx echo.Context) error {
	hostID, eventID, err := c.parseIDs(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	guestID, err := uuid.Parse(ctx.Param("guestID"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid guest ID", nil)
	}

	if err := c.service.Remove(ctx.Request().Context(), hostID, eventID, guestID); err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, nil, "Guest removed")
}

// Reinstate clears a guest's removed flag
func (c *GuestController) Reinstate(ctx echo.Context) error {
	hostID, eventID, err := c.parseIDs(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	guestID, err := uuid.Parse(ctx.Param("guestID"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid guest ID", nil)
	}

	if err := c.service.Reinstate(ctx.Request().Context(), hostID, eventID, guestID); err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, nil, "Guest reinstated")
}

// SetInvitationSent toggles the invitation-sent flag
func (c *GuestController) SetInvitationSent(ctx echo.Context) error {
	hostID, eventID, err := c.parseIDs(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	guestID, err := uuid.Parse(ctx.Param("guestID"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid guest ID", nil)
	}

	var req struct {
		Sent bool `json:"sent"`
	}
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	guest, err := c.service.SetInvitationSent(ctx.Request().Context(), hostID, eventID, guestID, req.Sent)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, guest, "Invitation flag updated")
}

// SetColumns persists the visible middle columns
func (c *GuestController) SetColumns(ctx echo.Context) error {
	hostID, eventID, err := c.parseIDs(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	var req dto.SetColumnsRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	if err := c.service.SetColumns(ctx.Request().Context(), hostID, eventID, req.Columns); err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, nil, "Columns saved")
}

// Import ingests a multipart CSV upload of guests
func (c *GuestController) Import(ctx echo.Context) error {
	hostID, eventID, err := c.parseIDs(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Missing file upload", nil)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Unreadable file upload", nil)
	}
	defer file.Close()

	resp, err := c.service.ImportCSV(ctx.Request().Context(), hostID, eventID, file)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, resp, "Import finished")
}

// Export streams the guest list as a CSV download
func (c *GuestController) Export(ctx echo.Context) error {
	hostID, eventID, err := c.parseIDs(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentType, "text/csv")
	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="guests-%s.csv"`, eventID))
	ctx.Response().WriteHeader(http.StatusOK)

	if err := c.service.ExportCSV(ctx.Request().Context(), hostID, eventID, ctx.Response()); err != nil {
		logger.Error("GuestController:Export:Error", "error", err)
		return err
	}
	return nil
}

// BulkDispatch queues invite messages for the selected guests
func (c *GuestController) BulkDispatch(ctx echo.Context) error {
	hostID, eventID, err := c.parseIDs(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	var req dto.BulkDispatchRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	resp, err := c.service.BulkDispatch(ctx.Request().Context(), hostID, eventID, &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, resp, "Dispatch queued")
}
