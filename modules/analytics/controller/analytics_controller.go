package controller

import (
	"guestdesk/core/controller"
	"guestdesk/core/errors"
	"guestdesk/modules/analytics/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type AnalyticsController struct {
	controller.BaseController
	service *service.AnalyticsService
}

func NewAnalyticsController(service *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

// TrackInviteView is the public beacon fired when an invite page opens.
func (c *AnalyticsController) TrackInviteView(ctx echo.Context) error {
	code := ctx.Param("code")
	if code == "" {
		return c.BadRequest(errors.ErrInvalidRequestData, "Missing invite code", nil)
	}
	if err := c.service.TrackInviteView(ctx.Request().Context(), code); err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, nil, "View recorded")
}

// TrackRSVPView is the public beacon fired when an RSVP page opens.
func (c *AnalyticsController) TrackRSVPView(ctx echo.Context) error {
	code := ctx.Param("code")
	if code == "" {
		return c.BadRequest(errors.ErrInvalidRequestData, "Missing invite code", nil)
	}
	if err := c.service.TrackRSVPView(ctx.Request().Context(), code); err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, nil, "View recorded")
}

func (c *AnalyticsController) parseIDs(ctx echo.Context) (hostID, eventID uuid.UUID, err error) {
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

// Summary returns the host dashboard aggregates.
func (c *AnalyticsController) Summary(ctx echo.Context) error {
	hostID, eventID, err := c.parseIDs(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	summary, err := c.service.Summary(ctx.Request().Context(), hostID, eventID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, summary, "Summary retrieved")
}

// Version returns the change counter the dashboard polls against.
func (c *AnalyticsController) Version(ctx echo.Context) error {
	hostID, eventID, err := c.parseIDs(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	version, err := c.service.Version(ctx.Request().Context(), hostID, eventID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, map[string]int64{"version": version}, "Version retrieved")
}
