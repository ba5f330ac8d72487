package controller

import (
	"guestdesk/core/controller"
	"guestdesk/core/errors"
	"guestdesk/core/params"
	"guestdesk/modules/notification/dto"
	"guestdesk/modules/notification/service"

	"github.com/labstack/echo/v4"
)

type NotificationController struct {
	controller.BaseController
	service *service.NotificationService
}

func NewNotificationController(service *service.NotificationService) *NotificationController {
	return &NotificationController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

// List returns the host's notifications, newest first
func (c *NotificationController) List(ctx echo.Context) error {
	hostID, err := controller.HostIDFromContext(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	qp := params.NewQueryParams(ctx.QueryParams())
	page, err := c.service.List(ctx.Request().Context(), hostID, qp)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, page, "Notifications retrieved")
}

// MarkAsRead marks the listed notifications as read
func (c *NotificationController) MarkAsRead(ctx echo.Context) error {
	hostID, err := controller.HostIDFromContext(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	var req dto.MarkAsReadRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	if err := c.service.MarkAsRead(ctx.Request().Context(), hostID, req.IDs); err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, nil, "Marked as read")
}

// MarkAllAsRead marks every notification of the host as read
func (c *NotificationController) MarkAllAsRead(ctx echo.Context) error {
	hostID, err := controller.HostIDFromContext(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	if err := c.service.MarkAllAsRead(ctx.Request().Context(), hostID); err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, nil, "Marked all as read")
}

// CountUnread returns the unread badge count
func (c *NotificationController) CountUnread(ctx echo.Context) error {
	hostID, err := controller.HostIDFromContext(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	count, err := c.service.CountUnread(ctx.Request().Context(), hostID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, dto.UnreadCountResponse{Count: count}, "Unread count retrieved")
}
