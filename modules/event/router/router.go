package router

import (
	"guestdesk/core/middleware"
	"guestdesk/modules/event/controller"

	"github.com/labstack/echo/v4"
)

type EventRouter struct {
	controller *controller.EventController
}

func NewEventRouter(controller *controller.EventController) *EventRouter {
	return &EventRouter{
		controller: controller,
	}
}

func (r *EventRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	events := g.Group("/events")
	events.Use(mw.AuthMiddleware())

	events.POST("", r.controller.Create)
	events.GET("", r.controller.List)
	events.GET("/:eventID", r.controller.Get)
	events.PATCH("/:eventID", r.controller.Update)
	events.DELETE("/:eventID", r.controller.Delete)
	events.PUT("/:eventID/custom-fields", r.controller.UpsertCustomField)
	events.PATCH("/:eventID/custom-fields/rename", r.controller.RenameCustomField)
}
