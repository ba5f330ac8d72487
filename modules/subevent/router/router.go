package router

import (
	"guestdesk/core/middleware"
	"guestdesk/modules/subevent/controller"

	"github.com/labstack/echo/v4"
)

type SubEventRouter struct {
	controller *controller.SubEventController
}

func NewSubEventRouter(controller *controller.SubEventController) *SubEventRouter {
	return &SubEventRouter{
		controller: controller,
	}
}

func (r *SubEventRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	subEvents := g.Group("/events/:eventID/sub-events")
	subEvents.Use(mw.AuthMiddleware())

	subEvents.GET("", r.controller.List)
	subEvents.POST("", r.controller.Create)
	subEvents.PATCH("/:subEventID", r.controller.Update)
	subEvents.DELETE("/:subEventID", r.controller.Delete)
	subEvents.POST("/assign", r.controller.BulkAssign)
	subEvents.POST("/deassign", r.controller.BulkDeassign)
}
