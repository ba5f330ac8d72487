package router

import (
	"guestdesk/core/middleware"
	"guestdesk/modules/guest/controller"

	"github.com/labstack/echo/v4"
)

type GuestRouter struct {
	controller *controller.GuestController
}

func NewGuestRouter(controller *controller.GuestController) *GuestRouter {
	return &GuestRouter{
		controller: controller,
	}
}

func (r *GuestRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	guests := g.Group("/events/:eventID/guests")
	guests.Use(mw.AuthMiddleware())

	guests.GET("", r.controller.List)
	guests.POST("", r.controller.Create)
	guests.POST("/import", r.controller.Import)
	guests.GET("/export", r.controller.Export)
	guests.PUT("/columns", r.controller.SetColumns)
	guests.POST("/dispatch", r.controller.BulkDispatch)
	guests.GET("/:guestID", r.controller.Get)
	guests.PATCH("/:guestID", r.controller.Update)
	guests.DELETE("/:guestID", r.controller.Remove)
	guests.POST("/:guestID/reinstate", r.controller.Reinstate)
	guests.PUT("/:guestID/invitation-sent", r.controller.SetInvitationSent)
}
