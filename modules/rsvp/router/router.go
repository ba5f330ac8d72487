package router

import (
	"guestdesk/core/middleware"
	"guestdesk/modules/rsvp/controller"

	"github.com/labstack/echo/v4"
)

type RSVPRouter struct {
	controller *controller.RSVPController
}

func NewRSVPRouter(controller *controller.RSVPController) *RSVPRouter {
	return &RSVPRouter{
		controller: controller,
	}
}

func (r *RSVPRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	// Public surface, reached from invite links without authentication.
	g.POST("/p/rsvp/:code", r.controller.Submit)
	g.POST("/p/events/:slug/rsvp", r.controller.SubmitOther)

	host := g.Group("/events/:eventID")
	host.Use(mw.AuthMiddleware())

	host.GET("/other-guests", r.controller.ListOther)
	host.DELETE("/other-guests/:guestID", r.controller.RemoveOther)
	host.POST("/other-guests/:guestID/reinstate", r.controller.ReinstateOther)
	host.GET("/guests/:guestID/answers", r.controller.GuestAnswers)
}
