package rsvp

import (
	"guestdesk/core/database"
	"guestdesk/core/middleware"
	eventService "guestdesk/modules/event/service"
	guestRepo "guestdesk/modules/guest/repository"
	"guestdesk/modules/rsvp/controller"
	"guestdesk/modules/rsvp/repository"
	"guestdesk/modules/rsvp/router"
	"guestdesk/modules/rsvp/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the rsvp module and returns the service for use by other modules
func Init(g *echo.Group, db database.Database, mw *middleware.Middleware, events *eventService.EventService) *service.RSVPService {
	repo := repository.NewRSVPRepository(db)
	guests := guestRepo.NewGuestRepository(db)
	svc := service.NewRSVPService(repo, guests, events)
	ctrl := controller.NewRSVPController(svc)
	r := router.NewRSVPRouter(ctrl)

	r.Register(g, mw)

	return svc
}
