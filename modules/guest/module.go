package guest

import (
	"guestdesk/core/cache"
	"guestdesk/core/database"
	"guestdesk/core/middleware"
	eventService "guestdesk/modules/event/service"
	"guestdesk/modules/guest/controller"
	"guestdesk/modules/guest/repository"
	"guestdesk/modules/guest/router"
	"guestdesk/modules/guest/service"
	rsvpRepo "guestdesk/modules/rsvp/repository"

	"github.com/labstack/echo/v4"
)

// Init initializes the guest module and returns the service for use by other modules
func Init(g *echo.Group, db database.Database, mw *middleware.Middleware, c *cache.Cache, events *eventService.EventService, notifier service.Notifier) *service.GuestService {
	repo := repository.NewGuestRepository(db)
	rsvpRepository := rsvpRepo.NewRSVPRepository(db)
	svc := service.NewGuestService(repo, rsvpRepository, events, c, notifier)
	ctrl := controller.NewGuestController(svc)
	r := router.NewGuestRouter(ctrl)

	r.Register(g, mw)

	return svc
}
