package subevent

import (
	"guestdesk/core/database"
	"guestdesk/core/middleware"
	eventService "guestdesk/modules/event/service"
	guestRepo "guestdesk/modules/guest/repository"
	"guestdesk/modules/subevent/controller"
	"guestdesk/modules/subevent/repository"
	"guestdesk/modules/subevent/router"
	"guestdesk/modules/subevent/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the sub-event module and returns the service for use by other modules
func Init(g *echo.Group, db database.Database, mw *middleware.Middleware, events *eventService.EventService) *service.SubEventService {
	repo := repository.NewSubEventRepository(db)
	guests := guestRepo.NewGuestRepository(db)
	svc := service.NewSubEventService(repo, guests, events)
	ctrl := controller.NewSubEventController(svc)
	r := router.NewSubEventRouter(ctrl)

	r.Register(g, mw)

	return svc
}
