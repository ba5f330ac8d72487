package event

import (
	"guestdesk/core/database"
	"guestdesk/core/middleware"
	"guestdesk/modules/event/controller"
	"guestdesk/modules/event/repository"
	"guestdesk/modules/event/router"
	"guestdesk/modules/event/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the event module and returns the service for use by other modules
func Init(g *echo.Group, db database.Database, mw *middleware.Middleware) *service.EventService {
	repo := repository.NewEventRepository(db)
	svc := service.NewEventService(repo)
	ctrl := controller.NewEventController(svc)
	r := router.NewEventRouter(ctrl)

	r.Register(g, mw)

	return svc
}
