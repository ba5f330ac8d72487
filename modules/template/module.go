package template

import (
	"guestdesk/core/database"
	"guestdesk/core/middleware"
	eventService "guestdesk/modules/event/service"
	guestRepo "guestdesk/modules/guest/repository"
	"guestdesk/modules/template/controller"
	"guestdesk/modules/template/repository"
	"guestdesk/modules/template/router"
	"guestdesk/modules/template/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the template module and returns the service so the
// worker can register its task handlers.
func Init(g *echo.Group, db database.Database, mw *middleware.Middleware, events *eventService.EventService, messenger service.Messenger) *service.TemplateService {
	repo := repository.NewTemplateRepository(db)
	guests := guestRepo.NewGuestRepository(db)
	svc := service.NewTemplateService(repo, guests, events, messenger)
	ctrl := controller.NewTemplateController(svc)
	r := router.NewTemplateRouter(ctrl)

	r.Register(g, mw)

	return svc
}
