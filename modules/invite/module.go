package invite

import (
	"guestdesk/core/database"
	"guestdesk/core/middleware"
	"guestdesk/core/storage"
	eventService "guestdesk/modules/event/service"
	guestRepo "guestdesk/modules/guest/repository"
	"guestdesk/modules/invite/controller"
	"guestdesk/modules/invite/repository"
	"guestdesk/modules/invite/router"
	"guestdesk/modules/invite/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the invite module
func Init(g *echo.Group, db database.Database, mw *middleware.Middleware, events *eventService.EventService, uploader *storage.Uploader) *service.InviteService {
	repo := repository.NewTileRepository(db)
	guests := guestRepo.NewGuestRepository(db)
	svc := service.NewInviteService(repo, guests, events, uploader)
	ctrl := controller.NewInviteController(svc)
	r := router.NewInviteRouter(ctrl)

	r.Register(g, mw)

	return svc
}
