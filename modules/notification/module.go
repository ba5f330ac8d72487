package notification

import (
	"guestdesk/core/database"
	"guestdesk/core/middleware"
	"guestdesk/modules/notification/controller"
	"guestdesk/modules/notification/repository"
	"guestdesk/modules/notification/router"
	"guestdesk/modules/notification/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the notification module and returns the service for use by other modules
func Init(g *echo.Group, db database.Database, mw *middleware.Middleware) *service.NotificationService {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)

	router.NewNotificationRouter(ctrl).Register(g, mw)

	return svc
}
