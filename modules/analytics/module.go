package analytics

import (
	"guestdesk/core/cache"
	"guestdesk/core/database"
	"guestdesk/core/middleware"
	"guestdesk/modules/analytics/controller"
	"guestdesk/modules/analytics/repository"
	"guestdesk/modules/analytics/router"
	"guestdesk/modules/analytics/service"
	eventService "guestdesk/modules/event/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the analytics module and returns the service so the
// server can start its poller.
func Init(g *echo.Group, db database.Database, mw *middleware.Middleware, c *cache.Cache, events *eventService.EventService) *service.AnalyticsService {
	repo := repository.NewAnalyticsRepository(db)
	svc := service.NewAnalyticsService(repo, events, c)
	ctrl := controller.NewAnalyticsController(svc)
	r := router.NewAnalyticsRouter(ctrl)

	r.Register(g, mw)

	return svc
}
