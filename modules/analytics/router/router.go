package router

import (
	"guestdesk/core/middleware"
	"guestdesk/modules/analytics/controller"

	"github.com/labstack/echo/v4"
)

type AnalyticsRouter struct {
	controller *controller.AnalyticsController
}

func NewAnalyticsRouter(controller *controller.AnalyticsController) *AnalyticsRouter {
	return &AnalyticsRouter{
		controller: controller,
	}
}

func (r *AnalyticsRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	// Public beacons fired from the invite and RSVP pages.
	g.POST("/p/invite/:code/view", r.controller.TrackInviteView)
	g.POST("/p/rsvp/:code/view", r.controller.TrackRSVPView)

	host := g.Group("/events/:eventID/analytics")
	host.Use(mw.AuthMiddleware())

	host.GET("", r.controller.Summary)
	host.GET("/version", r.controller.Version)
}
