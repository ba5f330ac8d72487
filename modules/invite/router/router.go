package router

import (
	"guestdesk/core/middleware"
	"guestdesk/modules/invite/controller"

	"github.com/labstack/echo/v4"
)

type InviteRouter struct {
	controller *controller.InviteController
}

func NewInviteRouter(controller *controller.InviteController) *InviteRouter {
	return &InviteRouter{
		controller: controller,
	}
}

func (r *InviteRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	// Public invite page, reached from the link sent to guests.
	g.GET("/p/invite/:code", r.controller.Layout)

	tiles := g.Group("/events/:eventID/tiles")
	tiles.Use(mw.AuthMiddleware())

	tiles.GET("", r.controller.List)
	tiles.POST("", r.controller.Create)
	tiles.PUT("/order", r.controller.Reorder)
	tiles.POST("/image", r.controller.UploadImage)
	tiles.PATCH("/:tileID", r.controller.Update)
	tiles.PUT("/:tileID/toggle", r.controller.Toggle)
}
