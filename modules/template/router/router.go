package router

import (
	"guestdesk/core/middleware"
	"guestdesk/modules/template/controller"

	"github.com/labstack/echo/v4"
)

type TemplateRouter struct {
	controller *controller.TemplateController
}

func NewTemplateRouter(controller *controller.TemplateController) *TemplateRouter {
	return &TemplateRouter{
		controller: controller,
	}
}

func (r *TemplateRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	templates := g.Group("/events/:eventID/templates")
	templates.Use(mw.AuthMiddleware())

	templates.GET("", r.controller.List)
	templates.POST("", r.controller.Create)
	templates.GET("/:templateID", r.controller.Get)
	templates.PATCH("/:templateID", r.controller.Update)
	templates.DELETE("/:templateID", r.controller.Delete)
	templates.POST("/:templateID/preview", r.controller.Preview)
}
