package auth

import (
	"guestdesk/core/cache"
	"guestdesk/core/database"
	"guestdesk/core/middleware"
	"guestdesk/modules/auth/controller"
	"guestdesk/modules/auth/repository"
	"guestdesk/modules/auth/router"
	"guestdesk/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the auth module
func Init(g *echo.Group, db database.Database, mw *middleware.Middleware, c *cache.Cache) *service.AuthService {
	repo := repository.NewHostRepository(db)
	svc := service.NewAuthService(repo, c)
	ctrl := controller.NewAuthController(svc)
	r := router.NewAuthRouter(ctrl)

	r.Register(g, mw)

	return svc
}
