package middleware

import (
	"guestdesk/core/cache"
	"guestdesk/core/constants"
	"guestdesk/core/controller"
	"guestdesk/core/errors"
	"guestdesk/core/logger"
	"guestdesk/core/utils"

	"github.com/labstack/echo/v4"
)

type Middleware struct {
	cache *cache.Cache
}

func NewMiddleware(c *cache.Cache) *Middleware {
	return &Middleware{cache: c}
}

// AuthMiddleware validates the bearer token and stores its claims on the
// request context under constants.ContextTokenData.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := utils.GetTokenFromHeader(c.Request().Header.Get("Authorization"))
			if err != nil {
				return controller.NewBaseController().ErrorResponse(c, err)
			}

			claims, err := utils.ParseToken(token)
			if err != nil {
				return controller.NewBaseController().ErrorResponse(c, err)
			}

			if claims.Scope != constants.ScopeTokenAccess {
				return controller.NewBaseController().ErrorResponse(c,
					errors.NewAppError(errors.ErrUnauthorized, "wrong token scope", nil))
			}

			if m.cache != nil {
				blacklisted, err := m.cache.IsTokenBlacklisted(c.Request().Context(), claims.ID)
				if err != nil {
					// Redis being down must not lock every host out.
					logger.Warn("Middleware:AuthMiddleware:BlacklistCheckFailed", "error", err)
				} else if blacklisted {
					return controller.NewBaseController().ErrorResponse(c,
						errors.NewAppError(errors.ErrUnauthorized, "token revoked", nil))
				}
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}
