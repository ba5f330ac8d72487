package controller

import (
	"guestdesk/core/constants"
	"guestdesk/core/errors"
	"guestdesk/core/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HostIDFromContext retrieves the authenticated host's ID from the token
// claims the auth middleware stored on the request context.
func HostIDFromContext(ctx echo.Context) (uuid.UUID, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	if tokenData == nil {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "token data not found in context", nil)
	}
	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "invalid token data format", nil)
	}
	return claims.UserID, nil
}
