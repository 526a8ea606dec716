package server

import (
	"app/internal/handler"
	"app/internal/middleware"
	"app/internal/token"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	tokens *token.Service,
	authH *handler.AuthHandler,
	noteH *handler.NoteHandler,
	userH *handler.UserHandler,
) {
	//認証（register/login/refresh）はトークン不要
	authH.RegisterRoutes(e)

	//それ以外はbearerトークン必須
	authMW := middleware.AuthJWT(tokens)
	noteH.RegisterRoutes(e, authMW)
	userH.RegisterRoutes(e, authMW)
}
