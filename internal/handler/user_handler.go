package handler

import (
	"net/http"

	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/user のユーザーAPI（要bearerトークン）
type UserHandler struct {
	userUC *usecase.UserUsecase
}

// DI
func NewUserHandler(userUC *usecase.UserUsecase) *UserHandler {
	return &UserHandler{userUC: userUC}
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo, authMW echo.MiddlewareFunc) {
	e.GET("/api/user", h.get, authMW)
}

// ログイン中ユーザーの詳細を返す
func (h *UserHandler) get(c echo.Context) error {
	username, ok := middleware.CurrentUsername(c)
	if !ok {
		return writeError(c, usecase.ErrUnauthenticated)
	}

	out, err := h.userUC.Get(c.Request().Context(), username)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
