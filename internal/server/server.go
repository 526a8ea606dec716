package server

import (
	"log/slog"

	"app/internal/handler"
	"app/internal/token"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

const traceIDHeader = "X-Trace-ID"

// Newはechoを組み立てて全ルートを登録する。
func New(
	logger *slog.Logger,
	tokens *token.Service,
	authH *handler.AuthHandler,
	noteH *handler.NoteHandler,
	userH *handler.UserHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	//panic回収
	e.Use(echomw.Recover())

	// X-Trace-IDを引き継ぐ。無ければUUIDを振ってレスポンスにも返す。
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator:    uuid.NewString,
		TargetHeader: traceIDHeader,
	}))

	//リクエストログ（構造化）
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			logger.InfoContext(c.Request().Context(), "request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"trace_id", v.RequestID,
			)
			return nil
		},
	}))

	RegisterRoutes(e, tokens, authH, noteH, userH)

	return e
}

// Startはサーバーを起動する。
func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
