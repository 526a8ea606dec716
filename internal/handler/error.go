package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 全エンドポイント共通のエラーボディ
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
}

// usecaseのエラーをHTTPステータスとエラーボディに変換する。
// スタックトレースは返さない。
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}

	var validationErr *usecase.ValidationError
	if errors.As(err, &validationErr) {
		return writeErrorBody(c, http.StatusBadRequest, "Validation Error", validationErr.Message)
	}

	var existsErr *usecase.AlreadyExistsError
	if errors.As(err, &existsErr) {
		return writeErrorBody(c, http.StatusBadRequest, "Bad Request", existsErr.Error())
	}

	var notFoundErr *usecase.NoteNotFoundError
	if errors.As(err, &notFoundErr) {
		return writeErrorBody(c, http.StatusNotFound, "Not Found", notFoundErr.Error())
	}

	var expiredErr *usecase.NoteExpiredError
	if errors.As(err, &expiredErr) {
		return writeErrorBody(c, http.StatusBadRequest, "Bad Request", expiredErr.Error())
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return writeErrorBody(c, http.StatusUnauthorized, "Unauthorized", "Invalid username or password")
	case errors.Is(err, usecase.ErrTokenExpired):
		return writeErrorBody(c, http.StatusBadRequest, "Bad Request", err.Error())
	case errors.Is(err, usecase.ErrUnauthenticated):
		return writeErrorBody(c, http.StatusUnauthorized, "Unauthorized", "authentication required")
	case errors.Is(err, usecase.ErrRateLimited):
		return c.NoContent(http.StatusTooManyRequests)
	}

	//500。メッセージは診断用に残す
	return writeErrorBody(c, http.StatusInternalServerError, "Internal Server Error",
		fmt.Sprintf("An unexpected error occurred. %s", err.Error()))
}

func writeErrorBody(c echo.Context, status int, errorLabel string, message string) error {
	return c.JSON(status, ErrorResponse{
		Timestamp: time.Now(),
		Status:    status,
		Error:     errorLabel,
		Message:   message,
	})
}
