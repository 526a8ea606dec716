package handler

import (
	"net/http"

	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/auth の認証API
type AuthHandler struct {
	authUC *usecase.AuthUsecase
	guard  *middleware.RateLimitGuard
}

// DI
func NewAuthHandler(authUC *usecase.AuthUsecase, guard *middleware.RateLimitGuard) *AuthHandler {
	return &AuthHandler{authUC: authUC, guard: guard}
}

// 認証ルートを登録
func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/auth/register", h.register)
	e.POST("/api/auth/login", h.login)
	e.POST("/api/auth/refresh", h.refresh)
}

// /api/auth/register のリクエストボディ。
type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// /api/auth/login のリクエストボディ。
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// /api/auth/refresh のリクエストボディ。
type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// registerはPOST /api/auth/registerのハンドラ
func (h *AuthHandler) register(c echo.Context) error {
	// 送信元IPで制限（1つの送信元から大量registerを防ぐ）
	if h.guard.LimitedByIP(c) {
		return c.NoContent(http.StatusTooManyRequests)
	}

	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return writeErrorBody(c, http.StatusBadRequest, "Validation Error", "invalid request body")
	}

	out, err := h.authUC.Register(c.Request().Context(), usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

// loginはPOST /api/auth/login のハンドラ。
func (h *AuthHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return writeErrorBody(c, http.StatusBadRequest, "Validation Error", "invalid request body")
	}

	// IP→対象usernameの順で両方制限
	if h.guard.LimitedByUserAndIP(req.Username, c) {
		return c.NoContent(http.StatusTooManyRequests)
	}

	out, err := h.authUC.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// refreshはPOST /api/auth/refresh のハンドラ。
// 新しいaccesstokenと、同じrefreshtokenを返す。
func (h *AuthHandler) refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return writeErrorBody(c, http.StatusBadRequest, "Validation Error", "invalid request body")
	}

	out, err := h.authUC.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}
