package middleware

import (
	"net/http"
	"strings"
	"time"

	"app/internal/token"

	"github.com/labstack/echo/v4"
)

const (
	CtxUsernameKey = "username" // string
)

type errorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
}

func unauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, errorResponse{
		Timestamp: time.Now(),
		Status:    http.StatusUnauthorized,
		Error:     "Unauthorized",
		Message:   message,
	})
}

// bearerAuth用のJWT検証ミドルウェア。
// 検証に通ったらsub（username）をcontextへ保存する。
func AuthJWT(tokens *token.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//Authorizationヘッダを取得
			authz := c.Request().Header.Get("Authorization")
			if authz == "" {
				return unauthorized(c, "authentication required")
			}

			//Bearer形式か確認してtokenを抜く
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return unauthorized(c, "authentication required")
			}
			rawToken := strings.TrimSpace(parts[1])
			if rawToken == "" {
				return unauthorized(c, "authentication required")
			}

			// 署名検証と期限チェックは別ステップ
			// （失敗原因を区別したまま、どちらも401に落とす）
			claims, err := tokens.Decode(rawToken)
			if err != nil {
				return unauthorized(c, "invalid token")
			}
			if !claims.ExpiresAt.After(time.Now()) {
				return unauthorized(c, "token expired")
			}

			//contextへ保存
			c.Set(CtxUsernameKey, claims.Subject)

			return next(c)
		}
	}
}

// contextから検証済みusernameを取り出す
func CurrentUsername(c echo.Context) (string, bool) {
	username, ok := c.Get(CtxUsernameKey).(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}
