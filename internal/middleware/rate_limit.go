package middleware

import (
	"app/internal/ratelimit"

	"github.com/labstack/echo/v4"
)

// RateLimitGuardは認証まわりのエンドポイントの流量制御。
// IPとusernameを同じLimiterで数える。
type RateLimitGuard struct {
	limiter *ratelimit.Limiter
}

// DI
func NewRateLimitGuard(limiter *ratelimit.Limiter) *RateLimitGuard {
	return &RateLimitGuard{limiter: limiter}
}

// IPで制限。同一の送信元が大量に叩いてくるのを防ぐ。
// X-Forwarded-Forがあれば先頭を送信元として使う（echoのRealIP）。
func (g *RateLimitGuard) LimitedByIP(c echo.Context) bool {
	return !g.limiter.Admit(c.RealIP())
}

// IP→usernameの順に両方を制限。
// 分散した送信元が同じユーザーを狙うケースはusername側で止まる。
func (g *RateLimitGuard) LimitedByUserAndIP(username string, c echo.Context) bool {
	if g.LimitedByIP(c) {
		return true
	}

	return !g.limiter.Admit(username)
}
