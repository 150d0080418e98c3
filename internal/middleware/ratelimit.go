package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/HektorTM/wos-dashboard-sub001/internal/config"
)

// RateLimit returns a fixed-window request limiter keyed by the session
// principal when present and the client IP otherwise.  The counter lives in
// Redis (INCR + EXPIRE on first hit of the window) so limits hold across
// instances.  When Redis is unavailable or errors mid-request the limiter
// degrades open: an unreachable counter must not take the dashboard down.
func RateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := cfg.Prefix + ":" + clientKey(c)
			ctx := c.Request().Context()

			n, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				return next(c)
			}
			if n == 1 {
				_ = rdb.Expire(ctx, key, cfg.Window).Err()
			}

			remaining := int64(cfg.Limit) - n
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if n > int64(cfg.Limit) {
				retry := int(cfg.Window / time.Second)
				c.Response().Header().Set("Retry-After", strconv.Itoa(retry))
				return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "rate limit exceeded"})
			}
			return next(c)
		}
	}
}

// clientKey prefers the authenticated uuid so shared NAT addresses are not
// throttled as one client.
func clientKey(c echo.Context) string {
	if p, ok := PrincipalFrom(c); ok {
		return "u:" + p.UUID
	}
	return "ip:" + c.RealIP()
}
