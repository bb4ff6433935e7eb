package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"driveyard/internal/infrastructure/ratelimit"
	"driveyard/pkg/errors"
	"driveyard/pkg/logger"
	"driveyard/pkg/response"
)

// SubmissionRateLimit throttles anonymous form submissions by client IP.
func SubmissionRateLimit(limiter *ratelimit.RateLimiter, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			allowed, waitTime := limiter.Allow(ip, action)
			if !allowed {
				logger.Warn("Rate limit hit for %s on %s (retry in %v)", ip, action, waitTime)
				return response.Error(c, errors.TooManyRequests(
					fmt.Sprintf("Too many submissions, try again in %d seconds", int(waitTime.Seconds())+1),
				))
			}

			return next(c)
		}
	}
}
