package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"

	"github.com/auctionsniper/ebay-relay/internal/metrics"
	"github.com/auctionsniper/ebay-relay/internal/telemetry"
)

// Recovery returns Echo middleware that recovers from panics, logs the stack
// trace, reports it to Sentry, and returns a 500 Internal Server Error to the
// client.
func Recovery(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					buf := make([]byte, 4096)
					n := runtime.Stack(buf, false)

					metrics.PanicsRecoveredTotal.Inc()

					log.Error("panic recovered",
						"error", fmt.Sprint(r),
						"method", c.Request().Method,
						"path", c.Request().URL.Path,
						"stack", string(buf[:n]),
					)

					telemetry.CapturePanic(c.Request().Context(), r, buf[:n], map[string]string{
						"method": c.Request().Method,
						"route":  c.Path(),
					})

					err = c.JSON(http.StatusInternalServerError, map[string]string{
						"error": "internal server error",
					})
				}
			}()
			return next(c)
		}
	}
}
