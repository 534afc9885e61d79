package middleware

import (
	"log/slog"

	delivctx "bazaar/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware tags every request with an id and a request-scoped
// logger carrying it, both reachable from the request context.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware is the constructor for RequestIDMiddleware.
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

// Handle assigns the request id, echoing an inbound X-Request-Id when the
// client supplied one.
func (m *RequestIDMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(delivctx.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		delivctx.SetRequestID(c, requestID)
		c.Response().Header().Set(delivctx.HeaderXRequestID, requestID)

		requestLogger := m.logger.With(slog.String(string(delivctx.KeyRequestID), requestID))

		ctx := c.Request().Context()
		ctx = delivctx.WithRequestID(ctx, requestID)
		ctx = delivctx.WithLogger(ctx, requestLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
