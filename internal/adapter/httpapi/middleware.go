package httpapi

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HeaderCorrelationID carries the request correlation id in both directions
const HeaderCorrelationID = "X-Correlation-Id"

// RequestLogger logs one line per request and propagates a correlation id.
// A missing X-Correlation-Id header is filled with a fresh UUID and echoed back.
func RequestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		corr := c.Get(HeaderCorrelationID)
		if corr == "" {
			corr = uuid.NewString()
		}
		c.Set(HeaderCorrelationID, corr)

		// Resolve the error here so the logged status is the one sent to the client
		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		fields := []zap.Field{
			zap.String("correlation_id", corr),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			logger.Error("request failed", fields...)
		case status >= fiber.StatusBadRequest:
			logger.Warn("request rejected", fields...)
		default:
			logger.Info("request served", fields...)
		}

		return nil
	}
}

// ConcurrencyLimit rejects requests with 503 once max requests are in flight.
// Fails fast instead of queueing.
func ConcurrencyLimit(max int) fiber.Handler {
	if max <= 0 {
		max = 64
	}
	sem := make(chan struct{}, max)

	return func(c *fiber.Ctx) error {
		select {
		case sem <- struct{}{}:
			defer func() { <-sem }()
			return c.Next()
		default:
			return c.Status(fiber.StatusServiceUnavailable).JSON(errorResponse{Error: "server busy"})
		}
	}
}

// NewErrorHandler writes every error as a JSON body.
// Anything that is not a *fiber.Error is an unexpected fault: it is logged and
// reported as a generic 500 without leaking internals.
func NewErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(errorResponse{Error: fiberErr.Message})
		}

		logger.Error("unexpected error",
			zap.Error(err),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("correlation_id", string(c.Response().Header.Peek(HeaderCorrelationID))),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "internal error"})
	}
}
