package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// Options configures the HTTP application
type Options struct {
	Logger       *zap.Logger
	MaxInflight  int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// NewApp wires the routes and middleware around h
func NewApp(h *Handler, opts Options) *fiber.App {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		// Path params become ledger keys, so they must outlive the request buffer
		Immutable:             true,
		UnescapePath:          true,
		DisableStartupMessage: true,
		ReadTimeout:           opts.ReadTimeout,
		WriteTimeout:          opts.WriteTimeout,
		ErrorHandler:          NewErrorHandler(logger),
	})

	app.Use(RequestLogger(logger))
	app.Use(ConcurrencyLimit(opts.MaxInflight))
	app.Use(fiberrecover.New())

	app.Get("/healthz", h.Healthz)
	app.Put("/create/:id", h.CreateAccount)
	app.Get("/balance/:id", h.GetBalance)
	app.Post("/deposit/:id/:amount", h.Deposit)
	app.Post("/withdraw/:id/:amount", h.Withdraw)
	app.Post("/transfer/:from/:to/:amount", h.Transfer)

	// Fallback for unknown routes
	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "route not found")
	})

	return app
}
