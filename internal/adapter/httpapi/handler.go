package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/simaogato/moneytransfer/internal/domain"
)

// Handler exposes the ledger operations as HTTP endpoints
type Handler struct {
	Ledger domain.Ledger
}

// NewHandler creates a new Handler instance
func NewHandler(ledger domain.Ledger) *Handler {
	return &Handler{Ledger: ledger}
}

type createAccountResponse struct {
	ID domain.AccountID `json:"id"`
}

type balanceResponse struct {
	Amount domain.Money `json:"amount"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Healthz handles GET /healthz
func (h *Handler) Healthz(c *fiber.Ctx) error {
	return c.SendString("ok")
}

// CreateAccount handles PUT /create/:id
// 201 when created, 204 when the account already exists
func (h *Handler) CreateAccount(c *fiber.Ctx) error {
	id, err := accountParam(c, "id")
	if err != nil {
		return mapError(err)
	}

	created, err := h.Ledger.CreateAccount(id)
	if err != nil {
		if errors.Is(err, domain.ErrAccountExists) {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return mapError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(createAccountResponse{ID: created})
}

// GetBalance handles GET /balance/:id
func (h *Handler) GetBalance(c *fiber.Ctx) error {
	id, err := accountParam(c, "id")
	if err != nil {
		return mapError(err)
	}

	balance, err := h.Ledger.GetBalance(id)
	if err != nil {
		return mapError(err)
	}

	return c.Status(fiber.StatusOK).JSON(balanceResponse{Amount: balance})
}

// Deposit handles POST /deposit/:id/:amount
func (h *Handler) Deposit(c *fiber.Ctx) error {
	id, err := accountParam(c, "id")
	if err != nil {
		return mapError(err)
	}
	amount, err := domain.ParseMoney(c.Params("amount"))
	if err != nil {
		return mapError(err)
	}

	if err := h.Ledger.Deposit(id, amount); err != nil {
		return mapError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Withdraw handles POST /withdraw/:id/:amount
func (h *Handler) Withdraw(c *fiber.Ctx) error {
	id, err := accountParam(c, "id")
	if err != nil {
		return mapError(err)
	}
	amount, err := domain.ParseMoney(c.Params("amount"))
	if err != nil {
		return mapError(err)
	}

	if err := h.Ledger.Withdraw(id, amount); err != nil {
		return mapError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Transfer handles POST /transfer/:from/:to/:amount
func (h *Handler) Transfer(c *fiber.Ctx) error {
	from, err := accountParam(c, "from")
	if err != nil {
		return mapError(err)
	}
	to, err := accountParam(c, "to")
	if err != nil {
		return mapError(err)
	}
	amount, err := domain.ParseMoney(c.Params("amount"))
	if err != nil {
		return mapError(err)
	}

	if err := h.Ledger.Transfer(from, to, amount); err != nil {
		return mapError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func accountParam(c *fiber.Ctx, name string) (domain.AccountID, error) {
	id := domain.AccountID(c.Params(name))
	if err := id.Validate(); err != nil {
		return "", err
	}
	return id, nil
}

// statusForErr maps ledger errors to HTTP status codes
func statusForErr(err error) int {
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidAccountID):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrAccountNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientFunds):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrAccountExists):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// mapError converts known ledger errors into a *fiber.Error.
// Unknown errors pass through unchanged and end up as a logged 500 in the ErrorHandler.
func mapError(err error) error {
	code := statusForErr(err)
	if code >= fiber.StatusInternalServerError {
		return err
	}
	return fiber.NewError(code, err.Error())
}
