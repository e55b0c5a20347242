package handlers

import (
	"errors"
	"fmt"

	"walletledger/internal/services/history"
	"walletledger/internal/services/ledger"
	"walletledger/internal/utils/response"
	"walletledger/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type WalletHandler struct {
	ledgerService  ledger.Service
	historyService history.Service
}

func NewWalletHandler(ledgerService ledger.Service, historyService history.Service) *WalletHandler {
	return &WalletHandler{
		ledgerService:  ledgerService,
		historyService: historyService,
	}
}

// SetupWallet handles POST /setup. The balance is accepted as a decimal
// string so no precision is lost in transit.
func (h *WalletHandler) SetupWallet(c *fiber.Ctx) error {
	var input struct {
		Name    string          `json:"name"`
		Balance decimal.Decimal `json:"balance"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if err := validation.WalletName(input.Name); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := validation.InitialBalance(input.Balance); err != nil {
		return response.BadRequest(c, err.Error())
	}

	result, err := h.ledgerService.SetupWallet(c.Context(), input.Name, input.Balance)
	if err != nil {
		return response.ServerError(c, "Failed to set up wallet")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":            result.WalletID,
		"balance":       result.Balance,
		"transactionId": result.TransactionID,
		"name":          result.Name,
		"date":          result.CreatedAt,
	})
}

// GetWallet handles GET /wallet/:id.
func (h *WalletHandler) GetWallet(c *fiber.Ctx) error {
	id := c.Params("id")

	wallet, err := h.historyService.GetWallet(c.Context(), id)
	if err != nil {
		if errors.Is(err, history.ErrWalletNotFound) {
			return response.NotFound(c, fmt.Sprintf("Wallet with ID %s not found", id))
		}
		return response.ServerError(c, "Failed to get wallet")
	}

	return c.JSON(wallet)
}

// ListWallets handles GET /wallets.
func (h *WalletHandler) ListWallets(c *fiber.Ctx) error {
	wallets, err := h.historyService.ListWallets(c.Context())
	if err != nil {
		return response.ServerError(c, "Failed to list wallets")
	}
	return c.JSON(wallets)
}
