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

type TransactionHandler struct {
	ledgerService  ledger.Service
	historyService history.Service
}

func NewTransactionHandler(ledgerService ledger.Service, historyService history.Service) *TransactionHandler {
	return &TransactionHandler{
		ledgerService:  ledgerService,
		historyService: historyService,
	}
}

// CreateTransaction handles POST /transact/:walletId.
func (h *TransactionHandler) CreateTransaction(c *fiber.Ctx) error {
	walletID := c.Params("walletId")

	var input struct {
		Amount      decimal.Decimal `json:"amount"`
		Description string          `json:"description"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if err := validation.Amount(input.Amount); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := validation.Description(input.Description); err != nil {
		return response.BadRequest(c, err.Error())
	}

	result, err := h.ledgerService.ApplyTransaction(c.Context(), walletID, input.Amount, input.Description)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrWalletNotFound):
			return response.NotFound(c, fmt.Sprintf("Wallet with ID %s not found", walletID))
		case errors.Is(err, ledger.ErrInsufficientBalance),
			errors.Is(err, ledger.ErrZeroAmount),
			errors.Is(err, ledger.ErrAmountOutOfRange),
			errors.Is(err, ledger.ErrEmptyDescription):
			return response.BadRequest(c, err.Error())
		default:
			return response.ServerError(c, "Failed to process transaction")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"balance":       result.Balance,
		"transactionId": result.TransactionID,
	})
}

// GetTransactions handles GET /transactions.
func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	walletID := c.Query("walletId")
	if err := validation.WalletID(walletID); err != nil {
		return response.BadRequest(c, err.Error())
	}

	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", history.DefaultLimit)
	if err := validation.Pagination(skip, limit); err != nil {
		return response.BadRequest(c, err.Error())
	}

	sortBy, err := history.ParseSortKey(c.Query("sortBy"))
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	order, err := history.ParseSortOrder(c.Query("order"))
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	page, err := h.historyService.ListTransactions(c.Context(), history.ListQuery{
		WalletID:  walletID,
		Skip:      skip,
		Limit:     limit,
		SortBy:    sortBy,
		Order:     order,
		ExportAll: c.QueryBool("exportAll", false),
	})
	if err != nil {
		if errors.Is(err, history.ErrWalletNotFound) {
			return response.NotFound(c, fmt.Sprintf("Wallet with ID %s not found", walletID))
		}
		return response.ServerError(c, "Failed to get transactions")
	}

	return c.JSON(page)
}
