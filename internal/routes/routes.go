// Package routes defines the API routing configuration. It wires the
// store and cache into the services, the services into the handlers,
// and the handlers into the Fiber app.
package routes

import (
	"walletledger/internal/config"
	"walletledger/internal/handlers"
	"walletledger/internal/repositories"
	"walletledger/internal/services/history"
	"walletledger/internal/services/ledger"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	store := repositories.NewStore(db)

	// A nil *CacheService must stay a nil interface.
	var ledgerCache ledger.Cache
	var historyCache history.Cache
	if repositories.CacheService != nil {
		ledgerCache = repositories.CacheService
		historyCache = repositories.CacheService
	}

	ledgerService := ledger.NewService(
		store,
		ledgerCache,
		ledger.Config{
			AllowZeroAmount: config.GetBoolEnv("LEDGER_ALLOW_ZERO_AMOUNT", false),
		},
		&ledger.NoopMetricsCollector{},
	)
	historyService := history.NewService(store, historyCache)

	walletHandler := handlers.NewWalletHandler(ledgerService, historyService)
	transactionHandler := handlers.NewTransactionHandler(ledgerService, historyService)

	app.Get("/health", handlers.HealthCheck)

	app.Post("/setup", walletHandler.SetupWallet)
	app.Get("/wallet/:id", walletHandler.GetWallet)
	app.Get("/wallets", walletHandler.ListWallets)

	app.Post("/transact/:walletId", transactionHandler.CreateTransaction)
	app.Get("/transactions", transactionHandler.GetTransactions)
}
