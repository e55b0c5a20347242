package handlers

import (
	"walletledger/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck reports service and database liveness.
func HealthCheck(c *fiber.Ctx) error {
	dbStatus := "up"
	if sqlDB, err := repositories.DB.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "down"
	}

	cacheStatus := "disabled"
	if repositories.CacheService != nil {
		cacheStatus = "up"
		if err := repositories.CacheService.HealthCheck(c.Context()); err != nil {
			cacheStatus = "down"
		}
	}

	status := fiber.StatusOK
	if dbStatus != "up" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(fiber.Map{
		"status":   "ok",
		"database": dbStatus,
		"cache":    cacheStatus,
	})
}
