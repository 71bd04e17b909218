package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/securebank/securebank-api/internal/pkg/database"
	"github.com/securebank/securebank-api/internal/pkg/metrics/counter"
)

const apiVersion = "1.0.0"

// HandleRoot returns service information and the endpoint map.
func HandleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":            "SecureBank Financial Services API",
		"version":            apiVersion,
		"status":             "active",
		"database_connected": database.HealthCheck(),
		"endpoints": fiber.Map{
			"plans":      "/api/plans",
			"enrollment": "/api/enroll",
			"metrics":    "/metrics",
		},
	})
}

// HandleHealth reports healthy when the durable store is reachable and
// degraded when the service is running on transient storage only.
func HandleHealth(c *fiber.Ctx) error {
	dbHealthy := database.HealthCheck()

	status := "healthy"
	dbState := "connected"
	if !dbHealthy {
		status = "degraded"
		dbState = "disconnected"
	}

	body := fiber.Map{
		"status":    status,
		"service":   "SecureBank Financial API",
		"database":  dbState,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	// A climbing failover count with a "healthy" status means writes were
	// diverted to transient storage during an earlier outage.
	if failovers, err := counter.FailoverCount(); err == nil {
		body["storage_failovers"] = failovers
	}

	return c.JSON(body)
}
