package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/securebank/securebank-api/internal/pkg/catalog"
	"github.com/securebank/securebank-api/internal/pkg/database"
)

// HandleGetPlans returns all active financial plans. The catalog itself
// degrades to the static list when the database is down, so this endpoint
// only fails on serialization.
func HandleGetPlans(c *fiber.Ctx) error {
	plans := catalog.ListActivePlans(database.GetDB())

	return c.JSON(fiber.Map{
		"success":     true,
		"data":        plans,
		"total_plans": len(plans),
	})
}
