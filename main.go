package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/securebank/securebank-api/internal/pkg/cache"
	"github.com/securebank/securebank-api/internal/pkg/catalog"
	"github.com/securebank/securebank-api/internal/pkg/database"
	"github.com/securebank/securebank-api/internal/pkg/env"
	"github.com/securebank/securebank-api/internal/pkg/router"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "0.0.0.0"), env.GetEnv("APP_PORT", "8000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()

	if err := database.SetupDatabase(); err != nil {
		// Durable storage is optional at startup: the service keeps
		// running on the static catalog and transient enrollment store.
		log.Printf("Database unavailable, continuing with fallback storage: %v", err)
	} else if err := catalog.SeedPlans(database.GetDB()); err != nil {
		log.Printf("Error seeding initial plan data: %v", err)
	}

	cache.SetupCache()

	app := fiber.New(fiber.Config{
		AppName:      "SecureBank Financial Services API",
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New(), logger.New())
	app.Use(cors.New(cors.Config{
		AllowMethods: "GET,POST,PUT,DELETE",
	}))
	app.Get("/metrics", monitor.New())

	// ROUTER
	router.InstallRouter(app)

	return app
}

// errorHandler keeps unhandled errors generic for callers. Internal detail
// is only exposed in dev.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	if code == fiber.StatusInternalServerError {
		log.Printf("Unhandled error: %v", err)
		message = "Internal server error"
	}

	body := fiber.Map{
		"success": false,
		"message": message,
	}
	if env.IsDev() {
		body["details"] = err.Error()
	}

	return c.Status(code).JSON(body)
}
