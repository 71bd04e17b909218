package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/securebank/securebank-api/app/controllers"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New(limiter.Config{
		Max:        120,
		Expiration: 1 * time.Minute,
	}))

	api.Get("/plans", controllers.HandleGetPlans)

	// Static enrollment routes must come before the :id wildcard.
	api.Post("/enroll", controllers.HandleCreateEnrollment)
	api.Get("/enroll", controllers.HandleGetAllEnrollments)
	api.Get("/enroll/statistics/summary", controllers.HandleGetEnrollmentStatistics)
	api.Get("/enroll/by-email/:email", controllers.HandleGetEnrollmentsByEmail)
	api.Get("/enroll/:id", controllers.HandleGetEnrollment)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
