package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/securebank/securebank-api/app/controllers"
	"github.com/securebank/securebank-api/internal/pkg/database"
	"github.com/securebank/securebank-api/internal/pkg/enrollment"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// Build the enrollment service: durable store when the database came
	// up, transient store always available as the failover target.
	var primary enrollment.Store
	if db := database.GetDB(); db != nil {
		primary = enrollment.NewGormStore(db)
	}
	controllers.InitializeEnrollmentController(enrollment.NewService(primary, enrollment.NewMemoryStore()))

	app.Get("/", controllers.HandleRoot)
	app.Get("/health", controllers.HandleHealth)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
