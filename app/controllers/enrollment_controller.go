package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/securebank/securebank-api/app/models"
	"github.com/securebank/securebank-api/internal/pkg/enrollment"
)

var enrollmentService *enrollment.Service

// InitializeEnrollmentController wires the enrollment service used by the
// enrollment handlers. Must be called before the routes are registered.
func InitializeEnrollmentController(svc *enrollment.Service) {
	enrollmentService = svc
}

// HandleCreateEnrollment accepts a new enrollment submission.
// Structural problems come back as 422 with field detail, business-rule
// rejections as 400, everything else as a generic 500.
func HandleCreateEnrollment(c *fiber.Ctx) error {
	req := new(models.EnrollmentRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"message": "Malformed request body",
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"message": "Invalid enrollment data",
			"details": req.FieldErrors(err),
		})
	}

	rec, err := enrollmentService.Submit(req)
	if err != nil {
		if enrollment.IsValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}
		log.Printf("Error creating enrollment: %v", err)
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":         true,
		"message":         "Enrollment submitted successfully! You will receive a confirmation email shortly.",
		"enrollment_id":   rec.EnrollmentID,
		"enrollment_data": rec,
	})
}

// HandleGetEnrollment returns one enrollment by its identifier.
func HandleGetEnrollment(c *fiber.Ctx) error {
	id := c.Params("id")

	rec, err := enrollmentService.Get(id)
	if err != nil {
		if errors.Is(err, enrollment.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Enrollment not found with ID: " + id,
			})
		}
		log.Printf("Error retrieving enrollment %s: %v", id, err)
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    rec,
	})
}

// HandleGetAllEnrollments returns every enrollment plus aggregate
// statistics, for admin use.
func HandleGetAllEnrollments(c *fiber.Ctx) error {
	records, err := enrollmentService.ListAll()
	if err != nil {
		log.Printf("Error listing enrollments: %v", err)
		return internalError(c)
	}

	stats, err := enrollmentService.Statistics()
	if err != nil {
		log.Printf("Error aggregating enrollment statistics: %v", err)
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       records,
		"statistics": stats,
	})
}

// HandleGetEnrollmentsByEmail returns all enrollments for an exact email
// match. Duplicate enrollments per email are allowed, so this can return
// more than one record.
func HandleGetEnrollmentsByEmail(c *fiber.Ctx) error {
	email := c.Params("email")

	records, err := enrollmentService.ListByEmail(email)
	if err != nil {
		log.Printf("Error listing enrollments for %s: %v", email, err)
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"email":            email,
		"enrollment_count": len(records),
		"enrollments":      records,
	})
}

// HandleGetEnrollmentStatistics returns the aggregate enrollment view.
func HandleGetEnrollmentStatistics(c *fiber.Ctx) error {
	stats, err := enrollmentService.Statistics()
	if err != nil {
		log.Printf("Error aggregating enrollment statistics: %v", err)
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"statistics": stats,
	})
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Internal server error",
	})
}
