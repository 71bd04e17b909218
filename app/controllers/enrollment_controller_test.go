package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/securebank/securebank-api/internal/pkg/enrollment"
)

// newTestApp builds a Fiber app running on the transient store only, the
// same wiring the service falls back to when the database is down.
func newTestApp() *fiber.App {
	InitializeEnrollmentController(enrollment.NewService(nil, enrollment.NewMemoryStore()))

	app := fiber.New()
	api := app.Group("/api")
	api.Get("/plans", HandleGetPlans)
	api.Post("/enroll", HandleCreateEnrollment)
	api.Get("/enroll", HandleGetAllEnrollments)
	api.Get("/enroll/statistics/summary", HandleGetEnrollmentStatistics)
	api.Get("/enroll/by-email/:email", HandleGetEnrollmentsByEmail)
	api.Get("/enroll/:id", HandleGetEnrollment)
	return app
}

func johnDoePayload() map[string]interface{} {
	return map[string]interface{}{
		"name":                 "John Doe",
		"email":                "john@example.com",
		"phone":                "1234567890",
		"address":              "123 Main St, City, ST 12345",
		"selected_plan_id":     1,
		"monthly_contribution": 500.00,
	}
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func getJSON(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestCreateEnrollment_Success(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/enroll", johnDoePayload())
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["enrollment_id"])

	data := body["enrollment_data"].(map[string]interface{})
	assert.Equal(t, "John Doe", data["name"])
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, 500.0, data["monthly_contribution"])

	plan := data["selected_plan"].(map[string]interface{})
	assert.Equal(t, float64(1), plan["id"])
	assert.Equal(t, "Savings Plan", plan["name"])
	assert.Equal(t, "3.5%", plan["interest_rate"])
	assert.Equal(t, "12 months", plan["term"])
}

func TestCreateEnrollment_ContributionTooLow(t *testing.T) {
	app := newTestApp()

	payload := johnDoePayload()
	payload["monthly_contribution"] = 50.0

	resp := postJSON(t, app, "/api/enroll", payload)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Monthly contribution must be at least $100", body["message"])
}

func TestCreateEnrollment_ContributionTooHigh(t *testing.T) {
	app := newTestApp()

	payload := johnDoePayload()
	payload["monthly_contribution"] = 5001.0

	resp := postJSON(t, app, "/api/enroll", payload)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Monthly contribution cannot exceed $5000", body["message"])
}

func TestCreateEnrollment_UnknownPlan(t *testing.T) {
	app := newTestApp()

	payload := johnDoePayload()
	payload["selected_plan_id"] = 999

	resp := postJSON(t, app, "/api/enroll", payload)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Plan with ID 999 not found or inactive", body["message"])

	// Nothing may be persisted for a rejected submission.
	listResp := getJSON(t, app, "/api/enroll")
	listBody := decodeBody(t, listResp)
	assert.Empty(t, listBody["data"])
}

func TestCreateEnrollment_StructuralValidation(t *testing.T) {
	app := newTestApp()

	payload := johnDoePayload()
	payload["name"] = "J"
	payload["email"] = "not-an-email"

	resp := postJSON(t, app, "/api/enroll", payload)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	body := decodeBody(t, resp)
	details := body["details"].(map[string]interface{})
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "email")
}

func TestCreateEnrollment_MalformedBody(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodPost, "/api/enroll", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestGetEnrollment_RoundTrip(t *testing.T) {
	app := newTestApp()

	created := decodeBody(t, postJSON(t, app, "/api/enroll", johnDoePayload()))
	id := created["enrollment_id"].(string)

	resp := getJSON(t, app, "/api/enroll/"+id)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, id, data["enrollment_id"])

	plan := data["selected_plan"].(map[string]interface{})
	assert.Equal(t, "Savings Plan", plan["name"])
}

func TestGetEnrollment_NotFound(t *testing.T) {
	app := newTestApp()

	resp := getJSON(t, app, "/api/enroll/no-such-id")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetEnrollmentsByEmail(t *testing.T) {
	app := newTestApp()

	postJSON(t, app, "/api/enroll", johnDoePayload())

	second := johnDoePayload()
	second["selected_plan_id"] = 2
	second["monthly_contribution"] = 750.0
	postJSON(t, app, "/api/enroll", second)

	resp := getJSON(t, app, "/api/enroll/by-email/john@example.com")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "john@example.com", body["email"])
	assert.Equal(t, float64(2), body["enrollment_count"])
	assert.Len(t, body["enrollments"], 2)
}

func TestGetEnrollmentStatistics(t *testing.T) {
	app := newTestApp()

	postJSON(t, app, "/api/enroll", johnDoePayload())

	second := johnDoePayload()
	second["selected_plan_id"] = 3
	second["monthly_contribution"] = 1000.0
	postJSON(t, app, "/api/enroll", second)

	resp := getJSON(t, app, "/api/enroll/statistics/summary")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	stats := body["statistics"].(map[string]interface{})
	assert.Equal(t, float64(2), stats["total_enrollments"])
	assert.Equal(t, float64(1), stats["unique_emails"])
	assert.Equal(t, float64(1), stats["duplicate_emails"])

	duplicates := stats["emails_with_multiple_enrollments"].(map[string]interface{})
	assert.Equal(t, float64(2), duplicates["john@example.com"])
}

func TestGetPlans(t *testing.T) {
	app := newTestApp()

	resp := getJSON(t, app, "/api/plans")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(4), body["total_plans"])

	plans := body["data"].([]interface{})
	require.Len(t, plans, 4)

	first := plans[0].(map[string]interface{})
	assert.Equal(t, "Savings Plan", first["name"])
	assert.Equal(t, float64(100), first["min_contribution"])
	assert.Equal(t, float64(5000), first["max_contribution"])
	assert.Len(t, first["benefits"], 4)
}
