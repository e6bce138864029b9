package controller

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studioe_backend/internals/configs"
	"studioe_backend/internals/integrations"
)

// newTestApp wires the controller with no DB and no external clients;
// every request exercised here must fail (or answer) before either is used.
func newTestApp(cfg *configs.Config) *fiber.App {
	app := fiber.New()
	ctrl := &PaymentController{
		DB:      nil,
		Clients: &integrations.Clients{},
		Cfg:     cfg,
	}
	app.Get("/api/stripe/products", ctrl.GetProducts)
	app.Post("/api/stripe/create-checkout-session", ctrl.CreateCheckoutSession)
	app.Post("/api/stripe/webhooks", ctrl.HandleWebhook)
	return app
}

func TestGetProducts(t *testing.T) {
	app := newTestApp(&configs.Config{})

	req := httptest.NewRequest("GET", "/api/stripe/products", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "private-lesson")
	assert.Contains(t, string(body), "ten-lesson-package")
}

func TestCreateCheckoutSessionUnknownProduct(t *testing.T) {
	app := newTestApp(&configs.Config{})

	payload := `{"productKey":"gift-card","userId":"7f6d9f0a-07e4-4b43-9c41-0a8f7a8281a0","userEmail":"dancer@example.com"}`
	req := httptest.NewRequest("POST", "/api/stripe/create-checkout-session", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"error":"Invalid product"}`, string(body))
}

func TestCreateCheckoutSessionMissingUser(t *testing.T) {
	app := newTestApp(&configs.Config{})

	payload := `{"productKey":"private-lesson","userId":"not-a-uuid","userEmail":"dancer@example.com"}`
	req := httptest.NewRequest("POST", "/api/stripe/create-checkout-session", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateCheckoutSessionWithoutStripeConfigured(t *testing.T) {
	app := newTestApp(&configs.Config{})

	payload := `{"productKey":"private-lesson","userId":"7f6d9f0a-07e4-4b43-9c41-0a8f7a8281a0","userEmail":"dancer@example.com"}`
	req := httptest.NewRequest("POST", "/api/stripe/create-checkout-session", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "CONFIG_MISSING")
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	app := newTestApp(&configs.Config{StripeWebhookSecret: "whsec_test"})

	req := httptest.NewRequest("POST", "/api/stripe/webhooks", strings.NewReader(`{"id":"evt_1","type":"checkout.session.completed"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("stripe-signature", "t=1700000000,v1=deadbeef")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestWebhookRejectsMissingSignature(t *testing.T) {
	app := newTestApp(&configs.Config{StripeWebhookSecret: "whsec_test"})

	req := httptest.NewRequest("POST", "/api/stripe/webhooks", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestWebhookWithoutSecretConfigured(t *testing.T) {
	app := newTestApp(&configs.Config{})

	req := httptest.NewRequest("POST", "/api/stripe/webhooks", strings.NewReader(`{}`))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}
