package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studioe_backend/internals/configs"
	paymentController "studioe_backend/internals/features/payments/controller"
	"studioe_backend/internals/integrations"
)

func PaymentRoutes(api fiber.Router, protected fiber.Router, db *gorm.DB, cfg *configs.Config, clients *integrations.Clients) {
	ctrl := paymentController.NewPaymentController(db, cfg, clients)

	api.Get("/stripe/products", ctrl.GetProducts)
	api.Post("/stripe/create-checkout-session", ctrl.CreateCheckoutSession)
	// Webhooks authenticate via signature, not session; the global rate
	// limiter also skips this path.
	api.Post("/stripe/webhooks", ctrl.HandleWebhook)

	protected.Get("/payments", ctrl.ListMyPayments)
}
