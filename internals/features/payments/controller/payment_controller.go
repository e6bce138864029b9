package controller

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"gorm.io/gorm"

	"studioe_backend/internals/configs"
	"studioe_backend/internals/constants"
	"studioe_backend/internals/features/payments/dto"
	"studioe_backend/internals/features/payments/model"
	"studioe_backend/internals/features/payments/service"
	helper "studioe_backend/internals/helpers"
	"studioe_backend/internals/integrations"
)

type PaymentController struct {
	DB      *gorm.DB
	Clients *integrations.Clients
	Cfg     *configs.Config
	Mailer  *service.ReceiptMailer
}

func NewPaymentController(db *gorm.DB, cfg *configs.Config, clients *integrations.Clients) *PaymentController {
	return &PaymentController{
		DB:      db,
		Clients: clients,
		Cfg:     cfg,
		Mailer:  service.NewReceiptMailer(clients.Sendgrid, clients.EmailFrom),
	}
}

// GET /api/stripe/products: the fixed catalog for the pricing page.
func (ctrl *PaymentController) GetProducts(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Products", service.ProductCatalog())
}

// POST /api/stripe/create-checkout-session
// Response shapes here are pinned by the dashboard client: a bare
// {"sessionId"} / {"error"} body rather than the standard envelope.
func (ctrl *PaymentController) CreateCheckoutSession(c *fiber.Ctx) error {
	var req dto.CreateCheckoutSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	product, ok := service.LookupProduct(req.ProductKey)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product"})
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil || req.UserEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "userId and userEmail are required"})
	}

	if ctrl.Clients.Stripe == nil {
		return helper.JsonFeatureUnavailable(c, "Checkout")
	}

	customer, err := service.FindOrCreateCustomer(ctrl.Clients.Stripe, req.UserEmail, req.UserID)
	if err != nil {
		log.Printf("[ERROR] stripe customer: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Checkout failed"})
	}

	sess, err := service.CreateCheckoutSession(ctrl.Clients.Stripe, ctrl.Cfg.AppBaseURL, product, customer.ID, req.UserID)
	if err != nil {
		log.Printf("[ERROR] stripe session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Checkout failed"})
	}

	// Local bookkeeping is best-effort: the processor is the source of truth
	// and the payment can proceed even when this insert fails.
	localRow := model.PaymentSessionModel{
		PaymentSessionID:         sess.ID,
		PaymentSessionUserID:     userID,
		PaymentSessionProductKey: product.Key,
		PaymentSessionAmount:     product.Amount,
		PaymentSessionStatus:     constants.PaymentStatusPending,
	}
	if err := ctrl.DB.Create(&localRow).Error; err != nil {
		log.Printf("[ERROR] payment session persist (continuing): %v", err)
	}

	return c.JSON(fiber.Map{"sessionId": sess.ID})
}

// POST /api/stripe/webhooks
// Raw body + stripe-signature header. Invalid signature answers 400 and
// mutates nothing. Unrecognized event types are acknowledged and ignored.
func (ctrl *PaymentController) HandleWebhook(c *fiber.Ctx) error {
	if ctrl.Cfg.StripeWebhookSecret == "" {
		return helper.JsonFeatureUnavailable(c, "Stripe webhooks")
	}

	payload := c.Body()
	event, err := webhook.ConstructEvent(payload, c.Get("stripe-signature"), ctrl.Cfg.StripeWebhookSecret)
	if err != nil {
		log.Printf("[WARN] webhook signature rejected: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid signature"})
	}

	service.RecordWebhookEvent(ctrl.DB, event.ID, string(event.Type), event.Data.Raw)

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			log.Printf("[ERROR] webhook payload decode: %v", err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Malformed event payload"})
		}
		if err := service.HandleCheckoutCompleted(ctrl.DB, &sess); err != nil {
			log.Printf("[ERROR] checkout.session.completed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Event processing failed"})
		}
		ctrl.sendReceipt(&sess)

	case "payment_intent.succeeded", "payment_intent.payment_failed":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			log.Printf("[ERROR] webhook payload decode: %v", err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Malformed event payload"})
		}
		status := constants.PaymentStatusCompleted
		if event.Type == "payment_intent.payment_failed" {
			status = constants.PaymentStatusFailed
		}
		if err := service.HandlePaymentIntent(ctrl.DB, intent.ID, status); err != nil {
			log.Printf("[ERROR] %s: %v", event.Type, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Event processing failed"})
		}

	default:
		log.Printf("[INFO] ignoring webhook event type %s", event.Type)
	}

	return c.JSON(fiber.Map{"received": true})
}

func (ctrl *PaymentController) sendReceipt(sess *stripe.CheckoutSession) {
	if ctrl.Mailer == nil {
		return
	}
	email := sess.CustomerEmail
	if email == "" && sess.CustomerDetails != nil {
		email = sess.CustomerDetails.Email
	}
	if product, ok := service.LookupProduct(sess.Metadata["product_key"]); ok {
		ctrl.Mailer.SendReceipt(email, product, product.Amount)
	}
}

// GET /api/u/payments: the caller's own payment history for the dashboard.
func (ctrl *PaymentController) ListMyPayments(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var payments []model.PaymentModel
	if err := ctrl.DB.
		Where("payment_user_id = ?", userID).
		Order("payment_created_at DESC").
		Limit(100).
		Find(&payments).Error; err != nil {
		log.Printf("[ERROR] payments list: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load payments")
	}
	return helper.JsonOK(c, "Payments found", dto.ToPaymentResponseList(payments))
}
