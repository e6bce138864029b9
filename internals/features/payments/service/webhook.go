package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v76"
	"gorm.io/gorm"

	"studioe_backend/internals/constants"
	"studioe_backend/internals/features/payments/model"
)

// RecordWebhookEvent persists the verified event for auditing. The unique
// stripe id makes replays visible; a duplicate insert is not an error.
func RecordWebhookEvent(db *gorm.DB, eventID, eventType string, payload []byte) {
	row := model.WebhookEventModel{
		WebhookEventStripeID: eventID,
		WebhookEventType:     eventType,
		WebhookEventPayload:  payload,
	}
	if err := db.Create(&row).Error; err != nil {
		if isDuplicateErr(err) {
			log.Printf("[INFO] webhook replay detected: %s", eventID)
			return
		}
		log.Printf("[ERROR] webhook audit insert: %v", err)
	}
}

// HandleCheckoutCompleted transitions the session to completed and creates
// the Payment row from the re-read session metadata. Both steps are
// idempotent: Stripe delivers at-least-once, so a replay must not create a
// second Payment or rewind a status.
func HandleCheckoutCompleted(db *gorm.DB, sess *stripe.CheckoutSession) error {
	var ps model.PaymentSessionModel
	if err := db.Where("payment_session_id = ?", sess.ID).First(&ps).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Local bookkeeping failed at checkout time; the processor is the
			// source of truth, so log and acknowledge.
			log.Printf("[WARN] completed session %s has no local row", sess.ID)
			return nil
		}
		return err
	}

	if ps.PaymentSessionStatus != constants.PaymentStatusCompleted {
		now := time.Now().UTC()
		updates := map[string]interface{}{
			"payment_session_status":       constants.PaymentStatusCompleted,
			"payment_session_completed_at": now,
		}
		if sess.PaymentIntent != nil {
			updates["payment_session_payment_intent_id"] = sess.PaymentIntent.ID
		}
		if err := db.Model(&ps).Updates(updates).Error; err != nil {
			return err
		}
	}

	// Re-read for metadata, then guard the Payment insert by existence check;
	// the unique index on payment_session_id backstops races.
	if err := db.Where("payment_session_id = ?", sess.ID).First(&ps).Error; err != nil {
		return err
	}

	var count int64
	if err := db.Model(&model.PaymentModel{}).
		Where("payment_session_id = ?", sess.ID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	payment := model.PaymentModel{
		PaymentUserID:     ps.PaymentSessionUserID,
		PaymentSessionID:  ps.PaymentSessionID,
		PaymentIntentID:   ps.PaymentSessionPaymentIntentID,
		PaymentAmount:     ps.PaymentSessionAmount,
		PaymentCurrency:   "usd",
		PaymentStatus:     constants.PaymentStatusCompleted,
		PaymentProductKey: ps.PaymentSessionProductKey,
	}
	if err := db.Create(&payment).Error; err != nil {
		if isDuplicateErr(err) {
			return nil
		}
		return err
	}
	return nil
}

// HandlePaymentIntent reconciles intent-level events by payment-intent id.
// Events may arrive out of order relative to checkout.session.completed; a
// terminal completed status is never rewound.
func HandlePaymentIntent(db *gorm.DB, intentID, status string) error {
	if intentID == "" {
		return nil
	}

	q := db.Model(&model.PaymentSessionModel{}).
		Where("payment_session_payment_intent_id = ?", intentID)
	updates := map[string]interface{}{"payment_session_status": status}
	switch status {
	case constants.PaymentStatusCompleted:
		// Stamp the completion time unless checkout.session.completed already
		// reconciled this session.
		updates["payment_session_completed_at"] = time.Now().UTC()
		q = q.Where("payment_session_completed_at IS NULL")
	case constants.PaymentStatusFailed:
		q = q.Where("payment_session_status <> ?", constants.PaymentStatusCompleted)
	}
	if err := q.Updates(updates).Error; err != nil {
		return err
	}

	return db.Model(&model.PaymentModel{}).
		Where("payment_intent_id = ?", intentID).
		Update("payment_status", status).Error
}

func isDuplicateErr(err error) bool {
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate key") || strings.Contains(low, "unique constraint")
}
