package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PaymentSessionModel is the local bookkeeping row for a Stripe checkout
// session. Status moves to completed/failed only from webhook handlers,
// never from client-initiated requests.
type PaymentSessionModel struct {
	PaymentSessionID              string     `gorm:"column:payment_session_id;size:255;primaryKey" json:"payment_session_id"`
	PaymentSessionUserID          uuid.UUID  `gorm:"column:payment_session_user_id;type:uuid;not null" json:"payment_session_user_id"`
	PaymentSessionProductKey      string     `gorm:"column:payment_session_product_key;size:50;not null" json:"payment_session_product_key"`
	PaymentSessionAmount          int64      `gorm:"column:payment_session_amount;not null" json:"payment_session_amount"`
	PaymentSessionStatus          string     `gorm:"column:payment_session_status;size:20;not null;default:'pending'" json:"payment_session_status"`
	PaymentSessionPaymentIntentID *string    `gorm:"column:payment_session_payment_intent_id;size:255;index" json:"payment_session_payment_intent_id,omitempty"`
	PaymentSessionCreatedAt       time.Time  `gorm:"column:payment_session_created_at;autoCreateTime" json:"payment_session_created_at"`
	PaymentSessionCompletedAt     *time.Time `gorm:"column:payment_session_completed_at" json:"payment_session_completed_at,omitempty"`
}

func (PaymentSessionModel) TableName() string {
	return "payment_sessions"
}

// PaymentModel is created only after a checkout session completes. The
// unique session id acts as the dedup key for at-least-once webhook delivery.
type PaymentModel struct {
	PaymentID         uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`
	PaymentUserID     uuid.UUID `gorm:"column:payment_user_id;type:uuid;not null" json:"payment_user_id"`
	PaymentSessionID  string    `gorm:"column:payment_session_id;size:255;not null;unique" json:"payment_session_id"`
	PaymentIntentID   *string   `gorm:"column:payment_intent_id;size:255" json:"payment_intent_id,omitempty"`
	PaymentAmount     int64     `gorm:"column:payment_amount;not null" json:"payment_amount"`
	PaymentCurrency   string    `gorm:"column:payment_currency;size:10;not null;default:'usd'" json:"payment_currency"`
	PaymentStatus     string    `gorm:"column:payment_status;size:20;not null;default:'completed'" json:"payment_status"`
	PaymentProductKey string    `gorm:"column:payment_product_key;size:50;not null" json:"payment_product_key"`
	PaymentCreatedAt  time.Time `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

// WebhookEventModel is an audit row for each verified Stripe event; the
// unique stripe id doubles as a replay marker.
type WebhookEventModel struct {
	WebhookEventID         uuid.UUID      `gorm:"column:webhook_event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"webhook_event_id"`
	WebhookEventStripeID   string         `gorm:"column:webhook_event_stripe_id;size:255;not null;unique" json:"webhook_event_stripe_id"`
	WebhookEventType       string         `gorm:"column:webhook_event_type;size:100;not null" json:"webhook_event_type"`
	WebhookEventPayload    datatypes.JSON `gorm:"column:webhook_event_payload;type:jsonb" json:"webhook_event_payload"`
	WebhookEventReceivedAt time.Time      `gorm:"column:webhook_event_received_at;autoCreateTime" json:"webhook_event_received_at"`
}

func (WebhookEventModel) TableName() string {
	return "webhook_events"
}
