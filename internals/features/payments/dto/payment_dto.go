package dto

import (
	"time"

	"studioe_backend/internals/features/payments/model"
)

// CreateCheckoutSessionRequest mirrors the field names the dashboard
// client sends (camelCase, not snake_case).
type CreateCheckoutSessionRequest struct {
	ProductKey string `json:"productKey"`
	UserID     string `json:"userId"`
	UserEmail  string `json:"userEmail"`
}

type PaymentResponse struct {
	PaymentID  string    `json:"payment_id"`
	ProductKey string    `json:"product_key"`
	Amount     int64     `json:"amount"`
	Currency   string    `json:"currency"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToPaymentResponse(m model.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID:  m.PaymentID.String(),
		ProductKey: m.PaymentProductKey,
		Amount:     m.PaymentAmount,
		Currency:   m.PaymentCurrency,
		Status:     m.PaymentStatus,
		CreatedAt:  m.PaymentCreatedAt,
	}
}

func ToPaymentResponseList(rows []model.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, ToPaymentResponse(m))
	}
	return out
}
