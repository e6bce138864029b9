package service

import (
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// FindOrCreateCustomer looks up the Stripe customer by email, creating one
// with the local user id attached as metadata when none exists.
func FindOrCreateCustomer(sc *client.API, email, userID string) (*stripe.Customer, error) {
	listParams := &stripe.CustomerListParams{Email: stripe.String(email)}
	listParams.Limit = stripe.Int64(1)
	iter := sc.Customers.List(listParams)
	for iter.Next() {
		return iter.Customer(), nil
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("customer lookup: %w", err)
	}

	createParams := &stripe.CustomerParams{Email: stripe.String(email)}
	createParams.AddMetadata("user_id", userID)
	cust, err := sc.Customers.New(createParams)
	if err != nil {
		return nil, fmt.Errorf("customer create: %w", err)
	}
	return cust, nil
}

// CreateCheckoutSession opens a one-time-payment checkout session carrying
// {product_key, user_id} as metadata, with success/cancel URLs back into the
// dashboard.
func CreateCheckoutSession(sc *client.API, baseURL string, product Product, customerID, userID string) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		Customer:   stripe.String(customerID),
		SuccessURL: stripe.String(baseURL + "/dashboard?payment=success&session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(baseURL + "/dashboard?payment=cancelled"),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyUSD)),
					UnitAmount: stripe.Int64(product.Amount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(product.Name),
						Description: stripe.String(product.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.AddMetadata("product_key", product.Key)
	params.AddMetadata("user_id", userID)

	sess, err := sc.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("checkout session create: %w", err)
	}
	return sess, nil
}
