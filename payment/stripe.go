package payment

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
)

// StripeGateway adapts Stripe hosted Checkout to the Gateway contract.
type StripeGateway struct {
	api           *client.API
	webhookSecret string
}

func NewStripeGateway(apiKey, webhookSecret string) *StripeGateway {
	api := &client.API{}
	api.Init(apiKey, nil)
	return &StripeGateway{api: api, webhookSecret: webhookSecret}
}

// CreateSession opens a hosted Checkout session for the full order amount
// as a single line item. Amounts cross into Stripe's minor units here and
// nowhere else.
func (g *StripeGateway) CreateSession(req CreateSessionRequest) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(req.Currency),
					UnitAmount: stripe.Int64(toMinorUnits(req.Amount)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("En Tu Sano Juicio order"),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	s, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe create session: %w", err)
	}
	return &CheckoutSession{SessionID: s.ID, URL: s.URL}, nil
}

func (g *StripeGateway) GetStatus(sessionID string) (*CheckoutStatus, error) {
	s, err := g.api.CheckoutSessions.Get(sessionID, nil)
	if err != nil {
		return nil, fmt.Errorf("stripe get session: %w", err)
	}
	return &CheckoutStatus{
		Status:        string(s.Status),
		PaymentStatus: string(s.PaymentStatus),
		AmountTotal:   s.AmountTotal,
		Currency:      string(s.Currency),
	}, nil
}

// ParseWebhook verifies the Stripe-Signature header and extracts the
// session id and payment status from checkout.session.* events. Other
// event types verify fine but carry no session, so reconciliation skips
// them.
func (g *StripeGateway) ParseWebhook(payload []byte, signature string) (*WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("stripe webhook verification: %w", err)
	}

	if !strings.HasPrefix(string(event.Type), "checkout.session.") {
		return &WebhookEvent{}, nil
	}

	var s stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
		return nil, fmt.Errorf("stripe webhook payload: %w", err)
	}
	return &WebhookEvent{
		SessionID:     s.ID,
		PaymentStatus: string(s.PaymentStatus),
	}, nil
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
