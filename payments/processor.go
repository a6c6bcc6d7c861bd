// Package payments turns a booking into a payment intent at the external
// processor and records the pending payment.
package payments

import (
	"context"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"

	"github.com/meinhoongagan/handyhub/models"
)

// IntentRequest is an amount in minor currency units (cents for usd).
type IntentRequest struct {
	Amount   int64
	Currency string
	Metadata map[string]string
}

type Intent struct {
	ID           string
	ClientSecret string
}

// Processor creates payment intents.
type Processor interface {
	CreatePaymentIntent(ctx context.Context, req IntentRequest) (*Intent, error)
}

type StripeProcessor struct {
	api *client.API
}

func NewStripeProcessor(secretKey string) *StripeProcessor {
	var api client.API
	api.Init(secretKey, nil)
	return &StripeProcessor{api: &api}
}

func (p *StripeProcessor) CreatePaymentIntent(ctx context.Context, req IntentRequest) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(req.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return nil, err
	}
	return &Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

// ToMinorUnits converts a two-decimal amount to cents, rounding half away
// from zero.
func ToMinorUnits(m models.Money) int64 {
	return m.Mul(hundred).Round(0).IntPart()
}
