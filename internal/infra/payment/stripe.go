// Package payment adapts the Stripe PaymentIntents API to the gateway port
// the booking lifecycle depends on. Intents are created with manual capture:
// authorize at request creation, capture on confirm, cancel on decline.
package payment

import (
	"context"
	"log/slog"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"studiobook/internal/pkg/config"
	"studiobook/internal/pkg/errs"
)

type StripeGateway struct {
	api    *client.API
	logger *slog.Logger
}

func NewStripeGateway(cfg config.PaymentConfig, logger *slog.Logger) *StripeGateway {
	api := &client.API{}
	api.Init(cfg.StripeSecretKey, nil)
	return &StripeGateway{api: api, logger: logger}
}

func (g *StripeGateway) Authorize(ctx context.Context, amountCents int64, customerRef string, metadata map[string]string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:        stripe.Params{Context: ctx, Metadata: metadata},
		Amount:        stripe.Int64(amountCents),
		Currency:      stripe.String(string(stripe.CurrencyUSD)),
		Customer:      stripe.String(customerRef),
		CaptureMethod: stripe.String(string(stripe.PaymentIntentCaptureMethodManual)),
		Confirm:       stripe.Bool(true),
	}
	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", errs.Wrap(err, "create payment intent")
	}
	g.logger.Info("payment intent authorized",
		slog.String("intent_id", intent.ID),
		slog.Int64("amount_cents", amountCents),
	)
	return intent.ID, nil
}

func (g *StripeGateway) Capture(ctx context.Context, intentID string) error {
	params := &stripe.PaymentIntentCaptureParams{
		Params: stripe.Params{Context: ctx},
	}
	intent, err := g.api.PaymentIntents.Capture(intentID, params)
	if err != nil {
		return errs.Wrap(err, "capture payment intent "+intentID)
	}
	g.logger.Info("payment captured",
		slog.String("intent_id", intent.ID),
		slog.String("provider_status", string(intent.Status)),
	)
	return nil
}

func (g *StripeGateway) Cancel(ctx context.Context, intentID string) error {
	params := &stripe.PaymentIntentCancelParams{
		Params: stripe.Params{Context: ctx},
	}
	if _, err := g.api.PaymentIntents.Cancel(intentID, params); err != nil {
		return errs.Wrap(err, "cancel payment intent "+intentID)
	}
	g.logger.Info("payment intent canceled", slog.String("intent_id", intentID))
	return nil
}
