package bootstrap

import (
	"studiobook/internal/infra/payment"
	"studiobook/internal/usecase/commands"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		fx.Annotate(
			payment.NewStripeGateway,
			fx.As(new(commands.PaymentGateway)),
		),
	),
)
