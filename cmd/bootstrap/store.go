package bootstrap

import (
	"log/slog"

	"studiobook/internal/infra/jsonstore"
	"studiobook/internal/pkg/config"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewJSONStore,
	),
)

func NewJSONStore(cfg config.Config, logger *slog.Logger) *jsonstore.Store {
	return jsonstore.NewStore(cfg.Data.Dir, logger)
}
