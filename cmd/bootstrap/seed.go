package bootstrap

import (
	"context"
	"log/slog"

	"hotel-desk/internal/domain/billing"
	"hotel-desk/internal/pkg/config"
	"hotel-desk/internal/usecase/shared"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(SeedRates),
)

// SeedRates preloads the rate table from configuration so billing works
// before any operator has set rates through the API.
func SeedRates(cfg config.Config, uow shared.UnitOfWork, logger *slog.Logger) error {
	return uow.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		for roomType, perDay := range cfg.Seed.Rates {
			rate, err := billing.NewRate(roomType, perDay)
			if err != nil {
				return err
			}
			if err := tx.Billing().UpsertRate(ctx, rate); err != nil {
				return err
			}
			logger.Info("seeded rate", "room_type", roomType, "per_day", perDay)
		}
		return nil
	})
}
