package components

import (
	"hotel-desk/internal/infra/memstore"
	"hotel-desk/internal/infra/uow"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		memstore.New,
		uow.NewMemoryUoW,
	),
)
