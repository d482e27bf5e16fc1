package settlement_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"blockpass/internal/api/controllers"
	"blockpass/internal/services"
	mem "blockpass/pkg/memcache"
)

var Module = fx.Provide(
	provideSettlementService, provideIdempotencyKeys, provideOrderController)

func provideSettlementService(db *gorm.DB) services.SettlementService {
	return services.NewSettlementService(db)
}

func provideIdempotencyKeys() mem.IdempotencyStore {
	return mem.NewIdempotencyKeys()
}

func provideOrderController(settlementService services.SettlementService, idempotencyKeys mem.IdempotencyStore) *controllers.OrderController {
	return controllers.NewOrderController(settlementService, idempotencyKeys)
}
