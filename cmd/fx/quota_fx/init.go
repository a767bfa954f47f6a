package quota_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"hookify/internal/api/controllers"
	"hookify/internal/repositories"
	"hookify/internal/services"
)

var Module = fx.Provide(
	provideSubscriptionRepo,
	provideQuotaService,
	provideQuotaController,
)

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideQuotaService(subscriptionRepo repositories.SubscriptionRepository) services.QuotaServiceInterface {
	return services.NewQuotaService(subscriptionRepo)
}

func provideQuotaController(quotaService services.QuotaServiceInterface) *controllers.QuotaController {
	return controllers.NewQuotaController(quotaService)
}
