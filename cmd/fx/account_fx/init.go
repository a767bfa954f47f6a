package account_fx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"hookify/internal/api/controllers"
	"hookify/internal/repositories"
	"hookify/internal/services"
	"hookify/pkg/utils"
)

var Module = fx.Provide(
	provideTokenManager,
	provideAccountRepo,
	provideApiKeyRepo,
	provideAccountService,
	provideAccountController,
)

func provideTokenManager() *utils.TokenManager {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	return utils.NewTokenManager(secret)
}

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideApiKeyRepo(db *gorm.DB) repositories.ApiKeyRepository {
	return repositories.NewApiKeyRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	apiKeyRepo repositories.ApiKeyRepository,
	tokens *utils.TokenManager,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, apiKeyRepo, tokens)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
