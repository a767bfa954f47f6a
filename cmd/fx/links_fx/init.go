package links_fx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"hookify/internal/api/controllers"
	"hookify/internal/repositories"
	"hookify/internal/services"
)

var Module = fx.Provide(
	provideLinkRepo,
	provideLinkService,
	provideLinkController,
)

func provideLinkRepo(db *gorm.DB) repositories.LinkRepository {
	return repositories.NewLinkRepository(db)
}

func provideLinkService(linkRepo repositories.LinkRepository) services.LinkServiceInterface {
	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		appURL = "http://localhost:8080"
	}
	return services.NewLinkService(linkRepo, appURL)
}

func provideLinkController(linkService services.LinkServiceInterface) *controllers.LinkController {
	return controllers.NewLinkController(linkService)
}
