package pass_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"blockpass/internal/api/controllers"
	"blockpass/internal/repositories"
	"blockpass/internal/services"
)

var Module = fx.Provide(
	providePassRepo, providePassService, providePassController)

func providePassRepo(db *gorm.DB) repositories.PassRepository {
	return repositories.NewPassRepository(db)
}

func providePassService(passRepo repositories.PassRepository, accountRepo repositories.AccountRepository) services.PassServiceInterface {
	return services.NewPassService(passRepo, accountRepo)
}

func providePassController(passService services.PassServiceInterface) *controllers.PassController {
	return controllers.NewPassController(passService)
}
