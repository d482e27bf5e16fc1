package contract_fx

import (
	"go.uber.org/fx"

	"blockpass/internal/api/controllers"
	"blockpass/internal/services"
)

var Module = fx.Provide(
	provideContractService, provideContractController)

func provideContractService() services.ContractServiceInterface {
	return services.NewContractService()
}

func provideContractController(contractService services.ContractServiceInterface) *controllers.ContractController {
	return controllers.NewContractController(contractService)
}
