package facility_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"blockpass/internal/api/controllers"
	"blockpass/internal/repositories"
	"blockpass/internal/services"
)

var Module = fx.Provide(
	provideFacilityRepo, provideFacilityService, provideFacilityController)

func provideFacilityRepo(db *gorm.DB) repositories.FacilityRepository {
	return repositories.NewFacilityRepository(db)
}

func provideFacilityService(facilityRepo repositories.FacilityRepository) services.FacilityServiceInterface {
	return services.NewFacilityService(facilityRepo)
}

func provideFacilityController(facilityService services.FacilityServiceInterface) *controllers.FacilityController {
	return controllers.NewFacilityController(facilityService)
}
