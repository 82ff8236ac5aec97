package inspection_fx

import (
	"go.uber.org/fx"

	"carlink/internal/api/controllers"
	"carlink/internal/repositories"
	"carlink/internal/services"
)

var Module = fx.Provide(
	provideInspectionService, provideInspectionController)

func provideInspectionService(
	inspectionRepo repositories.InspectionRepository,
	bookingRepo repositories.BookingRepository,
) services.InspectionServiceInterface {
	return services.NewInspectionService(inspectionRepo, bookingRepo)
}

func provideInspectionController(inspectionService services.InspectionServiceInterface) *controllers.InspectionController {
	return controllers.NewInspectionController(inspectionService)
}
