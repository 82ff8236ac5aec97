package car_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"carlink/internal/api/controllers"
	"carlink/internal/repositories"
	"carlink/internal/services"
)

var Module = fx.Provide(
	provideCarRepo, provideCarService, provideCarController)

func provideCarRepo(db *gorm.DB) repositories.CarRepository {
	return repositories.NewCarRepository(db)
}

func provideCarService(carRepo repositories.CarRepository) services.CarServiceInterface {
	return services.NewCarService(carRepo)
}

func provideCarController(carService services.CarServiceInterface) *controllers.CarController {
	return controllers.NewCarController(carService)
}
