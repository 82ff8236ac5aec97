package booking_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"carlink/internal/api/controllers"
	"carlink/internal/repositories"
	"carlink/internal/services"
)

var Module = fx.Provide(
	provideBookingRepo, provideBookingService, provideBookingController)

func provideBookingRepo(db *gorm.DB) repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func provideBookingService(
	bookingRepo repositories.BookingRepository,
	carRepo repositories.CarRepository,
	notifier services.NotificationPublisher,
) services.BookingServiceInterface {
	return services.NewBookingService(bookingRepo, carRepo, notifier)
}

func provideBookingController(bookingService services.BookingServiceInterface) *controllers.BookingController {
	return controllers.NewBookingController(bookingService)
}
