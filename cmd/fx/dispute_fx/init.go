package dispute_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"carlink/internal/api/controllers"
	"carlink/internal/repositories"
	"carlink/internal/services"
)

var Module = fx.Provide(
	provideDisputeRepo, provideInspectionRepo, provideDisputeService, provideDisputeController)

func provideDisputeRepo(db *gorm.DB) repositories.DisputeRepository {
	return repositories.NewDisputeRepository(db)
}

func provideInspectionRepo(db *gorm.DB) repositories.InspectionRepository {
	return repositories.NewInspectionRepository(db)
}

func provideDisputeService(
	disputeRepo repositories.DisputeRepository,
	bookingRepo repositories.BookingRepository,
	paymentRepo repositories.PaymentRepository,
	inspectionRepo repositories.InspectionRepository,
	notifier services.NotificationPublisher,
) services.DisputeServiceInterface {
	return services.NewDisputeService(disputeRepo, bookingRepo, paymentRepo, inspectionRepo, notifier)
}

func provideDisputeController(disputeService services.DisputeServiceInterface) *controllers.DisputeController {
	return controllers.NewDisputeController(disputeService)
}
