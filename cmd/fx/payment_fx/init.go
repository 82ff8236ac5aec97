package payment_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"carlink/internal/api/controllers"
	"carlink/internal/repositories"
	"carlink/internal/services"
)

var Module = fx.Provide(
	providePaymentRepo, providePaymentService, providePaymentController)

func providePaymentRepo(db *gorm.DB) repositories.PaymentRepository {
	return repositories.NewPaymentRepository(db)
}

func providePaymentService(
	paymentRepo repositories.PaymentRepository,
	bookingRepo repositories.BookingRepository,
	notifier services.NotificationPublisher,
) services.PaymentService {
	return services.NewPaymentService(paymentRepo, bookingRepo, notifier)
}

func providePaymentController(paymentService services.PaymentService) *controllers.PaymentController {
	return controllers.NewPaymentController(paymentService)
}
