package notification_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"carlink/internal/api/controllers"
	"carlink/internal/repositories"
	"carlink/internal/services"
)

var Module = fx.Provide(
	provideNotificationRepo, provideNotificationService, providePublisher, provideNotificationController)

func provideNotificationRepo(db *gorm.DB) repositories.NotificationRepository {
	return repositories.NewNotificationRepository(db)
}

func provideNotificationService(notificationRepo repositories.NotificationRepository) *services.NotificationService {
	return services.NewNotificationService(notificationRepo)
}

func providePublisher(notificationService *services.NotificationService) services.NotificationPublisher {
	return notificationService
}

func provideNotificationController(notificationService *services.NotificationService) *controllers.NotificationController {
	return controllers.NewNotificationController(notificationService)
}
