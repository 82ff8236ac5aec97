package message_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"carlink/internal/api/controllers"
	"carlink/internal/repositories"
	"carlink/internal/services"
)

var Module = fx.Provide(
	provideMessageRepo, provideMessageService, provideMessageController)

func provideMessageRepo(db *gorm.DB) repositories.MessageRepository {
	return repositories.NewMessageRepository(db)
}

func provideMessageService(
	messageRepo repositories.MessageRepository,
	accountRepo repositories.AccountRepository,
	notifier services.NotificationPublisher,
) services.MessageServiceInterface {
	return services.NewMessageService(messageRepo, accountRepo, notifier)
}

func provideMessageController(messageService services.MessageServiceInterface) *controllers.MessageController {
	return controllers.NewMessageController(messageService)
}
