package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"carlink/internal/api/controllers"
	"carlink/internal/repositories"
	"carlink/internal/services"
	mem "carlink/pkg/memcache"
)

var Module = fx.Provide(
	provideResetTokens, provideAccountRepo, provideAccountService, provideAccountController)

func provideResetTokens() mem.ResetTokenStore {
	return mem.NewResetTokens()
}

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, mailService services.IMailService, resetTokens mem.ResetTokenStore) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, mailService, resetTokens)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
