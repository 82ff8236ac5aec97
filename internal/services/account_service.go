package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"carlink/internal/models/db_models"
	"carlink/internal/models/request_models"
	"carlink/internal/models/response_models"
	"carlink/internal/repositories"
	mem "carlink/pkg/memcache"
	"carlink/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*db_models.Account, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	mailService IMailService
	resetTokens mem.ResetTokenStore
}

func NewAccountService(accountRepo repositories.AccountRepository, mailService IMailService, resetTokens mem.ResetTokenStore) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		mailService: mailService,
		resetTokens: resetTokens,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, string(account.Role))
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{
		Token: token,
		Role:  string(account.Role),
	}, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	role := db_models.RoleGuest
	if request.Role == string(db_models.RoleHost) {
		role = db_models.RoleHost
	}

	newAccount := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		Phone:        request.Phone,
		PasswordHash: hashedPassword,
		Role:         role,
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) GetProfile(ctx context.Context, userID uuid.UUID) (*db_models.Account, error) {
	account, err := a.accountRepo.FindById(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return account, nil
}

func (a *AccountService) ForgotPassword(ctx context.Context, email string) error {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		// Do not reveal whether the email exists.
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}

	a.resetTokens.Set(token, account.Email, 30*time.Minute)

	if err := a.mailService.SendMailToResetPassword(account.Email, token); err != nil {
		log.Printf("reset mail to %s failed: %v", account.Email, err)
	}
	return nil
}

func (a *AccountService) ResetPassword(ctx context.Context, token, newPassword string) error {
	email := a.resetTokens.Consume(token)
	if email == "" {
		return utils.ErrInvalidCredentials
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if err := a.accountRepo.UpdatePasswordByEmail(ctx, email, hashed); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
