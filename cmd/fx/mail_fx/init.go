package mail_fx

import (
	"os"
	"strconv"

	"go.uber.org/fx"

	"carlink/internal/services"
)

var Module = fx.Provide(
	provideMailService)

func provideMailService() services.IMailService {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	return services.NewSMTPMailService(services.SMTPConfig{
		Host:       os.Getenv("SMTP_HOST"),
		Port:       port,
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"),
		From:       os.Getenv("SMTP_FROM"),
		FromName:   os.Getenv("SMTP_FROM_NAME"),
		AppName:    "Carlink",
		AppBaseURL: os.Getenv("APP_BASE_URL"),
	})
}
