package services

import (
	"fmt"
	"net/smtp"
	"net/url"
	"strings"
)

type IMailService interface {
	SendMailToNotifyUser(to, subject, body string) error
	SendMailToResetPassword(email, token string) error
}

// SMTPConfig holds transport and branding settings.
type SMTPConfig struct {
	Host       string // e.g. "smtp.gmail.com"
	Port       int    // e.g. 587
	Username   string
	Password   string
	From       string // e.g. "no-reply@carlink.app"
	FromName   string
	AppName    string
	AppBaseURL string // e.g. "https://carlink.app"
}

type smtpMailService struct {
	cfg SMTPConfig
}

func NewSMTPMailService(cfg SMTPConfig) IMailService {
	return &smtpMailService{cfg: cfg}
}

func (s *smtpMailService) SendMailToNotifyUser(to, subject, body string) error {
	return s.send(to, subject, body)
}

func (s *smtpMailService) SendMailToResetPassword(to, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s",
		strings.TrimRight(s.cfg.AppBaseURL, "/"), url.QueryEscape(token))

	body := fmt.Sprintf(
		"We received a request to reset your %s password.\n\n"+
			"Open this link to continue:\n%s\n\n"+
			"If you didn't request this, you can safely ignore this email.\n",
		s.cfg.AppName, link)

	return s.send(to, "Reset your password", body)
}

func (s *smtpMailService) send(to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	msg := strings.Join([]string{
		fmt.Sprintf("From: %s <%s>", s.cfg.FromName, s.cfg.From),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg))
}
