package mailer

import (
	"net/smtp"
	"sangha-service/internal/app/config"
)

// SMTPClient bundles the resolved auth with the host settings so senders
// do not rebuild it per message.
type SMTPClient struct {
	Host        string
	Port        int
	EmailSender string
	Auth        smtp.Auth
}

func NewSMTPClient(driverConfig *config.DriverConfig) *SMTPClient {
	var auth smtp.Auth
	if driverConfig.SMTP.Username != "" {
		auth = smtp.PlainAuth("", driverConfig.SMTP.Username, driverConfig.SMTP.Password, driverConfig.SMTP.Host)
	}
	return &SMTPClient{
		Host:        driverConfig.SMTP.Host,
		Port:        driverConfig.SMTP.Port,
		EmailSender: driverConfig.SMTP.EmailSender,
		Auth:        auth,
	}
}
